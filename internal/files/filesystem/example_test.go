package filesystem_test

import (
	"embed"
	"fmt"
	"log"

	"github.com/propdoc/propdoc/internal/files/filesystem"
)

//go:embed testdata
var exampleFS embed.FS

// Example_embedFileSystem demonstrates reading a file from embedded resources
func Example_embedFileSystem() {
	efs := filesystem.NewEmbedFileSystem(exampleFS, "testdata")

	content, err := efs.ReadFile("app/application.properties")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Content: %s", string(content))

	// Output:
	// Content: server.port=9090
}

// Example_embedFileSystem_walk demonstrates walking an embedded directory tree
func Example_embedFileSystem_walk() {
	efs := filesystem.NewEmbedFileSystem(exampleFS, "testdata")

	dir, err := efs.Open(".")
	if err != nil {
		log.Fatal(err)
	}

	var fileCount int
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return err
		}
		if !file.Info().IsDir() {
			fileCount++
			fmt.Printf("Found file: %s\n", file.RelativePath())
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Total files: %d\n", fileCount)

	// Output:
	// Found file: app/META-INF/spring-configuration-metadata.json
	// Found file: app/application.properties
	// Found file: lib/nested/META-INF/spring-configuration-metadata.json
	// Total files: 3
}

// Example_memoryFileSystem demonstrates using MemoryFileSystem for testing
func Example_memoryFileSystem() {
	mfs := filesystem.NewMemoryFileSystem("/build")

	mfs.AddFile("classes/META-INF/spring-configuration-metadata.json", `{"properties":[]}`)
	mfs.AddFile("classes/application.yml", "server:\n  port: 8080\n")

	content, err := mfs.ReadFile("classes/META-INF/spring-configuration-metadata.json")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Descriptor: %s\n", string(content))

	dir, err := mfs.Open("/build/classes")
	if err != nil {
		log.Fatal(err)
	}

	var fileCount int
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return err
		}
		if !file.Info().IsDir() {
			fileCount++
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Total files: %d\n", fileCount)

	// Output:
	// Descriptor: {"properties":[]}
	// Total files: 2
}

// Example_fileSystemProvider demonstrates the FileSystemProvider abstraction
func Example_fileSystemProvider() {
	// Works with any FileSystemProvider implementation.
	countFiles := func(fsProvider filesystem.FileSystemProvider, path string) (int, error) {
		dir, err := fsProvider.Open(path)
		if err != nil {
			return 0, err
		}

		count := 0
		err = dir.Walk(func(file filesystem.File, err error) error {
			if err != nil {
				return err
			}
			if !file.Info().IsDir() {
				count++
			}
			return nil
		})
		return count, err
	}

	efs := filesystem.NewEmbedFileSystem(exampleFS, "testdata")
	embedCount, err := countFiles(efs, ".")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Embedded files: %d\n", embedCount)

	mfs := filesystem.NewMemoryFileSystem("/build")
	mfs.AddFile("a/META-INF/spring-configuration-metadata.json", "{}")
	mfs.AddFile("b/META-INF/spring-configuration-metadata.json", "{}")
	memCount, err := countFiles(mfs, "/build")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Memory files: %d\n", memCount)

	// Output:
	// Embedded files: 3
	// Memory files: 2
}
