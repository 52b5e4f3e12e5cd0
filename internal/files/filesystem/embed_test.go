package filesystem

import (
	"embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed testdata
var testdataFS embed.FS

func TestEmbedFileSystem_Open(t *testing.T) {
	efs := NewEmbedFileSystem(testdataFS, "testdata")

	tests := []struct {
		name      string
		path      string
		expectErr bool
	}{
		{"open root directory", ".", false},
		{"open empty path (same as root)", "", false},
		{"open subdirectory", "app", false},
		{"open nested subdirectory", "lib/nested/META-INF", false},
		{"open non-existent directory", "nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := efs.Open(tt.path)
			if tt.expectErr {
				require.Error(t, err)
				require.Nil(t, dir)
			} else {
				require.NoError(t, err)
				require.NotNil(t, dir)
			}
		})
	}
}

func TestEmbedFileSystem_ReadFile(t *testing.T) {
	efs := NewEmbedFileSystem(testdataFS, "testdata")

	content, err := efs.ReadFile("app/META-INF/spring-configuration-metadata.json")
	require.NoError(t, err)
	require.Contains(t, string(content), `"server.port"`)

	_, err = efs.ReadFile("app/missing.json")
	require.Error(t, err)
}

func TestEmbedFileSystem_Stat(t *testing.T) {
	efs := NewEmbedFileSystem(testdataFS, "testdata")

	info, err := efs.Stat("app/META-INF/spring-configuration-metadata.json")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "spring-configuration-metadata.json", info.Name())

	info, err = efs.Stat("lib")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEmbedFileSystem_Walk(t *testing.T) {
	efs := NewEmbedFileSystem(testdataFS, "testdata")

	dir, err := efs.Open(".")
	require.NoError(t, err)

	var descriptors []string
	err = dir.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if !file.Info().IsDir() && strings.HasSuffix(file.RelativePath(), "spring-configuration-metadata.json") {
			descriptors = append(descriptors, file.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)

	// fs.WalkDir enumerates lexically, so the order is stable.
	require.Equal(t, []string{
		"app/META-INF/spring-configuration-metadata.json",
		"lib/nested/META-INF/spring-configuration-metadata.json",
	}, descriptors)
}

func TestEmbedFile_ReadContent(t *testing.T) {
	efs := NewEmbedFileSystem(testdataFS, "testdata")

	dir, err := efs.Open("lib")
	require.NoError(t, err)

	var content string
	err = dir.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if !file.Info().IsDir() {
			data, readErr := file.ReadContent()
			require.NoError(t, readErr)
			content = string(data)
		}
		return nil
	})
	require.NoError(t, err)
	require.Contains(t, content, `"cache.eviction.size"`)
}
