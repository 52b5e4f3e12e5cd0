package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/propdoc/propdoc/internal/files/filesystem"
	"github.com/propdoc/propdoc/pkg/propdoc"
)

// Scanner discovers configuration metadata descriptors in directory trees.
// A file qualifies when its path ends with the two segments
// META-INF/spring-configuration-metadata.json; the match is on whole path
// segments, so a directory named "MY-META-INF" never matches.
//
// Scanner is safe for concurrent use by multiple goroutines as long as the
// provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a descriptor scanner backed by the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a descriptor scanner with a custom filesystem
// provider. This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
	}
}

// ScanRoots recursively walks each root folder and returns the descriptor
// paths found, in discovery order: roots in the given order, files within a
// root in the provider's enumeration order. Finding nothing is not an error.
//
// Paths are returned slash-separated and resolvable through the same
// filesystem provider, so the loader can read what the scanner found.
// Overlapping roots report the same descriptor once per root; duplicates
// are deliberately kept.
func (s *Scanner) ScanRoots(roots []string) ([]string, error) {
	var found []string

	for _, root := range roots {
		paths, err := s.scanRoot(root)
		if err != nil {
			return nil, err
		}
		found = append(found, paths...)
	}

	return found, nil
}

func (s *Scanner) scanRoot(root string) ([]string, error) {
	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return nil, fmt.Errorf("%w: folder %s: %w", propdoc.ErrDiscoveryFailed, root, err)
	}

	var paths []string

	err = dir.Walk(func(file filesystem.File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if file.Info().IsDir() {
			return nil
		}

		fullPath := joinRoot(root, file.RelativePath())
		if IsDescriptorPath(fullPath) {
			paths = append(paths, fullPath)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking %s: %w", propdoc.ErrDiscoveryFailed, root, err)
	}

	return paths, nil
}

// IsDescriptorPath reports whether path ends with the descriptor segments
// META-INF/spring-configuration-metadata.json. The match is on whole
// segments, never on substrings.
func IsDescriptorPath(path string) bool {
	segments := strings.Split(filepath.ToSlash(path), "/")
	n := len(segments)

	return n >= 2 &&
		segments[n-1] == propdoc.DescriptorFileName &&
		segments[n-2] == propdoc.DescriptorDirName
}

// joinRoot attaches the walked file's relative path back to the root the
// user gave, keeping relative roots relative. The "./" prefix keeps reported
// paths recognizable as workspace-relative.
func joinRoot(root, relPath string) string {
	joined := filepath.ToSlash(filepath.Join(root, relPath))
	if !strings.HasPrefix(joined, "/") && !strings.HasPrefix(joined, "./") && !filepath.IsAbs(joined) {
		joined = "./" + joined
	}
	return joined
}

// Verify Scanner implements the interface at compile time
var _ propdoc.DescriptorScanner = (*Scanner)(nil)
