package loader

import (
	"fmt"

	"github.com/propdoc/propdoc/internal/files/filesystem"
	"github.com/propdoc/propdoc/internal/files/scanner"
	"github.com/propdoc/propdoc/internal/metadata"
	"github.com/propdoc/propdoc/pkg/propdoc"
)

// Loader discovers descriptor files and parses them into Descriptors.
// Scanner and filesystem share one provider, so every path the scanner
// reports is readable through the same abstraction.
type Loader struct {
	scanner    propdoc.DescriptorScanner
	fsProvider filesystem.FileSystemProvider
}

// NewLoader creates a descriptor loader backed by the OS filesystem.
func NewLoader() *Loader {
	return NewLoaderWithFS(filesystem.NewOSFileSystem())
}

// NewLoaderWithFS creates a descriptor loader with a custom filesystem
// provider. This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewLoaderWithFS(fsProvider filesystem.FileSystemProvider) *Loader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Loader{
		scanner:    scanner.NewScannerWithFS(fsProvider),
		fsProvider: fsProvider,
	}
}

// LoadDescriptors walks the given roots and parses every discovered
// descriptor, preserving discovery order. One unreadable or malformed file
// fails the whole load; nothing is returned alongside an error.
func (l *Loader) LoadDescriptors(roots []string) ([]propdoc.Descriptor, error) {
	paths, err := l.scanner.ScanRoots(roots)
	if err != nil {
		return nil, err
	}

	descriptors := make([]propdoc.Descriptor, 0, len(paths))
	for _, path := range paths {
		content, err := l.fsProvider.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %w", propdoc.ErrDiscoveryFailed, path, err)
		}

		items, err := metadata.Parse(content, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", propdoc.ErrDescriptorInvalid, err)
		}

		descriptors = append(descriptors, propdoc.Descriptor{
			Path:  path,
			Items: items,
		})
	}

	return descriptors, nil
}

// Verify Loader implements the interface at compile time
var _ propdoc.DescriptorLoader = (*Loader)(nil)
