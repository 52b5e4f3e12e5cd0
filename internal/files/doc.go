// Package files provides file-related functionality organized into sub-packages.
//
// This package is organized into the following sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations
//     (OS, in-memory and embedded)
//   - scanner: Descriptor file discovery in directory trees
//   - loader: Discovery plus parsing into descriptor models
//
// # Usage
//
//	import (
//	    "github.com/propdoc/propdoc/internal/files/filesystem"
//	    "github.com/propdoc/propdoc/internal/files/scanner"
//	    "github.com/propdoc/propdoc/internal/files/loader"
//	)
//
//	// Discover descriptor paths
//	descriptorScanner := scanner.NewScanner()
//	paths, err := descriptorScanner.ScanRoots([]string{"./build/classes"})
//
//	// Or discover and parse in one step
//	descriptorLoader := loader.NewLoader()
//	descriptors, err := descriptorLoader.LoadDescriptors([]string{"./build/classes"})
//
// # Organization
//
// Each sub-package is focused on a specific concern:
//   - filesystem: Provides filesystem abstraction for testability
//   - scanner: Handles descriptor discovery and path normalization
//   - loader: Combines discovery with descriptor parsing
package files
