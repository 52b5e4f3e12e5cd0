// Package scanner provides discovery of Spring Boot configuration metadata
// descriptors in directory trees.
//
// The scanner package is responsible for:
//   - Recursively walking each configured root folder
//   - Matching files whose path ends with the segments
//     META-INF/spring-configuration-metadata.json
//   - Preserving discovery order across roots, without deduplication
//
// The scanner is designed to be filesystem-agnostic through the use of the
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
