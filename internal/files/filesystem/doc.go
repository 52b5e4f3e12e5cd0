// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The scanner and loader discover and read configuration metadata descriptors
// through these interfaces, so their logic can be tested against an in-memory
// tree instead of the real filesystem.
//
// Key interfaces:
//   - FileSystemProvider: Factory for directory instances plus direct file access
//   - Directory: A directory tree that can be traversed
//   - File: An individual file with metadata and content
//   - FileInfo: File metadata, aliased from fs.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for tests
//   - EmbedFileSystem: Read-only implementation over an embed.FS
package filesystem
