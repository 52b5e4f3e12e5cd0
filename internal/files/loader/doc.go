// Package loader combines descriptor discovery and parsing.
//
// The loader package is responsible for:
//   - Scanning the configured metadata folders for descriptor files
//   - Reading each discovered file through the filesystem abstraction
//   - Parsing file content into the normalized item stream
//
// Discovery order is preserved end to end: descriptors come back in the
// order the scanner found them, and items keep their on-disk order inside
// each descriptor. A single malformed file aborts the load with no partial
// result, so a generated document never silently misses a module.
package loader
