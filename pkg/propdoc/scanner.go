package propdoc

// DescriptorScanner discovers configuration metadata descriptor files.
// Implementations must be safe for concurrent use by multiple goroutines.
type DescriptorScanner interface {
	// ScanRoots recursively walks each root folder and returns the paths of
	// all descriptor files found, in discovery order. Roots are visited in
	// the given order; within one root, ordering follows filesystem
	// enumeration. A file qualifies when its path ends with the segments
	// META-INF/spring-configuration-metadata.json.
	//
	// Finding no descriptors is not an error; the result is simply empty.
	// Overlapping roots can report the same file more than once.
	ScanRoots(roots []string) ([]string, error)
}
