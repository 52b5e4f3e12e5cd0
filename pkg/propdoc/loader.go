package propdoc

// DescriptorLoader discovers and parses configuration metadata descriptors.
type DescriptorLoader interface {
	// LoadDescriptors returns one parsed Descriptor per discovered file
	// under the given roots, in discovery order. An empty result with a nil
	// error means no descriptor files exist under any root.
	//
	// Any unreadable or unparsable descriptor fails the whole load; there
	// is no partial result.
	LoadDescriptors(roots []string) ([]Descriptor, error)
}
