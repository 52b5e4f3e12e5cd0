package propdoc

// Documenter is the main interface for generating configuration property
// documentation. Implementations handle the full workflow including
// descriptor discovery, parsing, aggregation, rendering and writing.
type Documenter interface {
	// Generate produces a documentation file using the provided configuration.
	// It returns a summary of the run and an error if any stage fails.
	//
	// Finding no descriptor files is not an error: the result reports
	// Written=false and no output file is created.
	Generate(config GenerateConfig) (GenerateResult, error)
}
