package propdoc

// DocumentRenderer turns aggregated documentation into final document text.
type DocumentRenderer interface {
	// Render executes the template against the documentation model and
	// returns the document text.
	Render(doc Documentation) (string, error)

	// RenderToFile renders the document and writes it to outputPath,
	// replacing any existing file. The parent directory must already exist.
	RenderToFile(doc Documentation, outputPath string) error
}
