package services

import (
	"fmt"
	"strings"

	"github.com/propdoc/propdoc/internal/aggregate"
	"github.com/propdoc/propdoc/internal/render"
	"github.com/propdoc/propdoc/pkg/propdoc"
)

// rendererFactory builds the renderer for a single run. An empty templatePath
// selects the embedded default template.
type rendererFactory func(templatePath string) (propdoc.DocumentRenderer, error)

// DocumentationService implements the Documenter interface.
// Thread-Safety: safe for concurrent Generate() calls; the service keeps no
// per-run state.
type DocumentationService struct {
	loader          propdoc.DescriptorLoader
	logger          propdoc.Logger
	rendererFactory rendererFactory
}

// NewDocumentationService creates a new DocumentationService with all dependencies injected.
//
// Panic vs. Error Boundary Rationale:
//   - Panics on nil dependencies: These are programmer errors that should fail loudly
//     at application startup, not during a run. Fail-fast at construction time
//     prevents cryptic nil pointer dereferences deep in call stacks.
//   - Returns errors for runtime conditions: Configuration validation, unreadable
//     folders, malformed descriptors, missing templates and unwritable outputs are
//     recoverable runtime conditions that should be handled by the caller, not panics.
//
// This distinction ensures unrecoverable setup errors are caught immediately while
// allowing graceful error handling for recoverable operational conditions.
func NewDocumentationService(loader propdoc.DescriptorLoader, logger propdoc.Logger) *DocumentationService {
	if loader == nil {
		panic("loader cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &DocumentationService{
		loader:          loader,
		logger:          logger,
		rendererFactory: defaultRendererFactory,
	}
}

// defaultRendererFactory resolves the template selection: a path loads a
// custom template file, empty falls back to the embedded default.
func defaultRendererFactory(templatePath string) (propdoc.DocumentRenderer, error) {
	if templatePath == "" {
		return render.Default(), nil
	}
	return render.NewFromFile(templatePath)
}

// Generate executes the documentation workflow: discover and parse descriptor
// files, aggregate them into the document model, render and write the output.
// Finding no descriptor files ends the run successfully without writing.
func (s *DocumentationService) Generate(config propdoc.GenerateConfig) (propdoc.GenerateResult, error) {
	var result propdoc.GenerateResult

	if err := config.Validate(); err != nil {
		return result, fmt.Errorf("invalid configuration: %w", err)
	}

	s.logger.Verbose("Searching folder(s): %s", strings.Join(config.MetadataFolders, ", "))

	descriptors, err := s.loader.LoadDescriptors(config.MetadataFolders)
	if err != nil {
		return result, err // Error already wrapped by the loader
	}

	if len(descriptors) == 0 {
		s.logger.Info("No configuration metadata files(s) found. Bye bye.")
		return result, nil
	}

	result.DescriptorPaths = make([]string, 0, len(descriptors))
	for _, descriptor := range descriptors {
		result.DescriptorPaths = append(result.DescriptorPaths, descriptor.Path)
	}
	s.logger.Info("Found file(s): %s.", strings.Join(result.DescriptorPaths, ", "))

	doc := aggregate.Build(descriptors)
	result.Groups = len(doc.Groups)
	for _, namespace := range doc.Namespaces {
		result.Properties += len(namespace.Properties)
	}
	s.logger.Verbose("Aggregated %d group(s) and %d property(ies) into %d section(s)",
		result.Groups, result.Properties, len(doc.Namespaces))

	renderer, err := s.rendererFactory(config.TemplatePath)
	if err != nil {
		return result, err // Error already wrapped by the render package
	}

	s.logger.Info("Generating documentation file: %s ...", config.OutputPath)
	if err := renderer.RenderToFile(doc, config.OutputPath); err != nil {
		return result, err
	}
	s.logger.Info("Generated documentation file.")

	result.OutputPath = config.OutputPath
	result.Written = true
	return result, nil
}

// Verify DocumentationService implements the Documenter interface at compile time
var _ propdoc.Documenter = (*DocumentationService)(nil)
