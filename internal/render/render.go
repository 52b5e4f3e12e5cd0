// Package render executes a markdown template against the aggregated
// documentation model and writes the result. The embedded default template
// produces the standard four-column property reference; any template using
// the same context schema can replace it at runtime.
package render

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/propdoc/propdoc/pkg/propdoc"
)

// Context is the root object a template executes against.
//
// Custom templates see the same schema as the embedded default:
//
//	{{range .Groups}} exposes .Name and .Description
//	{{range .Properties}} exposes .Key, then {{range .Value}} over the rows
//
// Rows expose .Name, .Description, .DefaultValue (already normalized to its
// final string), .Type, .SourceType and .Deprecation (nil when the property
// is not deprecated; carries .Level, .Reason, .Replacement, .Since).
type Context struct {
	Groups     []propdoc.Group
	Properties []Section
}

// Section is one namespace bucket exposed to the template as a Key/Value
// pair, preserving first-occurrence order.
type Section struct {
	Key   string
	Value []propdoc.Property
}

//go:embed templates/default.md.tmpl
var defaultTemplateText string

// DefaultTemplateName identifies the embedded template in error messages.
const DefaultTemplateName = "default"

var defaultTemplate = template.Must(template.New(DefaultTemplateName).Parse(defaultTemplateText))

// DefaultTemplateText returns the embedded default template source, for
// extraction as a customization starting point.
func DefaultTemplateText() string {
	return defaultTemplateText
}

// Renderer executes one parsed template against documentation models.
type Renderer struct {
	tmpl *template.Template
}

// Default returns a renderer using the embedded default template.
func Default() *Renderer {
	return &Renderer{tmpl: defaultTemplate}
}

// New compiles template text into a renderer. The name appears in error
// messages, typically the template's file name.
func New(name, text string) (*Renderer, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", propdoc.ErrTemplateInvalid, name, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// NewFromFile loads and compiles a template file.
func NewFromFile(path string) (*Renderer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", propdoc.ErrTemplateNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", propdoc.ErrTemplateNotFound, path, err)
	}
	return New(filepath.Base(path), string(content))
}

// Render executes the template and returns the document text.
func (r *Renderer) Render(doc propdoc.Documentation) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, buildContext(doc)); err != nil {
		return "", fmt.Errorf("%w: executing %s: %w", propdoc.ErrTemplateInvalid, r.tmpl.Name(), err)
	}
	return buf.String(), nil
}

// RenderToFile renders the document and writes it to outputPath, replacing
// any existing file.
func (r *Renderer) RenderToFile(doc propdoc.Documentation, outputPath string) error {
	text, err := r.Render(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", propdoc.ErrWriteFailed, outputPath, err)
	}

	return nil
}

// buildContext adapts the aggregated model to the template schema. The
// Key/Value shape is what templates iterate over.
func buildContext(doc propdoc.Documentation) Context {
	sections := make([]Section, 0, len(doc.Namespaces))
	for _, ns := range doc.Namespaces {
		sections = append(sections, Section{Key: ns.Key, Value: ns.Properties})
	}
	return Context{Groups: doc.Groups, Properties: sections}
}

// Verify Renderer implements the interface at compile time
var _ propdoc.DocumentRenderer = (*Renderer)(nil)
