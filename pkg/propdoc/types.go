package propdoc

import (
	"errors"
	"fmt"
	"strings"
)

// GenerateConfig contains all parameters needed to generate a documentation
// file from configuration metadata descriptors.
type GenerateConfig struct {
	// MetadataFolders are the root folders searched recursively for
	// descriptor files. Folders are visited in the given order.
	MetadataFolders []string

	// OutputPath is the file the rendered document is written to.
	// An existing file at that path is replaced.
	OutputPath string

	// TemplatePath is an optional custom template file.
	// Empty selects the embedded default template.
	TemplatePath string

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the GenerateConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *GenerateConfig) Validate() error {
	var errs []error

	if len(c.MetadataFolders) == 0 {
		errs = append(errs, fmt.Errorf("at least one metadata folder is required: %w", ErrInvalidConfig))
	}

	for _, folder := range c.MetadataFolders {
		if strings.TrimSpace(folder) == "" {
			errs = append(errs, fmt.Errorf("metadata folders must not be blank: %w", ErrInvalidConfig))
		}
	}

	if c.OutputPath == "" {
		errs = append(errs, fmt.Errorf("OutputPath is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ItemKind discriminates the entries of a configuration metadata descriptor.
type ItemKind int

const (
	KindGroup    ItemKind = iota // A configuration namespace declared by the processor
	KindProperty                 // A single configurable property
)

// String returns a human-readable string representation of the ItemKind.
func (k ItemKind) String() string {
	switch k {
	case KindGroup:
		return "Group"
	case KindProperty:
		return "Property"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Deprecation describes the deprecation block attached to a descriptor item.
// A nil *Deprecation means the item is not deprecated. The default template
// only inspects presence; the detail fields are available to custom templates.
type Deprecation struct {
	// Level is "warning" (property is still bound) or "error" (no longer bound).
	Level string

	// Reason explains why the property was deprecated.
	Reason string

	// Replacement names the property to use instead.
	Replacement string

	// Since is the version the deprecation was introduced in.
	Since string
}

// Item is one entry of a configuration metadata descriptor, either a group
// or a property. Items are immutable once produced by the loader.
//
// Hint entries present in the descriptor format carry value suggestions for
// IDE tooling; they are filtered out during parsing and never become Items.
type Item struct {
	// Name is the full dotted identifier, e.g. "server.port".
	Name string

	// Kind discriminates groups from properties.
	Kind ItemKind

	// Type is the fully qualified value or group type, when declared.
	Type string

	// Description is the free-text documentation, empty when absent.
	Description string

	// SourceType is the class contributing the item, when declared.
	SourceType string

	// SourceMethod is the factory method contributing the item, when declared.
	SourceMethod string

	// DefaultValue is the raw default exactly as parsed: nil when absent,
	// a scalar (string, bool or json.Number) or a list of scalars.
	// Normalization to the renderable string happens during aggregation.
	DefaultValue interface{}

	// Deprecation is nil for items that are not deprecated.
	Deprecation *Deprecation
}

// Descriptor is one parsed configuration metadata file.
type Descriptor struct {
	// Path is the descriptor file location as discovered.
	Path string

	// Items holds the file's groups and properties in on-disk order,
	// groups before properties, hints removed.
	Items []Item
}

// Group is a top-level namespace entry for the document index.
type Group struct {
	Name        string
	Description string
}

// Property is a render-ready property row. DefaultValue has been normalized
// to its final string form: lists are comma-joined, absent values are empty.
type Property struct {
	Name         string
	Description  string
	DefaultValue string
	Type         string
	SourceType   string
	Deprecation  *Deprecation
}

// Namespace is an ordered bucket of properties sharing the first segment of
// their dotted name.
type Namespace struct {
	// Key is the first dot-segment, e.g. "server" for "server.port".
	// A property name without a dot keys a bucket by its full name.
	Key string

	// Properties preserves first-occurrence order across all descriptors.
	Properties []Property
}

// Documentation is the aggregated model handed to the renderer.
//
// Groups and Namespaces are independent collections: a namespace exists for
// every property prefix even without a declared group, and a declared group
// may own no properties. Duplicate group names from different descriptors
// are all kept, never merged.
type Documentation struct {
	// Groups are the top-level group items in first-encountered order.
	Groups []Group

	// Namespaces are the property buckets in first-occurrence order.
	Namespaces []Namespace
}

// GenerateResult summarizes a completed documentation run.
type GenerateResult struct {
	// DescriptorPaths lists the parsed descriptor files in discovery order.
	DescriptorPaths []string

	// OutputPath is the written file, empty when nothing was written.
	OutputPath string

	// Written reports whether a document was produced. False with a nil
	// error means no descriptor files were found.
	Written bool

	// Groups counts the top-level group entries in the document index.
	Groups int

	// Properties counts the property rows across all namespaces.
	Properties int
}
