package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseError represents a structured descriptor error with context and
// helpful hints. It includes the file path, an optional line number, the
// offending field or section, and an actionable suggestion.
type ParseError struct {
	FilePath string // Path to the descriptor with the error
	Line     int    // Line number (0 if unknown)
	Field    string // Field or section name (e.g. "properties[2].name") if applicable
	Message  string // Primary error message
	Hint     string // Actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *ParseError) Error() string {
	location := e.FilePath
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", e.FilePath, e.Line)
	}

	msg := fmt.Sprintf("descriptor error in %s: %s", location, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("descriptor error in %s [%s]: %s", location, e.Field, e.Message)
	}

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}

	return msg
}

// wrapJSONError converts json package errors to ParseError with line numbers
// where the error carries a byte offset into content.
func wrapJSONError(err error, content []byte, filePath string) error {
	if syntaxErr, ok := err.(*json.SyntaxError); ok {
		return &ParseError{
			FilePath: filePath,
			Line:     lineAtOffset(content, syntaxErr.Offset),
			Message:  syntaxErr.Error(),
			Hint: "The descriptor must be valid JSON. It is generated by the\n" +
				"spring-boot-configuration-processor; regenerate it rather than editing by hand.",
		}
	}

	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return &ParseError{
			FilePath: filePath,
			Line:     lineAtOffset(content, typeErr.Offset),
			Field:    typeErr.Field,
			Message:  fmt.Sprintf("unexpected %s value", typeErr.Value),
			Hint: "Expected format:\n" +
				"  {\n" +
				"    \"groups\":     [ {\"name\": \"...\", ...} ],\n" +
				"    \"properties\": [ {\"name\": \"...\", ...} ],\n" +
				"    \"hints\":      [ ... ]\n" +
				"  }",
		}
	}

	// Generic decoding error without positional information
	return &ParseError{
		FilePath: filePath,
		Message:  err.Error(),
		Hint:     "Verify the file is a spring-configuration-metadata.json descriptor.",
	}
}

// lineAtOffset converts a byte offset into a 1-based line number.
// Returns 0 when the offset does not point into content.
func lineAtOffset(content []byte, offset int64) int {
	if offset <= 0 || offset > int64(len(content)) {
		return 0
	}
	return bytes.Count(content[:offset], []byte("\n")) + 1
}
