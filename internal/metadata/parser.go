package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/propdoc/propdoc/pkg/propdoc"
)

// Descriptor sections emitted by the annotation processor.
const (
	sectionGroups     = "groups"
	sectionProperties = "properties"
	sectionHints      = "hints"
)

// rawItem mirrors one entry of a groups or properties array. DefaultValue is
// decoded with json.Number so numeric defaults keep their literal form.
type rawItem struct {
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Description  string          `json:"description"`
	SourceType   string          `json:"sourceType"`
	SourceMethod string          `json:"sourceMethod"`
	DefaultValue interface{}     `json:"defaultValue"`
	Deprecated   bool            `json:"deprecated"`
	Deprecation  *rawDeprecation `json:"deprecation"`
}

// rawDeprecation mirrors the deprecation block of a property entry.
type rawDeprecation struct {
	Level       string `json:"level"`
	Reason      string `json:"reason"`
	Replacement string `json:"replacement"`
	Since       string `json:"since"`
}

// deprecation converts the wire representation to the public type. A
// deprecation object wins over the legacy boolean; the boolean alone yields
// an empty Deprecation so templates can still test for presence.
func (r *rawItem) deprecation() *propdoc.Deprecation {
	if r.Deprecation != nil {
		return &propdoc.Deprecation{
			Level:       r.Deprecation.Level,
			Reason:      r.Deprecation.Reason,
			Replacement: r.Deprecation.Replacement,
			Since:       r.Deprecation.Since,
		}
	}
	if r.Deprecated {
		return &propdoc.Deprecation{}
	}
	return nil
}

// Parse reads a spring-configuration-metadata.json document and returns its
// items in normalized order: groups in array order, then properties in array
// order. Hints are validated and dropped; they carry IDE value suggestions
// and never appear in generated documentation.
//
// Parameters:
//   - content: descriptor file content
//   - filePath: file path for error reporting (optional, can be empty)
//
// Error cases:
//   - Content is not a JSON object → ParseError with line number
//   - Top-level section other than groups/properties/hints → ParseError
//   - Entry without a name → ParseError naming the entry index
func Parse(content []byte, filePath string) ([]propdoc.Item, error) {
	decoder := json.NewDecoder(bytes.NewReader(content))

	var sections map[string]json.RawMessage
	if err := decoder.Decode(&sections); err != nil {
		return nil, wrapJSONError(err, content, filePath)
	}
	if sections == nil {
		return nil, &ParseError{
			FilePath: filePath,
			Message:  "descriptor must be a JSON object",
			Hint:     "The file should contain an object with \"groups\", \"properties\" and \"hints\" arrays.",
		}
	}
	if decoder.More() {
		return nil, &ParseError{
			FilePath: filePath,
			Message:  "unexpected content after the descriptor object",
			Hint:     "A descriptor holds exactly one JSON object.",
		}
	}

	for key := range sections {
		switch key {
		case sectionGroups, sectionProperties, sectionHints:
		default:
			return nil, &ParseError{
				FilePath: filePath,
				Field:    key,
				Message:  fmt.Sprintf("unknown top-level section %q", key),
				Hint: "A configuration metadata descriptor has only \"groups\", \"properties\"\n" +
					"and \"hints\" sections. Regenerate the file with the\n" +
					"spring-boot-configuration-processor instead of editing it by hand.",
			}
		}
	}

	items, err := decodeSection(sections[sectionGroups], sectionGroups, propdoc.KindGroup, filePath)
	if err != nil {
		return nil, err
	}

	properties, err := decodeSection(sections[sectionProperties], sectionProperties, propdoc.KindProperty, filePath)
	if err != nil {
		return nil, err
	}
	items = append(items, properties...)

	if raw, ok := sections[sectionHints]; ok {
		var hints []json.RawMessage
		if err := json.Unmarshal(raw, &hints); err != nil {
			return nil, &ParseError{
				FilePath: filePath,
				Field:    sectionHints,
				Message:  "hints must be an array",
				Hint:     "Each hint is an object describing value suggestions for one property.",
			}
		}
	}

	return items, nil
}

// decodeSection parses one groups or properties array into items of the
// given kind. A missing or null section yields no items.
func decodeSection(raw json.RawMessage, section string, kind propdoc.ItemKind, filePath string) ([]propdoc.Item, error) {
	if raw == nil {
		return nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var entries []rawItem
	if err := decoder.Decode(&entries); err != nil {
		return nil, &ParseError{
			FilePath: filePath,
			Field:    section,
			Message:  fmt.Sprintf("%s must be an array of entries: %v", section, err),
			Hint:     "Each entry is an object with at least a \"name\" field.",
		}
	}

	items := make([]propdoc.Item, 0, len(entries))
	for i, entry := range entries {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, &ParseError{
				FilePath: filePath,
				Field:    fmt.Sprintf("%s[%d].name", section, i),
				Message:  "name is required",
				Hint:     "Every group and property entry carries its full dotted name, e.g. \"server.port\".",
			}
		}

		items = append(items, propdoc.Item{
			Name:         entry.Name,
			Kind:         kind,
			Type:         entry.Type,
			Description:  entry.Description,
			SourceType:   entry.SourceType,
			SourceMethod: entry.SourceMethod,
			DefaultValue: entry.DefaultValue,
			Deprecation:  entry.deprecation(),
		})
	}

	return items, nil
}
