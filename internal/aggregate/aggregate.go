package aggregate

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/propdoc/propdoc/pkg/propdoc"
)

// Build folds parsed descriptors into the documentation model in one pass.
//
// Top-level groups are the Kind==Group items whose name has no dot, in
// first-encountered order, duplicates preserved. Properties bucket by the
// first dot-segment of their name; both the bucket keys and the properties
// inside a bucket keep first-occurrence order. This is a stable grouping
// pass, never a sort.
func Build(descriptors []propdoc.Descriptor) propdoc.Documentation {
	var doc propdoc.Documentation

	// index maps bucket key to its position in doc.Namespaces; the slice
	// carries the order, the map carries the lookup.
	index := make(map[string]int)

	for _, descriptor := range descriptors {
		for _, item := range descriptor.Items {
			switch item.Kind {
			case propdoc.KindGroup:
				if strings.Contains(item.Name, ".") {
					// Nested groups never appear in the top-level index.
					continue
				}
				doc.Groups = append(doc.Groups, propdoc.Group{
					Name:        item.Name,
					Description: item.Description,
				})

			case propdoc.KindProperty:
				key := namespaceKey(item.Name)
				i, ok := index[key]
				if !ok {
					i = len(doc.Namespaces)
					index[key] = i
					doc.Namespaces = append(doc.Namespaces, propdoc.Namespace{Key: key})
				}
				doc.Namespaces[i].Properties = append(doc.Namespaces[i].Properties, propdoc.Property{
					Name:         item.Name,
					Description:  item.Description,
					DefaultValue: defaultValueString(item.DefaultValue),
					Type:         item.Type,
					SourceType:   item.SourceType,
					Deprecation:  item.Deprecation,
				})
			}
		}
	}

	return doc
}

// namespaceKey returns the first dot-segment of a property name. A name
// without a dot buckets under the full name.
func namespaceKey(name string) string {
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

// defaultValueString renders a parsed default to its documented form.
// Lists are comma-joined without padding. An absent default becomes the
// empty string, never "null". Numbers keep the literal form they had in
// the descriptor.
func defaultValueString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, elem := range v {
			parts = append(parts, defaultValueString(elem))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}
