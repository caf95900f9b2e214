package catalog

import (
	"sort"
	"strings"
)

// Reference is a normalized pointer to a catalog card taken from loosely
// shaped unit data. ID is set when the source carried an id-like key, Name
// when it carried a name-like key; a bare string sets both, since the data
// does not say which it is. A Reference with neither set never occurs:
// unusable entries are dropped during normalization.
type Reference struct {
	ID   string
	Name string
}

// referenceIDKeys and referenceNameKeys are the object keys probed, in
// priority order, when a default-equipped entry is an object.
var (
	referenceIDKeys   = []string{"itemId", "id", "code", "key", "uid", "cardId"}
	referenceNameKeys = []string{"name", "item", "label", "title", "card", "cardName"}
)

// NormalizeEquippedEntries flattens a raw "equipped" value (string, number,
// object, or arbitrarily nested arrays of those) into references. Entries
// carrying no usable id or name are dropped.
func NormalizeEquippedEntries(source any) []Reference {
	var result []Reference

	var visit func(value any)
	visit = func(value any) {
		switch v := value.(type) {
		case nil:
			return
		case []any:
			for _, entry := range v {
				visit(entry)
			}
		case float64:
			visit(formatNumber(v))
		case string:
			trimmed := strings.TrimSpace(v)
			if trimmed != "" {
				result = append(result, Reference{ID: trimmed, Name: trimmed})
			}
		case map[string]any:
			ref := Reference{}
			for _, key := range referenceIDKeys {
				if s, ok := v[key].(string); ok && ref.ID == "" {
					if trimmed := strings.TrimSpace(s); trimmed != "" {
						ref.ID = trimmed
					}
				}
			}
			for _, key := range referenceNameKeys {
				if s, ok := v[key].(string); ok && ref.Name == "" {
					if trimmed := strings.TrimSpace(s); trimmed != "" {
						ref.Name = trimmed
					}
				}
			}
			if ref.Name == "" {
				// Fall back to any string value, probing keys in sorted
				// order so the chosen name is stable between runs.
				keys := make([]string, 0, len(v))
				for key := range v {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					if s, ok := v[key].(string); ok {
						if trimmed := strings.TrimSpace(s); trimmed != "" {
							ref.Name = trimmed
							break
						}
					}
				}
			}
			if ref.ID != "" || ref.Name != "" {
				result = append(result, ref)
			}
		}
	}
	visit(source)

	return result
}
