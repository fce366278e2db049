package operation

import (
	"strconv"
	"strings"
)

// MapDocument adapts a decoded JSON object into a Document.
type MapDocument map[string]any

// GetPath resolves a dotted path against the document. Path segments traverse
// maps by key and slices by numeric index. An unresolvable path returns nil.
func (d MapDocument) GetPath(path string) any {
	if path == "" {
		return nil
	}

	var current any = map[string]any(d)
	for _, segment := range strings.Split(path, ".") {
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[segment]
			if !ok {
				return nil
			}
			current = next
		case MapDocument:
			next, ok := v[segment]
			if !ok {
				return nil
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil
			}
			current = v[idx]
		default:
			return nil
		}
	}
	return current
}
