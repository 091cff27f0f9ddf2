// Package templates implements flat placeholder substitution for HTML
// fragments.
//
// A placeholder has the form {{ dotted.key }}. Keys may contain letters,
// digits, underscores and dots; whitespace inside the braces is ignored.
// Each key is resolved by walking the data map one path component at a time.
// Missing components, nil values and values that are not maps at an
// intermediate step all render as the empty string, so output never
// contains an unresolved placeholder.
package templates

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([\w.]+)\s*\}\}`)

// Render substitutes every placeholder in tmpl with the value found in data.
// It has no side effects and is safe for concurrent use.
func Render(tmpl string, data map[string]any) string {
	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		key := placeholderPattern.FindStringSubmatch(match)[1]
		return stringify(lookup(data, key))
	})
}

// lookup walks data along a dotted path.
func lookup(data map[string]any, path string) any {
	var current any = data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			current = node[part]
		case map[string]string:
			v, ok := node[part]
			if !ok {
				return nil
			}
			current = v
		default:
			return nil
		}
		if current == nil {
			return nil
		}
	}
	return current
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
