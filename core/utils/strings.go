package utils

import "strings"

// SplitList splits s on any of the given separators, trims whitespace from
// every entry and drops empty entries. Order is preserved.
func SplitList(s string, seps ...rune) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		for _, sep := range seps {
			if r == sep {
				return true
			}
		}
		return false
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
