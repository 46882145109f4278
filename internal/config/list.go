package config

import "strings"

// SplitList splits a comma-separated value, trimming whitespace around each
// piece and dropping empty pieces. Order is preserved.
func SplitList(raw string) []string {
	var out []string
	for _, piece := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(piece); p != "" {
			out = append(out, p)
		}
	}
	return out
}
