package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatSize renders a byte count for humans, e.g. "1.5 MB".
func FormatSize(bytes uint64) string {
	return humanize.Bytes(bytes)
}

// FormatList renders names the way the diagnostics show them: ["a", "b"].
func FormatList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = fmt.Sprintf("%q", it)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
