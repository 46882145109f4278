package config

import (
	"fmt"
	"strings"
)

// Usage renders the help text listing the options accepted under p.
func Usage(name string, p Preset) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Usage: %s [options]\n", name)
	sb.WriteString("Options:\n")
	for _, opt := range options {
		if opt.FullOnly && p != PresetFull {
			continue
		}
		form := opt.Short + " or " + opt.Long
		if opt.Placeholder != "" {
			form += " " + opt.Placeholder
		}
		fmt.Fprintf(&sb, "  %-32s %s\n", form, opt.Description)
	}
	return sb.String()
}
