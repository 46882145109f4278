package config

import (
	"fmt"
	"strings"
)

// option describes one recognized command-line keyword.
type option struct {
	// Long is the keyword form, e.g. "targets".
	Long string

	// Short is the dash alias, e.g. "-t".
	Short string

	// TakesValue means the next argument is consumed as the value.
	TakesValue bool

	// FullOnly options are unknown under PresetMinimal.
	FullOnly bool

	// Placeholder names the value in usage text.
	Placeholder string

	// Description is shown in usage text.
	Description string

	apply func(b *builder, value string) error
}

// builder accumulates configuration while arguments are processed in order.
type builder struct {
	cfg        Config
	action     Action
	debug      bool
	setReplace string
	setExtends bool
	done       bool
}

var options = []option{
	{
		Long: "help", Short: "-h",
		Description: "Show this help message.",
		apply: func(b *builder, _ string) error {
			b.action = ActionHelp
			b.done = true
			return nil
		},
	},
	{
		Long: "version", Short: "-v",
		Description: "Print version information.",
		apply: func(b *builder, _ string) error {
			b.action = ActionVersion
			b.done = true
			return nil
		},
	},
	{
		Long: "debug", Short: "-d",
		Description: "Show detailed operation logs.",
		apply: func(b *builder, _ string) error {
			b.debug = true
			return nil
		},
	},
	{
		Long: "path", Short: "-p", TakesValue: true, Placeholder: "<path>",
		Description: "Specify the path to delete files and folders.",
		apply: func(b *builder, value string) error {
			b.cfg.Root = value
			return nil
		},
	},
	{
		Long: "targets", Short: "-t", TakesValue: true, Placeholder: "<targets>",
		Description: "Replace the targets to delete.",
		apply:       replaceTargets("targets"),
	},
	{
		Long: "overwrite", Short: "-o", TakesValue: true, Placeholder: "<targets>",
		Description: "Replace the targets to delete (same as targets).",
		apply:       replaceTargets("overwrite"),
	},
	{
		Long: "extends", Short: "-e", TakesValue: true, Placeholder: "<targets>",
		Description: "Add to the targets to delete.",
		apply: func(b *builder, value string) error {
			if b.setReplace != "" {
				return fmt.Errorf("%w: 'extends' cannot be used with '%s'", ErrConflict, b.setReplace)
			}
			b.cfg.Targets = append(b.cfg.Targets, SplitList(value)...)
			b.setExtends = true
			return nil
		},
	},
	{
		Long: "ignore", Short: "-i", TakesValue: true, FullOnly: true, Placeholder: "<folders>",
		Description: "Specify folders to ignore.",
		apply: func(b *builder, value string) error {
			b.cfg.Ignore = SplitList(value)
			return nil
		},
	},
	{
		Long: "gitignore", Short: "-gi", TakesValue: true, FullOnly: true, Placeholder: "<true|false>",
		Description: "Enable or disable reading from .gitignore.",
		apply: func(b *builder, value string) error {
			b.cfg.UseIgnoreFile = !strings.EqualFold(value, "false")
			return nil
		},
	},
}

func replaceTargets(keyword string) func(b *builder, value string) error {
	return func(b *builder, value string) error {
		if b.setExtends {
			return fmt.Errorf("%w: '%s' cannot be used with 'extends'", ErrConflict, keyword)
		}
		b.cfg.Targets = SplitList(value)
		b.setReplace = keyword
		return nil
	}
}

// lookup finds the option matching token under the given preset.
func lookup(token string, p Preset) (option, bool) {
	for _, opt := range options {
		if opt.FullOnly && p != PresetFull {
			continue
		}
		if token == opt.Long || token == opt.Short {
			return opt, true
		}
	}
	return option{}, false
}

// Parse processes args (without the program name) left to right, starting
// from the preset defaults. It stops at the first help or version option and
// at the first error; conflicts are reported as soon as the second flag of a
// conflicting pair is seen.
func Parse(args []string, p Preset) (*Invocation, error) {
	b := &builder{cfg: Defaults(p)}

	for i := 0; i < len(args) && !b.done; i++ {
		token := args[i]
		opt, ok := lookup(token, p)
		if !ok {
			return nil, fmt.Errorf("%w %s. Use help or -h for usage information", ErrUnknownOption, token)
		}

		var value string
		if opt.TakesValue {
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%w: you must specify a value after '%s'", ErrMissingValue, opt.Long)
			}
			i++
			value = args[i]
		}

		if err := opt.apply(b, value); err != nil {
			return nil, err
		}
	}

	return &Invocation{
		Action: b.action,
		Config: b.cfg.clone(),
		Debug:  b.debug,
	}, nil
}
