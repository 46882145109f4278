package config

import (
	"slices"
)

// Config is the resolved configuration for a single purge run.
type Config struct {
	// Root is the directory the walk starts from.
	Root string

	// Targets are bare names deleted wherever they are found.
	Targets []string

	// Ignore are bare names that are neither deleted nor entered.
	Ignore []string

	// UseIgnoreFile enables merging IgnoreFileName into Ignore.
	UseIgnoreFile bool
}

// IsTarget reports whether name is in the target list.
func (c Config) IsTarget(name string) bool {
	return slices.Contains(c.Targets, name)
}

// IsIgnored reports whether name is in the ignore list.
func (c Config) IsIgnored(name string) bool {
	return slices.Contains(c.Ignore, name)
}

// clone returns a copy that shares no slices with c.
func (c Config) clone() Config {
	c.Targets = slices.Clone(c.Targets)
	c.Ignore = slices.Clone(c.Ignore)
	return c
}

// Action is what the process should do after parsing.
type Action int

const (
	ActionRun Action = iota
	ActionHelp
	ActionVersion
)

// Invocation is the result of parsing the command line.
type Invocation struct {
	Action Action
	Config Config
	Debug  bool
}
