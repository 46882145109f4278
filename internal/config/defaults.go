package config

// Preset selects the defaults and the option set accepted by Parse.
type Preset int

const (
	// PresetFull accepts the ignore list and ignore file options and starts
	// from the default ignore list.
	PresetFull Preset = iota

	// PresetMinimal only knows about the root path and the target list.
	// Nothing is ignored and no ignore file is read.
	PresetMinimal
)

// String returns the preset name.
func (p Preset) String() string {
	switch p {
	case PresetFull:
		return "full"
	case PresetMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DefaultRoot is the walk root when no path option is given.
const DefaultRoot = "."

// IgnoreFileName is the ignore file read from the working directory.
const IgnoreFileName = ".gitignore"

// ─── Defaults ────────────────────────────────────────────────────────────────

// defaultTargets are dependency artifacts removed wherever they appear.
var defaultTargets = []string{
	"node_modules",
	"pnpm-lock.yaml",
	"yarn.lock",
	"package-lock.json",
}

// defaultIgnore are project-internal folders the walk never enters.
var defaultIgnore = []string{
	".changeset",
	".husky",
	".git",
	".github",
	"src",
}

// DefaultTargets returns a fresh copy of the default target list.
func DefaultTargets() []string {
	return append([]string(nil), defaultTargets...)
}

// DefaultIgnore returns a fresh copy of the default ignore list.
func DefaultIgnore() []string {
	return append([]string(nil), defaultIgnore...)
}

// Defaults returns the starting Configuration for the given preset.
func Defaults(p Preset) Config {
	cfg := Config{
		Root:    DefaultRoot,
		Targets: DefaultTargets(),
	}
	if p == PresetFull {
		cfg.Ignore = DefaultIgnore()
		cfg.UseIgnoreFile = true
	}
	return cfg
}
