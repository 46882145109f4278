package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	inv, err := Parse(nil, PresetFull)
	require.NoError(t, err)

	assert.Equal(t, ActionRun, inv.Action)
	assert.Equal(t, ".", inv.Config.Root)
	assert.Equal(t, []string{"node_modules", "pnpm-lock.yaml", "yarn.lock", "package-lock.json"}, inv.Config.Targets)
	assert.Equal(t, []string{".changeset", ".husky", ".git", ".github", "src"}, inv.Config.Ignore)
	assert.True(t, inv.Config.UseIgnoreFile)
	assert.False(t, inv.Debug)
}

func TestParseMinimalPresetDefaults(t *testing.T) {
	inv, err := Parse(nil, PresetMinimal)
	require.NoError(t, err)

	assert.Equal(t, DefaultTargets(), inv.Config.Targets)
	assert.Empty(t, inv.Config.Ignore)
	assert.False(t, inv.Config.UseIgnoreFile)
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, inv *Invocation)
	}{
		{
			name: "Path long form",
			args: []string{"path", "/tmp/project"},
			check: func(t *testing.T, inv *Invocation) {
				assert.Equal(t, "/tmp/project", inv.Config.Root)
			},
		},
		{
			name: "Path alias",
			args: []string{"-p", "web"},
			check: func(t *testing.T, inv *Invocation) {
				assert.Equal(t, "web", inv.Config.Root)
			},
		},
		{
			name: "Targets replace defaults",
			args: []string{"-t", "dist, build"},
			check: func(t *testing.T, inv *Invocation) {
				assert.Equal(t, []string{"dist", "build"}, inv.Config.Targets)
			},
		},
		{
			name: "Overwrite replaces defaults",
			args: []string{"overwrite", "target"},
			check: func(t *testing.T, inv *Invocation) {
				assert.Equal(t, []string{"target"}, inv.Config.Targets)
			},
		},
		{
			name: "Targets then overwrite keeps the last",
			args: []string{"-t", "a", "-o", "b"},
			check: func(t *testing.T, inv *Invocation) {
				assert.Equal(t, []string{"b"}, inv.Config.Targets)
			},
		},
		{
			name: "Extends appends in order",
			args: []string{"extends", "dist,.next", "-e", "coverage"},
			check: func(t *testing.T, inv *Invocation) {
				assert.Equal(t, []string{
					"node_modules", "pnpm-lock.yaml", "yarn.lock", "package-lock.json",
					"dist", ".next", "coverage",
				}, inv.Config.Targets)
			},
		},
		{
			name: "Ignore replaces defaults",
			args: []string{"-i", "vendor,docs"},
			check: func(t *testing.T, inv *Invocation) {
				assert.Equal(t, []string{"vendor", "docs"}, inv.Config.Ignore)
			},
		},
		{
			name: "Gitignore false is case-insensitive",
			args: []string{"-gi", "FaLsE"},
			check: func(t *testing.T, inv *Invocation) {
				assert.False(t, inv.Config.UseIgnoreFile)
			},
		},
		{
			name: "Gitignore other values leave it on",
			args: []string{"gitignore", "no"},
			check: func(t *testing.T, inv *Invocation) {
				assert.True(t, inv.Config.UseIgnoreFile)
			},
		},
		{
			name: "Gitignore last value wins",
			args: []string{"-gi", "false", "-gi", "true"},
			check: func(t *testing.T, inv *Invocation) {
				assert.True(t, inv.Config.UseIgnoreFile)
			},
		},
		{
			name: "Debug",
			args: []string{"-d"},
			check: func(t *testing.T, inv *Invocation) {
				assert.True(t, inv.Debug)
			},
		},
		{
			name: "Help stops processing",
			args: []string{"-p", "x", "help", "--bogus", "-t"},
			check: func(t *testing.T, inv *Invocation) {
				assert.Equal(t, ActionHelp, inv.Action)
			},
		},
		{
			name: "Version",
			args: []string{"version"},
			check: func(t *testing.T, inv *Invocation) {
				assert.Equal(t, ActionVersion, inv.Action)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Parse(tt.args, PresetFull)
			require.NoError(t, err)
			tt.check(t, inv)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name         string
		preset       Preset
		args         []string
		wantErr      error
		wantContains string
	}{
		{
			name:         "Unknown option",
			args:         []string{"-p", ".", "--force"},
			wantErr:      ErrUnknownOption,
			wantContains: "--force",
		},
		{
			name:         "Unknown option before help",
			args:         []string{"bogus", "help"},
			wantErr:      ErrUnknownOption,
			wantContains: "bogus",
		},
		{
			name:         "Missing path value",
			args:         []string{"path"},
			wantErr:      ErrMissingValue,
			wantContains: "'path'",
		},
		{
			name:         "Missing gitignore value",
			args:         []string{"-gi"},
			wantErr:      ErrMissingValue,
			wantContains: "'gitignore'",
		},
		{
			name:         "Targets then extends",
			args:         []string{"-t", "a", "-e", "b"},
			wantErr:      ErrConflict,
			wantContains: "'extends' cannot be used with 'targets'",
		},
		{
			name:         "Extends then overwrite",
			args:         []string{"extends", "a", "overwrite", "b"},
			wantErr:      ErrConflict,
			wantContains: "'overwrite' cannot be used with 'extends'",
		},
		{
			name:         "Ignore is unknown in minimal preset",
			preset:       PresetMinimal,
			args:         []string{"-i", "src"},
			wantErr:      ErrUnknownOption,
			wantContains: "-i",
		},
		{
			name:         "Gitignore is unknown in minimal preset",
			preset:       PresetMinimal,
			args:         []string{"gitignore", "false"},
			wantErr:      ErrUnknownOption,
			wantContains: "gitignore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Parse(tt.args, tt.preset)
			require.Error(t, err)
			assert.Nil(t, inv)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantContains)
			assert.True(t, IsUsageError(err))
		})
	}
}

func TestParseDoesNotShareDefaults(t *testing.T) {
	first, err := Parse([]string{"-e", "dist"}, PresetFull)
	require.NoError(t, err)
	first.Config.Ignore[0] = "changed"

	second, err := Parse(nil, PresetFull)
	require.NoError(t, err)
	assert.Equal(t, DefaultTargets(), second.Config.Targets)
	assert.Equal(t, ".changeset", second.Config.Ignore[0])
}

func TestConfigMembership(t *testing.T) {
	cfg := Config{Targets: []string{"node_modules"}, Ignore: []string{"src"}}

	assert.True(t, cfg.IsTarget("node_modules"))
	assert.False(t, cfg.IsTarget("Node_Modules"))
	assert.True(t, cfg.IsIgnored("src"))
	assert.False(t, cfg.IsIgnored("src/"))
}

func TestUsage(t *testing.T) {
	full := Usage("purge-deps", PresetFull)
	assert.Contains(t, full, "Usage: purge-deps [options]")
	assert.Contains(t, full, "-gi or gitignore <true|false>")
	assert.Contains(t, full, "-o or overwrite <targets>")

	minimal := Usage("purge-deps", PresetMinimal)
	assert.NotContains(t, minimal, "gitignore")
	assert.NotContains(t, minimal, "-i or ignore")
	assert.Contains(t, minimal, "-e or extends <targets>")
}

func TestPresetString(t *testing.T) {
	assert.Equal(t, "full", PresetFull.String())
	assert.Equal(t, "minimal", PresetMinimal.String())
}
