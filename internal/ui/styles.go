package ui

import "github.com/charmbracelet/lipgloss"

// ─── Color tokens ────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorText    = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F3F4F6"}
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconChevron = "›"
	IconCross   = "✗"
	IconCheck   = "✓"
	IconTrash   = "−"
)

// ─── Styles ──────────────────────────────────────────────────────────────────

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	valueStyle   = lipgloss.NewStyle().Foreground(ColorText)
	removeStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	pathStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
)
