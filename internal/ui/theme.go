package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Startpad theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSpark     = "✨"
	IconTask      = "📋"
	IconDone      = "✅"
	IconHabit     = "🔁"
	IconStreak    = "🔥"
	IconBolt      = "⚡"
	IconBook      = "📚"
	IconScale     = "⚖️"
	IconFocus     = "🎯"
	IconGarden    = "🌱"
	IconLink      = "🔗"
	IconJournal   = "📓"
	IconChallenge = "🏅"
	IconInfo      = "ℹ️"
	IconWarn      = "⚠️"
	IconError     = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

// SetAccent swaps the accent color used for titles; called once at startup
// from the configured accent.
func SetAccent(color string) {
	if strings.TrimSpace(color) == "" {
		return
	}
	cAccent = lipgloss.Color(color)
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// XPBar renders level progress as a fixed-width meter.
func XPBar(xpInLevel, perLevel, width int) string {
	if width < 4 {
		width = 4
	}
	if perLevel <= 0 {
		perLevel = 1
	}
	filled := xpInLevel * width / perLevel
	if filled > width {
		filled = width
	}
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}

// Checkbox renders a done/not-done marker.
func Checkbox(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}
