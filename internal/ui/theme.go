package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MindForge theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSparkle  = "✨"
	IconDone     = "✅"
	IconTrophy   = "🏆"
	IconFlame    = "🔥"
	IconBolt     = "⚡"
	IconBrain    = "🧠"
	IconCalendar = "📅"
	IconTask     = "📝"
	IconChart    = "📊"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconUndo     = "↩️"
	IconTrash    = "🗑️"
)

var (
	cPrimary = lipgloss.Color("51")  // cyan
	cAccent  = lipgloss.Color("135") // purple
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
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

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

// XPBar renders a textual progress bar for the current level.
func XPBar(current, needed, width int) string {
	if width < 4 {
		width = 4
	}
	if needed <= 0 {
		needed = 1
	}
	filled := current * width / needed
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s", bar, Muted.Render(fmt.Sprintf("%d/%d XP", current, needed)))
}

// Checkbox renders the completion marker for a task row.
func Checkbox(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}

// Stars renders a 1-5 difficulty as filled/empty stars.
func Stars(difficulty int) string {
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 5 {
		difficulty = 5
	}
	return Gold.Render(strings.Repeat("★", difficulty)) + Muted.Render(strings.Repeat("☆", 5-difficulty))
}
