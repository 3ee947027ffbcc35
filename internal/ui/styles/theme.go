// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted by NewTheme.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme holds all the styled components for the chat screen.
type Theme struct {
	// IsDark is true when styles target a dark background.
	IsDark bool

	// Header
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// Scrollback lines
	UserSender  lipgloss.Style
	ModelSender lipgloss.Style
	Body        lipgloss.Style

	// Input area
	InputContainer lipgloss.Style
	InputDisabled  lipgloss.Style

	// Status line
	StatusBar lipgloss.Style
	Pending   lipgloss.Style
	Help      lipgloss.Style

	// Overlays
	NoticeInfo  lipgloss.Style
	NoticeError lipgloss.Style
	NoticeTitle lipgloss.Style
	PromptBox   lipgloss.Style
	PromptTitle lipgloss.Style
}

// NewTheme builds a theme for mode. ModeAuto detects the terminal
// background; the other modes force it.
func NewTheme(mode string) *Theme {
	var isDark bool
	switch mode {
	case ModeDark:
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case ModeLight:
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{IsDark: isDark}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Foreground(Blue).
		Bold(true)

	t.UserSender = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.ModelSender = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	t.Body = lipgloss.NewStyle().Foreground(TextPrimary)

	t.InputContainer = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(0, 1)
	t.InputDisabled = t.InputContainer.
		BorderForeground(Overlay)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)
	t.Pending = lipgloss.NewStyle().Foreground(Amber)
	t.Help = lipgloss.NewStyle().Foreground(TextMuted)

	notice := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)
	t.NoticeInfo = notice.BorderForeground(Emerald)
	t.NoticeError = notice.BorderForeground(Rose)
	t.NoticeTitle = lipgloss.NewStyle().Bold(true)

	t.PromptBox = notice.BorderForeground(Blue)
	t.PromptTitle = lipgloss.NewStyle().Foreground(Blue).Bold(true)
}

// NoticeBox returns the overlay style for a notice.
func (t *Theme) NoticeBox(isError bool) lipgloss.Style {
	if isError {
		return t.NoticeError
	}
	return t.NoticeInfo
}

// ValidMode reports whether mode is a known theme mode.
func ValidMode(mode string) bool {
	switch mode {
	case ModeAuto, ModeDark, ModeLight:
		return true
	}
	return false
}
