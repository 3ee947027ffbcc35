// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/ui/styles"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/util"
)

// =============================================================================
// NOTICE DISPLAY
// =============================================================================

// NoticeDisplay is a modal notice box.
type NoticeDisplay struct {
	title   string
	message string
	isError bool

	width int
}

// NewNotice creates a notice box.
func NewNotice(title, message string, isError bool) NoticeDisplay {
	return NoticeDisplay{
		title:   title,
		message: message,
		isError: isError,
	}
}

// SetSize sets the space available to the box.
func (n *NoticeDisplay) SetSize(width int) {
	n.width = width
}

// View renders the notice box with theme.
func (n NoticeDisplay) View(theme *styles.Theme) string {
	width := boxWidth(n.width)

	title := theme.NoticeTitle.Render(n.title)
	body := util.WrapWidth(n.message, width-6)
	hint := theme.Help.Render("enter/esc to close")

	return theme.NoticeBox(n.isError).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint))
}

// boxWidth clamps an overlay to between 20 and 60 columns.
func boxWidth(available int) int {
	if available == 0 {
		available = 60
	}
	return max(min(available-8, 60), 20)
}
