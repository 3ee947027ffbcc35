// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/ui/styles"
)

// PromptDisplay frames a text input with a title.
type PromptDisplay struct {
	Title string
	Width int
}

// View renders the prompt box around input, the already-rendered field.
func (p PromptDisplay) View(theme *styles.Theme, input string) string {
	return theme.PromptBox.
		Width(boxWidth(p.Width)).
		Render(lipgloss.JoinVertical(lipgloss.Left, theme.PromptTitle.Render(p.Title), "", input))
}
