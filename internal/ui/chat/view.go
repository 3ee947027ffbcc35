// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/session"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/ui/components"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/util"
)

// View renders the chat screen.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	body := m.scr.viewport.View()
	if n, ok := m.scr.notice(); ok {
		body = m.place(m.renderNotice(n))
	} else if m.saving {
		body = m.place(m.renderSavePrompt())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderInput(),
		m.renderStatusBar(),
	)
}

// place centers an overlay in the scrollback area.
func (m Model) place(overlay string) string {
	return lipgloss.Place(m.scr.viewport.Width, m.scr.viewport.Height,
		lipgloss.Center, lipgloss.Center, overlay)
}

func (m Model) renderHeader() string {
	title := m.layout.Title
	if m.modelName != "" {
		title += " | " + m.modelName
	}
	title = util.TruncateWidth(title, max(m.width-2, 0))
	return m.theme.Header.Width(m.width).Render(m.theme.HeaderTitle.Render(title))
}

func (m Model) renderInput() string {
	style := m.theme.InputContainer
	if !m.scr.submitEnabled {
		style = m.theme.InputDisabled
	}
	return style.Width(max(m.width-2, 1)).Render(m.scr.input.View())
}

func (m Model) renderStatusBar() string {
	var status string
	switch {
	case m.ctrl.Pending():
		status = m.spinner.View() + " " + m.theme.Pending.Render("Waiting for Gemini...")
	case m.saving:
		status = m.layout.SavePrompt.Hint
	default:
		hint := m.layout.Input.SendHint
		if m.layout.Help.Text != "" {
			hint = strings.TrimSpace(hint + "  " + m.layout.Help.Text)
		}
		status = util.TruncateWidth(hint, max(m.width-2, 0))
	}
	return m.theme.StatusBar.Render(status)
}

func (m Model) renderNotice(n session.Notice) string {
	box := components.NewNotice(n.Title, n.Body, n.Severity == session.SeverityError)
	box.SetSize(m.width)
	return box.View(m.theme)
}

func (m Model) renderSavePrompt() string {
	box := components.PromptDisplay{
		Title: m.layout.SavePrompt.Title,
		Width: m.width,
	}
	return box.View(m.theme, m.savePrompt.View())
}
