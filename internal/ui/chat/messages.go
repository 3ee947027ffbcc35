// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/session"
)

// TurnCompleteMsg carries the result of a background generate call.
type TurnCompleteMsg struct {
	Result session.TurnResult
}

// runTurn wraps a controller Job in a command. Bubble Tea runs it on its
// own goroutine and delivers the TurnCompleteMsg back to Update.
func runTurn(job session.Job) tea.Cmd {
	return func() tea.Msg {
		return TurnCompleteMsg{Result: job()}
	}
}
