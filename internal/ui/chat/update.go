// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/export"
)

// Layout: title bar + viewport + bordered input (3 lines) + status line.
const (
	headerHeight    = 1
	inputAreaHeight = 3
	statusBarHeight = 1
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TurnCompleteMsg:
		return m.handleTurnComplete(msg)

	case spinner.TickMsg:
		if m.ctrl.Pending() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	vpHeight := m.height - headerHeight - inputAreaHeight - statusBarHeight
	m.scr.setSize(m.width, vpHeight)
	m.savePrompt.Width = max(m.width/2, 20)
	return m, nil
}

func (m Model) handleTurnComplete(msg TurnCompleteMsg) (tea.Model, tea.Cmd) {
	if err := m.ctrl.CompleteTurn(msg.Result); err != nil {
		log.Printf("chat: dropped turn result %s in state %s: %v", msg.Result.TurnID, m.ctrl.State(), err)
		return m, nil
	}
	return m, textinput.Blink
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	// The notice is modal: only dismissal keys are handled.
	if _, ok := m.scr.notice(); ok {
		if key.Matches(msg, m.keyMap.Cancel, m.keyMap.Confirm) {
			m.scr.dismissNotice()
		}
		return m, nil
	}

	if m.saving {
		return m.handleSavePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Save):
		return m.openSavePrompt()

	case key.Matches(msg, m.keyMap.PageUp, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.scr.viewport, cmd = m.scr.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keyMap.Submit):
		return m.submit()
	}

	if !m.scr.submitEnabled {
		return m, nil
	}
	var cmd tea.Cmd
	m.scr.input, cmd = m.scr.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.scr.submitEnabled {
		return m, nil
	}
	job := m.ctrl.SubmitTurn(m.scr.input.Value())
	if job == nil {
		return m, nil
	}
	return m, tea.Batch(runTurn(job), m.spinner.Tick)
}

// =============================================================================
// SAVE PROMPT
// =============================================================================

func (m Model) openSavePrompt() (tea.Model, tea.Cmd) {
	if !m.ctrl.RequestExport() {
		return m, nil
	}
	m.saving = true
	m.savePrompt.SetValue(m.defaultFilename)
	m.savePrompt.CursorEnd()
	m.scr.holdInput()
	cmd := m.savePrompt.Focus()
	return m, cmd
}

func (m Model) handleSavePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Confirm):
		dest := export.WithExtension(strings.TrimSpace(m.savePrompt.Value()), m.fileExt)
		m.closeSavePrompt()
		if _, err := m.ctrl.Export(export.ResolvePath(m.exportDir, dest)); err != nil {
			log.Printf("chat: save failed: %v", err)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Cancel):
		m.closeSavePrompt()
		return m, nil
	}

	var cmd tea.Cmd
	m.savePrompt, cmd = m.savePrompt.Update(msg)
	return m, cmd
}

func (m *Model) closeSavePrompt() {
	m.saving = false
	m.savePrompt.Blur()
	m.savePrompt.Reset()
	m.scr.releaseInput()
}
