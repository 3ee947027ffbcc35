// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/session"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/ui/styles"
)

// stubGenerator answers every prompt with reply or err.
type stubGenerator struct {
	reply string
	err   error
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.reply, g.err
}

func newTestModel(t *testing.T, gen session.Generator) Model {
	t.Helper()
	m := New(Options{
		Context:   context.Background(),
		Generator: gen,
		Theme:     styles.NewTheme(styles.ModeDark),
		ExportDir: t.TempDir(),
		Model:     "gemini-2.0-flash",
	})
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// update applies msg and returns the new model, discarding the command.
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// turnResult runs cmd and any batched commands until a TurnCompleteMsg appears.
func turnResult(t *testing.T, cmd tea.Cmd) TurnCompleteMsg {
	t.Helper()
	require.NotNil(t, cmd)
	switch msg := cmd().(type) {
	case TurnCompleteMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if done, ok := c().(TurnCompleteMsg); ok {
				return done
			}
		}
	}
	t.Fatal("command produced no TurnCompleteMsg")
	return TurnCompleteMsg{}
}

// sendTurn types s, presses enter and applies the finished turn.
func sendTurn(t *testing.T, m Model, s string) Model {
	t.Helper()
	m = typeText(t, m, s)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	return update(t, m, turnResult(t, cmd))
}

// =============================================================================
// TURN TESTS
// =============================================================================

func TestSubmit_HelloScenario(t *testing.T) {
	m := newTestModel(t, &stubGenerator{reply: "Hi there"})

	m = typeText(t, m, "Hello")
	assert.Equal(t, "Hello", m.InputValue())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.Equal(t, "", m.InputValue(), "input cleared on submit")
	assert.False(t, m.SubmitEnabled(), "submission disabled while pending")
	assert.True(t, m.Controller().Pending())
	assert.Equal(t, "You: Hello\n\n", m.Scrollback())

	m = update(t, m, turnResult(t, cmd))

	assert.Equal(t, "You: Hello\n\nGemini: Hi there\n\n", m.Scrollback())
	assert.True(t, m.SubmitEnabled())
	assert.False(t, m.Controller().Pending())
	assert.Len(t, m.Controller().Transcript(), 2)
}

func TestSubmit_BlankInputDoesNothing(t *testing.T) {
	m := newTestModel(t, &stubGenerator{reply: "x"})
	m = typeText(t, m, "   ")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Empty(t, m.Scrollback())
	assert.True(t, m.SubmitEnabled())
}

func TestSubmit_IgnoredWhilePending(t *testing.T) {
	m := newTestModel(t, &stubGenerator{reply: "x"})
	m = typeText(t, m, "first")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	// Typing is ignored by the blurred input, enter does nothing
	m = typeText(t, m, "second")
	assert.Equal(t, "", m.InputValue())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Len(t, m.Controller().Transcript(), 1)
}

func TestTurnFailure_ShowsModalNotice(t *testing.T) {
	m := newTestModel(t, &stubGenerator{err: errors.New("timeout")})
	m = sendTurn(t, m, "Hello")

	n, ok := m.Notice()
	require.True(t, ok)
	assert.Equal(t, "Connection Error", n.Title)
	assert.Equal(t, "Could not reach Gemini: timeout", n.Body)
	assert.Equal(t, "You: Hello\n\n", m.Scrollback())
	assert.True(t, m.SubmitEnabled())
	assert.Contains(t, m.View(), "Connection Error")

	// Modal: typing does not reach the input
	m = typeText(t, m, "abc")
	assert.Equal(t, "", m.InputValue())
	_, ok = m.Notice()
	assert.True(t, ok)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_, ok = m.Notice()
	assert.False(t, ok)
}

func TestTurnComplete_StaleResultDropped(t *testing.T) {
	m := newTestModel(t, &stubGenerator{reply: "x"})

	m = update(t, m, TurnCompleteMsg{Result: session.TurnResult{TurnID: "nope", Reply: "ghost"}})

	assert.Empty(t, m.Scrollback())
	assert.Empty(t, m.Controller().Transcript())
}

// =============================================================================
// SAVE TESTS
// =============================================================================

func TestSave_EmptyTranscriptShowsInfo(t *testing.T) {
	m := newTestModel(t, &stubGenerator{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.False(t, m.Saving())
	n, ok := m.Notice()
	require.True(t, ok)
	assert.Equal(t, session.Notice{Title: "Info", Body: "No messages to save yet!", Severity: session.SeverityInfo}, n)
}

func TestSave_WritesFile(t *testing.T) {
	m := newTestModel(t, &stubGenerator{reply: "Hi there"})
	m = sendTurn(t, m, "Hello")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, m.Saving())
	assert.Equal(t, "chat_log.txt", m.savePrompt.Value())
	assert.Contains(t, m.View(), "Save Chat Log")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Saving())

	path := filepath.Join(m.exportDir, "chat_log.txt")
	n, ok := m.Notice()
	require.True(t, ok)
	assert.Equal(t, "Success", n.Title)
	assert.Equal(t, "Chat saved successfully to:\n"+path, n.Body)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	assert.True(t, strings.HasPrefix(text, "--- CHAT EXPORT ---\nDate: "))
	assert.Contains(t, text, "] You: Hello\n")
	assert.Contains(t, text, "] Gemini: Hi there\n")
	assert.True(t, strings.HasSuffix(text, "\n\n--- END OF LOG ---"))
}

func TestSave_CancelWritesNothing(t *testing.T) {
	m := newTestModel(t, &stubGenerator{reply: "Hi"})
	m = sendTurn(t, m, "Hello")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.Saving())
	_, ok := m.Notice()
	assert.False(t, ok)

	entries, err := os.ReadDir(m.exportDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.True(t, m.SubmitEnabled())
}

func TestSave_FailureShowsSaveError(t *testing.T) {
	m := newTestModel(t, &stubGenerator{reply: "Hi"})
	m = sendTurn(t, m, "Hello")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m.savePrompt.SetValue(filepath.Join("missing", "dir", "chat.txt"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	n, ok := m.Notice()
	require.True(t, ok)
	assert.Equal(t, "Save Error", n.Title)
	assert.True(t, strings.HasPrefix(n.Body, "Could not save file: "))
	assert.Len(t, m.Controller().Transcript(), 2)
}

func TestSave_AddsExtension(t *testing.T) {
	m := newTestModel(t, &stubGenerator{reply: "Hi"})
	m = sendTurn(t, m, "Hello")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m.savePrompt.SetValue("notes")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	n, ok := m.Notice()
	require.True(t, ok)
	assert.Equal(t, "Success", n.Title)
	_, err := os.Stat(filepath.Join(m.exportDir, "notes.txt"))
	assert.NoError(t, err)
}

func TestSave_ErrorNoticeSurvivesLaterTurnFailure(t *testing.T) {
	m := newTestModel(t, &stubGenerator{err: errors.New("timeout")})
	m = typeText(t, m, "Hello")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.True(t, m.Controller().Pending())

	// Save while the turn is still in flight, to a path that cannot exist.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, m.Saving())
	m.savePrompt.SetValue(filepath.Join("missing", "dir", "chat.txt"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	n, ok := m.Notice()
	require.True(t, ok)
	assert.Equal(t, "Save Error", n.Title)

	m = update(t, m, turnResult(t, cmd))

	n, ok = m.Notice()
	require.True(t, ok)
	assert.Equal(t, "Save Error", n.Title, "earlier notice stays on screen")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	n, ok = m.Notice()
	require.True(t, ok)
	assert.Equal(t, "Connection Error", n.Title)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	_, ok = m.Notice()
	assert.False(t, ok)
}

func TestSavePrompt_TurnCompletionKeepsInputBlurred(t *testing.T) {
	m := newTestModel(t, &stubGenerator{reply: "Hi there"})
	m = typeText(t, m, "Hello")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, m.Saving())

	m = update(t, m, turnResult(t, cmd))
	assert.True(t, m.SubmitEnabled())
	assert.False(t, m.InputFocused(), "prompt owns the cursor")
	assert.True(t, m.savePrompt.Focused())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Saving())
	assert.True(t, m.InputFocused())
}

// =============================================================================
// VIEW AND KEY TESTS
// =============================================================================

func TestView_ShowsTitleAndLines(t *testing.T) {
	m := newTestModel(t, &stubGenerator{reply: "Hi there"})
	m = sendTurn(t, m, "Hello")

	view := m.View()
	assert.Contains(t, view, "CPIT-305 Project")
	assert.Contains(t, view, "Hello")
	assert.Contains(t, view, "Hi there")
}

func TestView_BeforeResize(t *testing.T) {
	m := New(Options{Generator: &stubGenerator{}, Theme: styles.NewTheme(styles.ModeLight)})
	assert.Equal(t, "Loading...", m.View())
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlQ} {
		m := newTestModel(t, &stubGenerator{})
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestPageKeysDoNotTouchInput(t *testing.T) {
	m := newTestModel(t, &stubGenerator{})
	m = typeText(t, m, "draft")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})

	assert.Equal(t, "draft", m.InputValue())
}

func TestMarkdownReplies(t *testing.T) {
	m := New(Options{
		Generator: &stubGenerator{reply: "**Hi** there"},
		Theme:     styles.NewTheme(styles.ModeDark),
		Markdown:  true,
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	require.NotNil(t, m.scr.renderer)

	m = sendTurn(t, m, "Hello")

	// The live view text is unchanged; only rendering differs.
	assert.Equal(t, "You: Hello\n\nGemini: **Hi** there\n\n", m.Scrollback())
	assert.NotContains(t, m.scr.viewport.View(), "**Hi**")
	assert.Contains(t, m.scr.viewport.View(), "Hi")
}
