// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/model"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/session"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/ui/styles"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/util"
)

// screen holds the mutable widgets the controller drives. The Model keeps a
// pointer to it so controller calls made during Update land in the state
// the next View renders.
type screen struct {
	theme *styles.Theme

	viewport viewport.Model
	input    textinput.Model

	lines         []string
	submitEnabled bool

	// notices are shown one at a time, oldest first.
	notices []session.Notice

	// inputHeld keeps the message input blurred while an overlay owns focus.
	inputHeld bool

	markdown bool
	renderer *glamour.TermRenderer
}

var _ session.View = (*screen)(nil)

func newScreen(theme *styles.Theme, placeholder string, markdown bool) *screen {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "> "
	input.CharLimit = 0
	input.Focus()

	return &screen{
		theme:         theme,
		viewport:      viewport.New(80, 20),
		input:         input,
		submitEnabled: true,
		markdown:      markdown,
	}
}

// RenderLine appends a "sender: content" line to the scrollback.
func (s *screen) RenderLine(line string) {
	s.lines = append(s.lines, line)
	s.refresh()
	s.viewport.GotoBottom()
}

// ClearInput empties the input field.
func (s *screen) ClearInput() {
	s.input.Reset()
}

// SetSubmitEnabled focuses or blurs the input. A blurred input ignores keys.
func (s *screen) SetSubmitEnabled(enabled bool) {
	s.submitEnabled = enabled
	s.syncFocus()
}

// ShowNotice queues a modal notice. Earlier notices stay on screen until
// dismissed.
func (s *screen) ShowNotice(n session.Notice) {
	s.notices = append(s.notices, n)
}

// notice returns the notice on screen, if any.
func (s *screen) notice() (session.Notice, bool) {
	if len(s.notices) == 0 {
		return session.Notice{}, false
	}
	return s.notices[0], true
}

// dismissNotice removes the notice on screen and reveals the next one.
func (s *screen) dismissNotice() {
	if len(s.notices) > 0 {
		s.notices = s.notices[1:]
	}
}

// holdInput blurs the message input until releaseInput.
func (s *screen) holdInput() {
	s.inputHeld = true
	s.syncFocus()
}

func (s *screen) releaseInput() {
	s.inputHeld = false
	s.syncFocus()
}

func (s *screen) syncFocus() {
	if s.submitEnabled && !s.inputHeld {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// scrollback returns the plain live-view text: each line followed by a
// blank line.
func (s *screen) scrollback() string {
	var b strings.Builder
	for _, line := range s.lines {
		b.WriteString(line)
		b.WriteString("\n\n")
	}
	return b.String()
}

func (s *screen) setSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.viewport.Width = width
	s.viewport.Height = height
	s.input.Width = max(width-6, 10)

	if s.markdown {
		r, err := newMarkdownRenderer(s.theme, width)
		if err != nil {
			log.Printf("chat: markdown renderer: %v", err)
			s.renderer = nil
		} else {
			s.renderer = r
		}
	}
	s.refresh()
}

// refresh re-renders the scrollback into the viewport.
func (s *screen) refresh() {
	var b strings.Builder
	for _, line := range s.lines {
		b.WriteString(s.renderLine(line))
		b.WriteString("\n\n")
	}
	s.viewport.SetContent(b.String())
}

func (s *screen) renderLine(line string) string {
	sender, body, ok := strings.Cut(line, ": ")
	if !ok || (sender != model.SenderUser && sender != model.SenderModel) {
		return util.WrapWidth(line, s.viewport.Width)
	}

	senderStyle := s.theme.UserSender
	if sender == model.SenderModel {
		senderStyle = s.theme.ModelSender
		if s.renderer != nil {
			if out, err := s.renderer.Render(body); err == nil {
				return senderStyle.Render(sender+":") + "\n" + strings.TrimRight(out, "\n")
			}
		}
	}

	wrapped := util.WrapWidth(line, s.viewport.Width)
	prefix := sender + ":"
	return senderStyle.Render(prefix) + s.theme.Body.Render(strings.TrimPrefix(wrapped, prefix))
}

func newMarkdownRenderer(theme *styles.Theme, width int) (*glamour.TermRenderer, error) {
	style := styles.ModeLight
	if theme.IsDark {
		style = styles.ModeDark
	}
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-4, 20)),
	)
}
