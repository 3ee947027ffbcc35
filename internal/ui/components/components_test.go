// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/ui/styles"
)

func TestNoticeDisplay_View(t *testing.T) {
	theme := styles.NewTheme(styles.ModeDark)
	n := NewNotice("Save Error", "Could not save file: permission denied", true)
	n.SetSize(80)

	view := n.View(theme)
	if !strings.Contains(view, "Save Error") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "permission denied") {
		t.Error("view should contain the message")
	}
	if w := lipgloss.Width(view); w > 80 {
		t.Errorf("notice is %d columns wide, limit 80", w)
	}
}

func TestNoticeDisplay_MultiLineBody(t *testing.T) {
	n := NewNotice("Success", "Chat saved successfully to:\n/tmp/chat_log.txt", false)
	view := n.View(styles.NewTheme(styles.ModeDark))
	if !strings.Contains(view, "/tmp/chat_log.txt") {
		t.Error("path line missing from notice")
	}
}

func TestBoxWidth(t *testing.T) {
	cases := map[int]int{0: 52, 10: 20, 50: 42, 200: 60}
	for in, want := range cases {
		if got := boxWidth(in); got != want {
			t.Errorf("boxWidth(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestPromptDisplay_View(t *testing.T) {
	p := PromptDisplay{Title: "Save Chat Log", Width: 80}
	view := p.View(styles.NewTheme(styles.ModeDark), "file: chat_log.txt")
	for _, want := range []string{"Save Chat Log", "chat_log.txt"} {
		if !strings.Contains(view, want) {
			t.Errorf("prompt view missing %q", want)
		}
	}
}
