// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/export"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/session"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/ui/layout"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/ui/styles"
)

// Options configures the chat screen.
type Options struct {
	Context   context.Context
	Generator session.Generator
	Saver     export.Exporter
	Layout    *layout.View
	Theme     *styles.Theme

	// DefaultFilename pre-fills the save prompt.
	DefaultFilename string

	// ExportDir is joined onto relative save destinations.
	ExportDir string

	// Markdown renders model replies with glamour.
	Markdown bool

	// Model is shown in the title bar.
	Model string
}

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	ctrl   *session.Controller
	scr    *screen
	theme  *styles.Theme
	layout *layout.View
	keyMap KeyMap

	spinner spinner.Model

	// Save prompt
	saving          bool
	savePrompt      textinput.Model
	defaultFilename string
	exportDir       string
	fileExt         string

	modelName string
	width     int
	height    int
}

// New creates the chat screen and its controller.
func New(opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme(styles.ModeAuto)
	}
	if opts.Layout == nil {
		if v, err := layout.Default(); err == nil {
			opts.Layout = v
		} else {
			opts.Layout = &layout.View{Title: "Chat"}
		}
	}
	if opts.DefaultFilename == "" {
		opts.DefaultFilename = export.DefaultFilename
	}
	if opts.Saver == nil {
		opts.Saver = export.NewTextExporter()
	}

	scr := newScreen(opts.Theme, opts.Layout.Input.Placeholder, opts.Markdown)

	prompt := textinput.New()
	prompt.Prompt = "file: "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Theme.Pending

	return Model{
		ctrl:            session.NewController(opts.Context, scr, opts.Generator, opts.Saver),
		scr:             scr,
		theme:           opts.Theme,
		layout:          opts.Layout,
		keyMap:          DefaultKeyMap(),
		spinner:         sp,
		savePrompt:      prompt,
		defaultFilename: opts.DefaultFilename,
		exportDir:       opts.ExportDir,
		fileExt:         opts.Saver.FileExtension(),
		modelName:       opts.Model,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Controller returns the session controller behind the screen.
func (m Model) Controller() *session.Controller {
	return m.ctrl
}

// Saving reports whether the save prompt is open.
func (m Model) Saving() bool {
	return m.saving
}

// Notice returns the notice currently shown, if any.
func (m Model) Notice() (session.Notice, bool) {
	return m.scr.notice()
}

// InputFocused reports whether the message input has the cursor.
func (m Model) InputFocused() bool {
	return m.scr.input.Focused()
}

// Scrollback returns the plain text of the live view.
func (m Model) Scrollback() string {
	return m.scr.scrollback()
}

// InputValue returns the current text in the message input.
func (m Model) InputValue() string {
	return m.scr.input.Value()
}

// SubmitEnabled reports whether enter sends a message.
func (m Model) SubmitEnabled() bool {
	return m.scr.submitEnabled
}
