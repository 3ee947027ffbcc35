// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/model"
)

// =============================================================================
// COLLABORATORS
// =============================================================================

// View is the part of the shell the controller drives.
// All methods are called on the UI goroutine.
type View interface {
	RenderLine(line string)
	ClearInput()
	SetSubmitEnabled(enabled bool)
	ShowNotice(n Notice)
}

// Generator produces a reply for a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Saver writes a transcript to a file and returns its absolute path.
type Saver interface {
	SaveToFile(path string, msgs []model.Message) (string, error)
}

// =============================================================================
// NOTICES
// =============================================================================

// Severity classifies a notice.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "info"
}

// Notice is a modal message shown to the user.
type Notice struct {
	Title    string
	Body     string
	Severity Severity
}

// Notice titles and fixed bodies.
const (
	TitleConnectionError = "Connection Error"
	TitleInfo            = "Info"
	TitleSuccess         = "Success"
	TitleSaveError       = "Save Error"

	BodyNothingToSave = "No messages to save yet!"
)

// =============================================================================
// STATE
// =============================================================================

// State is the controller's turn state.
type State int

const (
	StateIdle State = iota
	StatePending
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	default:
		return "unknown"
	}
}

// Errors returned by CompleteTurn.
var (
	// ErrNotPending indicates a result arrived while no turn was outstanding.
	ErrNotPending = errors.New("no turn pending")

	// ErrStaleTurn indicates a result for a turn other than the pending one.
	ErrStaleTurn = errors.New("result for stale turn")
)

// TurnResult is the outcome of one background generate call.
type TurnResult struct {
	TurnID string
	Reply  string
	Err    error
}

// Job runs one generate call. It touches no controller state and is safe to
// run on any goroutine.
type Job func() TurnResult

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller owns the transcript and the turn state machine.
// It is not safe for concurrent use; call it only from the UI goroutine.
type Controller struct {
	ctx       context.Context
	view      View
	generator Generator
	saver     Saver

	sessionID  string
	transcript *model.Transcript
	state      State
	pendingID  string
}

// NewController creates a controller in the Idle state with an empty transcript.
func NewController(ctx context.Context, view View, gen Generator, saver Saver) *Controller {
	return NewControllerWithTranscript(ctx, view, gen, saver, model.NewTranscript())
}

// NewControllerWithTranscript creates a controller around an existing
// transcript. Tests use it to inject a clock.
func NewControllerWithTranscript(ctx context.Context, view View, gen Generator, saver Saver, tr *model.Transcript) *Controller {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Controller{
		ctx:        ctx,
		view:       view,
		generator:  gen,
		saver:      saver,
		sessionID:  "sess_" + uuid.NewString(),
		transcript: tr,
		state:      StateIdle,
	}
}

// SessionID returns the identifier of this chat session.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// State returns the current turn state.
func (c *Controller) State() State {
	return c.state
}

// Pending reports whether a turn is outstanding.
func (c *Controller) Pending() bool {
	return c.state == StatePending
}

// Transcript returns a copy of the messages so far.
func (c *Controller) Transcript() []model.Message {
	return c.transcript.Messages()
}

// SubmitTurn records the user's input and returns the Job that fetches the
// reply. Blank input, or input while a turn is pending, returns nil and
// changes nothing.
func (c *Controller) SubmitTurn(input string) Job {
	text := strings.TrimSpace(input)
	if text == "" || c.state == StatePending {
		return nil
	}

	c.record(model.SenderUser, text)
	c.view.ClearInput()
	c.view.SetSubmitEnabled(false)

	turnID := uuid.NewString()
	c.state = StatePending
	c.pendingID = turnID

	ctx, gen := c.ctx, c.generator
	return func() TurnResult {
		reply, err := gen.Generate(ctx, text)
		return TurnResult{TurnID: turnID, Reply: reply, Err: err}
	}
}

// CompleteTurn applies a Job's result. A result that does not match the
// pending turn is rejected and leaves the state untouched.
func (c *Controller) CompleteTurn(res TurnResult) error {
	if c.state != StatePending {
		return ErrNotPending
	}
	if res.TurnID != c.pendingID {
		return ErrStaleTurn
	}

	if res.Err != nil {
		log.Printf("session %s: turn failed: %v", c.sessionID, res.Err)
		c.view.ShowNotice(Notice{
			Title:    TitleConnectionError,
			Body:     "Could not reach Gemini: " + res.Err.Error(),
			Severity: SeverityError,
		})
	} else {
		c.record(model.SenderModel, res.Reply)
	}

	c.state = StateIdle
	c.pendingID = ""
	c.view.SetSubmitEnabled(true)
	return nil
}

// RequestExport reports whether there is anything to save. With an empty
// transcript it shows an informational notice and returns false.
func (c *Controller) RequestExport() bool {
	if c.transcript.IsEmpty() {
		c.view.ShowNotice(Notice{Title: TitleInfo, Body: BodyNothingToSave, Severity: SeverityInfo})
		return false
	}
	return true
}

// Export saves the transcript to dest and reports the outcome with a notice.
// An empty dest means the user cancelled; nothing happens.
func (c *Controller) Export(dest string) (string, error) {
	if dest == "" {
		return "", nil
	}

	path, err := c.saver.SaveToFile(dest, c.transcript.Messages())
	if err != nil {
		log.Printf("session %s: export failed: %v", c.sessionID, err)
		c.view.ShowNotice(Notice{
			Title:    TitleSaveError,
			Body:     "Could not save file: " + err.Error(),
			Severity: SeverityError,
		})
		return "", err
	}

	log.Printf("session %s: saved %d messages to %s", c.sessionID, c.transcript.Len(), path)
	c.view.ShowNotice(Notice{
		Title:    TitleSuccess,
		Body:     "Chat saved successfully to:\n" + path,
		Severity: SeverityInfo,
	})
	return path, nil
}

// record appends a message to the transcript and renders it.
func (c *Controller) record(sender, text string) {
	msg := c.transcript.Add(sender, text)
	log.Printf("session %s: %s from %s (%d bytes)", c.sessionID, msg.ID(), msg.Sender(), len(msg.Content()))
	c.view.RenderLine(msg.DisplayLine())
}
