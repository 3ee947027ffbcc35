// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"
)

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript is the ordered, append-only message history of one session.
// There is no way to remove or clear entries; it lives until the process
// exits. It is not safe for concurrent use; one goroutine owns it.
//
// Invariant: Messages()[i].CreatedAt() <= Messages()[i+1].CreatedAt().
type Transcript struct {
	messages []Message
	now      func() time.Time
}

// NewTranscript creates an empty transcript using the wall clock.
func NewTranscript() *Transcript {
	return NewTranscriptWithClock(time.Now)
}

// NewTranscriptWithClock creates an empty transcript that stamps new
// messages using now.
func NewTranscriptWithClock(now func() time.Time) *Transcript {
	if now == nil {
		now = time.Now
	}
	return &Transcript{now: now}
}

// Add constructs a message from the transcript clock and appends it. If
// the clock has stepped backwards the timestamp is clamped to the last
// entry so the ordering invariant holds.
func (t *Transcript) Add(sender, content string) Message {
	ts := t.now()
	if n := len(t.messages); n > 0 {
		if last := t.messages[n-1].CreatedAt(); ts.Before(last) {
			ts = last
		}
	}
	msg := NewMessageAt(sender, content, ts)
	t.messages = append(t.messages, msg)
	return msg
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// IsEmpty reports whether the transcript has no messages.
func (t *Transcript) IsEmpty() bool {
	return len(t.messages) == 0
}

// Messages returns a copy of the messages in send order.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}
