// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SENDERS
// =============================================================================

const (
	// SenderUser is the sender name of messages typed by the user.
	SenderUser = "You"
	// SenderModel is the sender name of model replies.
	SenderModel = "Gemini"
)

// LogTimeLayout is the timestamp layout used in log lines.
const LogTimeLayout = "2006-01-02 15:04:05"

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single chat turn. It is a value type with unexported fields
// so it cannot be changed once constructed.
type Message struct {
	id        string
	sender    string
	content   string
	createdAt time.Time
}

// NewMessageAt creates a message with an explicit creation time.
func NewMessageAt(sender, content string, createdAt time.Time) Message {
	return Message{
		id:        "msg_" + uuid.NewString(),
		sender:    sender,
		content:   content,
		createdAt: createdAt,
	}
}

// ID returns the message identifier.
func (m Message) ID() string { return m.id }

// Sender returns who sent the message.
func (m Message) Sender() string { return m.sender }

// Content returns the message text.
func (m Message) Content() string { return m.content }

// CreatedAt returns when the message was constructed.
func (m Message) CreatedAt() time.Time { return m.createdAt }

// LogLine renders the message as "[YYYY-MM-DD HH:MM:SS] sender: content"
// in the location the timestamp was taken in (local time for Transcript.Add).
// No validation is done; empty content yields "sender: ".
func (m Message) LogLine() string {
	return "[" + m.createdAt.Format(LogTimeLayout) + "] " + m.DisplayLine()
}

// DisplayLine renders the message as "sender: content" for the live view.
func (m Message) DisplayLine() string {
	return m.sender + ": " + m.content
}
