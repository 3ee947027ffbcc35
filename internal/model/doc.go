// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the chat data structures: messages and the
// transcript that holds them.
//
// # Key Types
//
//   - Message: one immutable chat turn (sender, content, creation time)
//   - Transcript: ordered, append-only list of messages for one session
//
// # Usage
//
//	t := model.NewTranscript()
//	t.Add(model.SenderUser, "Hello")
//	t.Add(model.SenderModel, "Hi there")
//	for _, msg := range t.Messages() {
//	    fmt.Println(msg.LogLine())
//	}
//
// A message renders two ways. LogLine carries a timestamp and is what
// exports write; DisplayLine has no timestamp and is what the live chat
// view shows.
package model
