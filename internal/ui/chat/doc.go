// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Bubble Tea chat screen.
//
// The screen has a title bar, a scrollback of "sender: content" lines, a
// single-line input and a status line. Two overlays sit on top: a modal
// notice and the save-destination prompt.
//
// # Key Types
//
//   - Model: the Bubble Tea model
//   - Options: what the screen needs from main
//   - TurnCompleteMsg: carries a finished model reply back to Update
//
// # Keys
//
//	enter       send the message
//	ctrl+s      save the chat to a file
//	pgup/pgdn   scroll the history
//	esc/enter   dismiss a notice
//	ctrl+c      quit
//
// All controller calls happen inside Update. The model call runs in a
// tea.Cmd and its result comes back as a TurnCompleteMsg.
package chat
