// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session implements the chat controller that sits between the
// terminal shell and the language model.
//
// The Controller is a two-state machine (Idle, Pending). SubmitTurn records
// the user's message and hands back a Job for a background goroutine; the
// Job's TurnResult is applied with CompleteTurn on the UI goroutine. Only one
// turn may be outstanding at a time.
//
// # Key Types
//
//   - Controller: the state machine and transcript owner
//   - View: what the controller drives in the shell
//   - Generator: the language-model call
//   - Notice: a modal message for the user
//
// # Usage
//
//	ctrl := session.NewController(ctx, view, client, export.NewTextExporter())
//	if job := ctrl.SubmitTurn(input); job != nil {
//	    go func() { results <- job() }()
//	}
//	// later, on the UI goroutine:
//	ctrl.CompleteTurn(<-results)
package session
