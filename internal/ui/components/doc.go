// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides overlay widgets for the chat screen.
//
//   - NoticeDisplay: modal box for info, success and error notices
//   - PromptDisplay: boxed single-line prompt (save destination)
package components
