// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by geminichat packages.
//
// # Key Functions
//
// Display width:
//   - TruncateWidth: column-aware truncation with ellipsis
//   - WrapWidth: soft-wraps text to a column width, keeping existing newlines
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync, used for config files
//
// # Usage
//
//	status := util.TruncateWidth(longPath, 40)
//	body := util.WrapWidth(reply, viewportWidth)
package util
