// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chat transcripts to plain-text log files.
//
// The format is a fixed header with the export date, one timestamped line per
// message, and a closing footer:
//
//	--- CHAT EXPORT ---
//	Date: 2026-10-16
//
//	[2026-10-16 12:00:00] You: Hello
//	[2026-10-16 12:00:01] Gemini: Hi there
//
//	--- END OF LOG ---
//
// # Key Types
//
//   - Exporter: a file format that can save transcripts
//   - TextExporter: the plain-text implementation
//   - Error: file-level failure with the operation and path
package export
