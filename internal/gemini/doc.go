// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini adapts the Google Gen AI SDK to a single-prompt text
// generator.
//
// The client is built once at startup from GEMINI_API_KEY. Each call to
// Generate sends one prompt with a fixed model and temperature and returns
// the reply text. There is no retry and no streaming; callers bound the call
// with the context they pass in.
package gemini
