// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses geminichat's command line and checks the terminal
// before the chat screen starts.
//
//	geminichat [--config PATH] [--env-file PATH] [--debug] [--version]
//
// There are no subcommands. A bare start runs the chat.
package cli
