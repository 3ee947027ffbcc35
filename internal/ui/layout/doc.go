// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout loads the chat view definition: the window title, input
// placeholder and prompt texts.
//
// The default definition is embedded in the binary. A custom file may be
// supplied; if it is configured but missing the program cannot start.
package layout
