// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling for the chat screen.
//
// Colors are Lip Gloss AdaptiveColors. The Theme detects the terminal's
// background with termenv, or takes a forced "dark" or
// "light" mode from the config.
//
// # Usage
//
//	theme := styles.NewTheme(styles.ModeAuto)
//	header := theme.Header.Render("CPIT-305 Project")
package styles
