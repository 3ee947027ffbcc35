// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for geminichat.
//
// Settings live in a TOML file with defaults, environment variable overrides
// and validation. The Gemini API key is not a config setting; it is read from
// GEMINI_API_KEY only.
//
// # Key Types
//
//   - Config: main configuration structure
//   - GeminiConfig: model and temperature
//   - ExportConfig: default file name and directory for saved chats
//   - UIConfig: theme, markdown rendering, custom view definition
//   - LogConfig: debug log file
//
// # Configuration Precedence
//
//   - Environment variables (GEMINICHAT_*)
//   - $GEMINICHAT_CONFIG or ~/.geminichat/config.toml
//   - Built-in defaults
//
// On first start Load writes the defaults to the config file so there is
// something to edit.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	model := cfg.Gemini.Model
package config
