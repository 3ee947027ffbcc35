// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"errors"
	"fmt"
)

// Error variables for common Gemini failures.
var (
	// ErrMissingAPIKey indicates GEMINI_API_KEY is unset or blank.
	ErrMissingAPIKey = errors.New(APIKeyEnv + " environment variable not set")

	// ErrNoCandidates indicates the API answered without any candidate.
	ErrNoCandidates = errors.New("response contained no candidates")

	// ErrNilResponse indicates the SDK returned neither a response nor an error.
	ErrNilResponse = errors.New("empty response")
)

// ConfigError is returned when the client cannot be constructed.
// It is fatal at startup.
type ConfigError struct {
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("gemini configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// GenerationError wraps any failure of a single generate call: transport,
// API status, or a response without candidates.
type GenerationError struct {
	Err error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is or wraps a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
