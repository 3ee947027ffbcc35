// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal indicates stdin or stdout is not an interactive terminal.
var ErrNotTerminal = errors.New("geminichat needs an interactive terminal (stdin and stdout must be a TTY)")

// IsTTY returns true if f is a terminal.
func IsTTY(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// CheckTerminal returns ErrNotTerminal unless both stdin and stdout are
// terminals.
func CheckTerminal(stdin, stdout *os.File) error {
	if !IsTTY(stdin) || !IsTTY(stdout) {
		return ErrNotTerminal
	}
	return nil
}
