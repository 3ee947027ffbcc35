// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/model"
)

// =============================================================================
// EXPORT FORMAT
// =============================================================================

const (
	// Header opens every export; the date line follows it.
	Header = "--- CHAT EXPORT ---\n"

	// Footer closes every export. It carries no trailing newline.
	Footer = "\n--- END OF LOG ---"

	// DateLayout formats the export date line.
	DateLayout = "2006-01-02"

	// DefaultFilename is offered when the user saves a chat.
	DefaultFilename = "chat_log.txt"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter saves transcripts in one file format.
type Exporter interface {
	// SaveToFile writes msgs to path and returns the absolute path written.
	SaveToFile(path string, msgs []model.Message) (string, error)

	// FileExtension returns the format's file extension (e.g., ".txt").
	FileExtension() string
}

// =============================================================================
// ERRORS
// =============================================================================

// Error is returned when an export could not be written to disk.
type Error struct {
	Op   string // "open", "write" or "close"
	Path string
	Err  error
}

func (e *Error) Error() string {
	// A PathError already names the operation and path.
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// Write writes the framed plain-text export of msgs to w. The date line uses
// now; each message contributes its LogLine. Writing stops at the first error.
func Write(w io.Writer, msgs []model.Message, now time.Time) error {
	ew := &errWriter{w: w}
	ew.write(Header)
	ew.write("Date: " + now.Format(DateLayout) + "\n\n")
	for _, msg := range msgs {
		ew.write(msg.LogLine() + "\n")
	}
	ew.write(Footer)
	if ew.err != nil {
		return fmt.Errorf("write export: %w", ew.err)
	}
	return nil
}

// SaveToFile creates or truncates path and writes the export into it.
// The file is closed on every path. On success the absolute path is returned.
// A failed write may leave a partial file behind.
func SaveToFile(path string, msgs []model.Message, now time.Time) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", &Error{Op: "open", Path: absPath, Err: err}
	}

	writeErr := Write(f, msgs, now)
	closeErr := f.Close()

	switch {
	case writeErr != nil:
		return "", &Error{Op: "write", Path: absPath, Err: errors.Join(writeErr, closeErr)}
	case closeErr != nil:
		return "", &Error{Op: "close", Path: absPath, Err: closeErr}
	}
	return absPath, nil
}

// ResolvePath joins a user-entered name onto dir. Absolute names and an
// empty dir leave the name unchanged.
func ResolvePath(dir, name string) string {
	if name == "" || dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// WithExtension appends ext to name when name has no extension of its own.
// An empty name stays empty.
func WithExtension(name, ext string) string {
	if name == "" || filepath.Ext(name) != "" {
		return name
	}
	return name + ext
}

// =============================================================================
// HELPERS
// =============================================================================

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) write(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}
