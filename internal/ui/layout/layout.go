// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultName is the name of the embedded view definition.
const DefaultName = "chat_view.toml"

//go:embed chat_view.toml
var defaultView []byte

// ErrMissingTitle indicates a view definition without a title.
var ErrMissingTitle = errors.New("view definition has no title")

// View is the chat view definition.
type View struct {
	Title string `toml:"title"`

	// Width and Height are the preferred window size. Terminals ignore them.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Input struct {
		Placeholder string `toml:"placeholder"`
		SendHint    string `toml:"send_hint"`
	} `toml:"input"`

	SavePrompt struct {
		Title string `toml:"title"`
		Hint  string `toml:"hint"`
	} `toml:"save_prompt"`

	Help struct {
		Text string `toml:"text"`
	} `toml:"help"`
}

// ResourceError is returned when the view definition cannot be loaded.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("cannot load view definition %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// Default returns the embedded view definition.
func Default() (*View, error) {
	return parse(DefaultName, defaultView)
}

// Load reads the view definition at path. An empty path loads the
// embedded default.
func Load(path string) (*View, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	return parse(path, data)
}

func parse(name string, data []byte) (*View, error) {
	var v View
	if _, err := toml.Decode(string(data), &v); err != nil {
		return nil, &ResourceError{Path: name, Err: fmt.Errorf("parse: %w", err)}
	}
	if v.Title == "" {
		return nil, &ResourceError{Path: name, Err: ErrMissingTitle}
	}
	return &v, nil
}
