// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "CPIT-305 Project", v.Title)
	assert.Equal(t, 450, v.Width)
	assert.Equal(t, 600, v.Height)
	assert.NotEmpty(t, v.Input.Placeholder)
	assert.NotEmpty(t, v.SavePrompt.Title)
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	v, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "CPIT-305 Project", v.Title)
}

func TestLoad_CustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = \"My Chat\"\n[input]\nplaceholder = \"Ask\"\n"), 0644))

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "My Chat", v.Title)
	assert.Equal(t, "Ask", v.Input.Placeholder)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	_, err := Load(path)
	require.Error(t, err)

	var resErr *ResourceError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, path, resErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = [unclosed"), 0644))

	_, err := Load(path)
	var resErr *ResourceError
	require.ErrorAs(t, err, &resErr)
}

func TestLoad_MissingTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notitle.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 10\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrMissingTitle)
}
