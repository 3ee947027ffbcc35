// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/ui/styles"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/util"
)

// Environment variables that override the config file.
const (
	EnvConfigPath = "GEMINICHAT_CONFIG"
	EnvModel      = "GEMINICHAT_MODEL"
	EnvLogFile    = "GEMINICHAT_LOG_FILE"
	EnvDebug      = "GEMINICHAT_DEBUG"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config holds all geminichat settings.
type Config struct {
	Gemini GeminiConfig `toml:"gemini" json:"gemini"`
	Export ExportConfig `toml:"export" json:"export"`
	UI     UIConfig     `toml:"ui" json:"ui"`
	Log    LogConfig    `toml:"log" json:"log"`
}

// GeminiConfig configures the model call. The API key is never stored here;
// it comes from GEMINI_API_KEY.
type GeminiConfig struct {
	Model       string  `toml:"model" json:"model"`
	Temperature float64 `toml:"temperature" json:"temperature"`

	// BaseURL overrides the API endpoint (proxies, tests).
	BaseURL string `toml:"base_url,omitempty" json:"base_url,omitempty"`
}

// ExportConfig configures chat log saving.
type ExportConfig struct {
	DefaultFilename string `toml:"default_filename" json:"default_filename"`

	// Directory is joined onto relative file names. Empty means the
	// working directory.
	Directory string `toml:"directory,omitempty" json:"directory,omitempty"`
}

// UIConfig configures the chat screen.
type UIConfig struct {
	Theme      string `toml:"theme" json:"theme"` // "auto", "dark" or "light"
	Markdown   bool   `toml:"markdown" json:"markdown"`
	LayoutPath string `toml:"layout_path,omitempty" json:"layout_path,omitempty"`
}

// LogConfig configures the debug log. The terminal belongs to the UI, so
// logs only go to a file.
type LogConfig struct {
	File  string `toml:"file" json:"file"`
	Debug bool   `toml:"debug" json:"debug"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model:       "gemini-2.0-flash",
			Temperature: 0.7,
		},
		Export: ExportConfig{
			DefaultFilename: "chat_log.txt",
		},
		UI: UIConfig{
			Theme: "auto",
		},
		Log: LogConfig{
			File: "geminichat.log",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the geminichat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".geminichat"), nil
}

// ConfigPathTOML returns the config file path. GEMINICHAT_CONFIG wins over
// the default location.
func ConfigPathTOML() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads the configuration from the default location. On first start the
// file does not exist yet; it is written with the defaults, which are then
// used. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPathTOML()
	if err != nil {
		return finish(Default())
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		if err := SaveTOML(Default(), path); err != nil {
			// Not fatal: the defaults still apply.
			log.Printf("config: could not write default config: %v", err)
		}
		return finish(Default())
	}
	return LoadFromPath(path)
}

// LoadTOML decodes a TOML file into cfg. Unknown keys are rejected.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// LoadFromPath loads configuration from a specific file with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes the configuration to path with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# geminichat configuration file\n")
	buf.WriteString("# The API key is read from GEMINI_API_KEY, never from this file.\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if strings.TrimSpace(c.Gemini.Model) == "" {
		errs = append(errs, ValidationError{
			Field:   "gemini.model",
			Message: "must not be empty",
		})
	}
	if c.Gemini.Temperature < 0 || c.Gemini.Temperature > 2 {
		errs = append(errs, ValidationError{
			Field:   "gemini.temperature",
			Message: fmt.Sprintf("%g out of range, must be between 0 and 2", c.Gemini.Temperature),
		})
	}

	name := c.Export.DefaultFilename
	switch {
	case strings.TrimSpace(name) == "":
		errs = append(errs, ValidationError{
			Field:   "export.default_filename",
			Message: "must not be empty",
		})
	case strings.ContainsAny(name, `/\`):
		errs = append(errs, ValidationError{
			Field:   "export.default_filename",
			Message: fmt.Sprintf("'%s' must be a file name, not a path", name),
		})
	}

	if !styles.ValidMode(c.UI.Theme) {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills empty fields with defaults. Temperature is left alone
// since 0 is a valid value.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Gemini.Model == "" {
		c.Gemini.Model = defaults.Gemini.Model
	}
	if c.Export.DefaultFilename == "" {
		c.Export.DefaultFilename = defaults.Export.DefaultFilename
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	if c.Log.File == "" {
		c.Log.File = defaults.Log.File
	}
}

// ApplyEnvOverrides applies GEMINICHAT_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	// GEMINICHAT_MODEL
	if model := os.Getenv(EnvModel); model != "" {
		c.Gemini.Model = model
	}

	// GEMINICHAT_LOG_FILE
	if file := os.Getenv(EnvLogFile); file != "" {
		c.Log.File = file
	}

	// GEMINICHAT_DEBUG
	if debug := os.Getenv(EnvDebug); debug != "" {
		if v, err := strconv.ParseBool(debug); err == nil {
			c.Log.Debug = v
		}
	}
}

// String returns the configuration as indented JSON.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
