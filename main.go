// geminichat - chat with Gemini in your terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/cli"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/config"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/export"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/gemini"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/ui/chat"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/ui/layout"
	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/ui/styles"
)

// Version information (set at build time)
var Version = "0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		reportFatal(os.Stderr, err)
		os.Exit(cli.ExitGeneralError)
	}
}

// reportFatal prints a startup error, with a hint for a missing credential.
func reportFatal(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if gemini.IsConfigError(err) {
		fmt.Fprintf(w, "Set %s in the environment or in a .env file.\n", gemini.APIKeyEnv)
	}
}

// run performs startup and blocks until the chat screen exits. Any error it
// returns is fatal.
func run(argv []string, stdout, stderr io.Writer) error {
	opts := cli.DefaultOptions(Version)
	opts.Stdout, opts.Stderr = stdout, stderr

	args, err := cli.Parse(argv, opts)
	if err != nil {
		return err
	}
	if args.Version {
		cli.PrintVersion(stdout, opts.Name, Version)
		return nil
	}

	if err := loadEnvFile(args.EnvFile); err != nil {
		return err
	}

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Printf("config: %s", cfg)

	view, err := layout.Load(cfg.UI.LayoutPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	gcfg := gemini.DefaultConfig()
	gcfg.Model = cfg.Gemini.Model
	gcfg.Temperature = float32(cfg.Gemini.Temperature)
	gcfg.BaseURL = cfg.Gemini.BaseURL
	client, err := gemini.NewFromEnv(ctx, gcfg)
	if err != nil {
		return err
	}

	if err := cli.CheckTerminal(os.Stdin, os.Stdout); err != nil {
		return err
	}

	m := chat.New(chat.Options{
		Context:         ctx,
		Generator:       client,
		Saver:           export.NewTextExporter(),
		Layout:          view,
		Theme:           styles.NewTheme(cfg.UI.Theme),
		DefaultFilename: cfg.Export.DefaultFilename,
		ExportDir:       cfg.Export.Directory,
		Markdown:        cfg.UI.Markdown,
		Model:           client.Model(),
	})

	log.Printf("geminichat %s starting: model=%s session=%s", Version, client.Model(), m.Controller().SessionID())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running chat: %w", err)
	}
	return nil
}

// loadEnvFile loads variables from path without overriding ones already
// set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func loadConfig(args cli.Args) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if args.Config != "" {
		cfg, err = config.LoadFromPath(args.Config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if args.Debug {
		cfg.Log.Debug = true
	}
	return cfg, nil
}

// setupLogging sends the standard logger to the debug file, or discards it.
// The terminal belongs to the chat screen.
func setupLogging(lc config.LogConfig) (func(), error) {
	if !lc.Debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(lc.File, "geminichat")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return func() { f.Close() }, nil
}
