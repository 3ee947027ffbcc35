// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
)

// Args holds the parsed command line.
type Args struct {
	Config  string `type:"path" help:"Path to the config file (default ~/.geminichat/config.toml)."`
	EnvFile string `name:"env-file" type:"path" default:".env" help:"Load environment variables from this file if it exists."`
	Debug   bool   `help:"Write a debug log to the configured log file."`
	Version bool   `short:"V" help:"Print the version and exit."`
}

// Options configures Parse.
type Options struct {
	Name        string
	Description string
	Version     string
	Exit        func(int)
	Stdout      io.Writer
	Stderr      io.Writer
}

// DefaultOptions returns options writing to the process's stdio.
func DefaultOptions(version string) Options {
	return Options{
		Name:        "geminichat",
		Description: "Chat with Gemini in your terminal.",
		Version:     version,
		Exit:        os.Exit,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

// Parse parses args (without the program name).
func Parse(args []string, opts Options) (Args, error) {
	var a Args
	parser, err := kong.New(&a,
		kong.Name(opts.Name),
		kong.Description(opts.Description),
		kong.Exit(opts.Exit),
		kong.Writers(opts.Stdout, opts.Stderr),
		kong.Vars{"version": opts.Version},
	)
	if err != nil {
		return Args{}, fmt.Errorf("build parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return Args{}, err
	}
	return a, nil
}

// PrintVersion writes the version line.
func PrintVersion(w io.Writer, name, version string) {
	fmt.Fprintf(w, "%s %s\n", name, version)
}
