// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command clir drives the clir parser from descriptor files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/shayne/yargs"
	"golang.org/x/term"
	"tailscale.com/types/logger"
)

var isTerminalFn = term.IsTerminal

// errReported is returned by handlers that already printed their failure
// and only need a non-zero exit.
var errReported = errors.New("error already reported")

type globalFlagsParsed struct {
	Verbose bool `flag:"verbose" help:"Log arguments the parser ignores"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

// splitPassthrough cuts args at the first "--". Everything after it belongs
// to the descriptor being exercised and is never seen by yargs.
func splitPassthrough(args []string) (own, passthrough []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

type app struct {
	stdout      io.Writer
	stderr      io.Writer
	passthrough []string
	logf        logger.Logf
	// isTTY reports whether stdout is a terminal.
	isTTY func() bool
}

func newApp() *app {
	return &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		logf:   logger.Discard,
		isTTY:  func() bool { return isTerminalFn(int(os.Stdout.Fd())) },
	}
}

func main() {
	own, passthrough := splitPassthrough(os.Args[1:])
	globalFlags, args, err := parseGlobalFlags(own)
	if err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(1)
	}
	a := newApp()
	a.passthrough = passthrough
	if globalFlags.Verbose {
		a.logf = log.Printf
	}
	if err := a.run(context.Background(), args); err != nil {
		if !errors.Is(err, errReported) {
			printCLIError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	handlers := map[string]yargs.SubcommandHandler{
		"usage":   a.handleUsage,
		"parse":   a.handleParse,
		"check":   a.handleCheck,
		"version": a.handleVersion,
	}
	return yargs.RunSubcommands(ctx, args, buildHelpConfig(), globalFlagsParsed{}, handlers)
}

var errorLabel = color.New(color.FgRed, color.Bold)

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	errorLabel.Fprint(w, "error:")
	fmt.Fprintf(w, " %v\n", err)
}

func buildHelpConfig() yargs.HelpConfig {
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "clir",
			Description: "Render help pages and parse argument lists from clir descriptor files.",
			Examples: []string{
				"clir usage cli.toml",
				"clir parse cli.toml -- -v input.md --output=out.md",
				`eval "$(clir parse cli.toml --format=env --prefix=APP_ -- "$@")"`,
				"clir check descriptors/*.yaml",
			},
		},
		SubCommands: map[string]yargs.SubCommandInfo{
			"usage": {
				Name:        "usage",
				Description: "Print the help page of a descriptor file",
				Usage:       "FILE [--no-color]",
				Examples:    []string{"clir usage cli.toml"},
			},
			"parse": {
				Name:        "parse",
				Description: "Parse the arguments after -- against a descriptor file",
				Usage:       "FILE [--format=table|json|yaml|env] [--prefix=P] -- ARGS...",
				Examples: []string{
					"clir parse cli.toml -- -v input.md",
					"clir parse cli.yaml --format=json -- input.md --output=x.md",
				},
			},
			"check": {
				Name:        "check",
				Description: "Validate and lint descriptor files",
				Usage:       "FILE [FILE...]",
			},
			"version": {
				Name:        "version",
				Description: "Print the clir version",
				Usage:       "[--json]",
			},
		},
	}
}
