// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/shayne/yargs"
	"github.com/yeetrun/clir/pkg/clir"
	"github.com/yeetrun/clir/pkg/descfile"
	"github.com/yeetrun/clir/pkg/tui"
	"github.com/yeetrun/clir/pkg/version"
	"golang.org/x/sync/errgroup"
)

// dropCommand removes the subcommand name yargs leaves at the front of args.
func dropCommand(args []string, name string) []string {
	if len(args) > 0 && args[0] == name {
		return args[1:]
	}
	return args
}

type usageFlagsParsed struct {
	NoColor bool `flag:"no-color" help:"Disable colored headings"`
}

func (a *app) handleUsage(_ context.Context, args []string) error {
	result, err := yargs.ParseFlags[usageFlagsParsed](dropCommand(args, "usage"))
	if err != nil {
		return err
	}
	if len(result.Args) != 1 {
		return errors.New("usage takes exactly one descriptor file")
	}
	d, err := descfile.Load(result.Args[0])
	if err != nil {
		return err
	}
	col := tui.NewColorizer(!result.Flags.NoColor && a.isTTY())
	c, err := clir.New(d, clir.WithColor(col))
	if err != nil {
		return err
	}
	return c.WriteHelp(a.stdout)
}

type parseFlagsParsed struct {
	Format string `flag:"format" default:"table" help:"Output format: table, json, yaml or env"`
	Prefix string `flag:"prefix" help:"Variable name prefix for --format=env"`
}

func (a *app) handleParse(_ context.Context, args []string) error {
	result, err := yargs.ParseFlags[parseFlagsParsed](dropCommand(args, "parse"))
	if err != nil {
		return err
	}
	if len(result.Args) != 1 {
		return errors.New("parse takes exactly one descriptor file")
	}
	file := result.Args[0]
	format := result.Flags.Format
	if format == "" {
		format = "table"
	}
	render, ok := renderers[format]
	if !ok {
		return fmt.Errorf("unknown format %q", format)
	}
	d, err := descfile.Load(file)
	if err != nil {
		return err
	}
	c, err := clir.New(d, clir.WithLogf(a.logf))
	if err != nil {
		return err
	}
	switch err := c.Parse(a.passthrough); {
	case errors.Is(err, clir.ErrHelp):
		return c.WriteHelp(a.stdout)
	case err != nil:
		program := d.Name
		if program == "" {
			program = filepath.Base(file)
		}
		clir.PrintError(a.stderr, program, err)
		return errReported
	}
	return render(a.stdout, c, result.Flags.Prefix)
}

type checkResult struct {
	warnings []string
	err      error
}

func (a *app) handleCheck(_ context.Context, args []string) error {
	args = dropCommand(args, "check")
	if len(args) == 0 {
		return errors.New("check takes at least one descriptor file")
	}
	results := make([]checkResult, len(args))
	var wg errgroup.Group
	for i, file := range args {
		wg.Go(func() error {
			d, err := descfile.Load(file)
			if err != nil {
				results[i].err = err
				return nil
			}
			results[i].warnings = descfile.Lint(d)
			return nil
		})
	}
	wg.Wait()

	failed := 0
	for i, file := range args {
		r := results[i]
		switch {
		case r.err != nil:
			failed++
			errorLabel.Fprint(a.stdout, "error:")
			fmt.Fprintf(a.stdout, " %v\n", r.err)
		case len(r.warnings) == 0:
			fmt.Fprintf(a.stdout, "%s: ok\n", file)
		default:
			for _, w := range r.warnings {
				fmt.Fprintf(a.stdout, "%s: warning: %s\n", file, w)
			}
		}
	}
	if failed > 0 {
		fmt.Fprintf(a.stderr, "%d of %d descriptor files are invalid\n", failed, len(args))
		return errReported
	}
	return nil
}

type versionFlagsParsed struct {
	JSON bool `flag:"json" help:"Print build information as JSON"`
}

func (a *app) handleVersion(_ context.Context, args []string) error {
	result, err := yargs.ParseFlags[versionFlagsParsed](dropCommand(args, "version"))
	if err != nil {
		return err
	}
	if !result.Flags.JSON {
		fmt.Fprintln(a.stdout, version.Version())
		return nil
	}
	b, err := json.MarshalIndent(version.Get(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, string(b))
	return nil
}
