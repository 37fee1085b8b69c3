// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clir

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yeetrun/clir/pkg/tui"
	"tailscale.com/types/logger"
)

// Cli holds the parse state for one Descriptor. A Cli parses once; its
// accessors then read the outcome.
type Cli struct {
	desc    Descriptor
	program string

	flags []*FlagState
	// params is in declaration order; necessary and optional split it.
	params    []*ParameterState
	necessary []*ParameterState
	optional  []*ParameterState

	parsed bool

	logf   logger.Logf
	stdout io.Writer
	stderr io.Writer
	exit   func(int)
	color  tui.Colorizer
}

// Option configures a Cli.
type Option func(*Cli)

// WithLogf sets the logger used to trace arguments the parser ignores.
func WithLogf(logf logger.Logf) Option {
	return func(c *Cli) { c.logf = logf }
}

// WithStdout sets where ParseOrExit writes the help page.
func WithStdout(w io.Writer) Option {
	return func(c *Cli) { c.stdout = w }
}

// WithStderr sets where ParseOrExit writes errors.
func WithStderr(w io.Writer) Option {
	return func(c *Cli) { c.stderr = w }
}

// WithExit replaces os.Exit in ParseOrExit.
func WithExit(exit func(code int)) Option {
	return func(c *Cli) { c.exit = exit }
}

// WithColor sets the colorizer used for help headings.
func WithColor(col tui.Colorizer) Option {
	return func(c *Cli) { c.color = col }
}

// New validates d and prepares a Cli for parsing.
func New(d Descriptor, opts ...Option) (*Cli, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	c := &Cli{
		desc:    d,
		program: d.Name,
		logf:    logger.Discard,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		exit:    os.Exit,
	}
	if c.program == "" {
		c.program = filepath.Base(os.Args[0])
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, f := range d.Flags {
		c.flags = append(c.flags, newFlagState(f))
	}
	for _, p := range d.Parameters {
		s := newParameterState(p)
		c.params = append(c.params, s)
		if s.Optional {
			c.optional = append(c.optional, s)
		} else {
			c.necessary = append(c.necessary, s)
		}
	}
	return c, nil
}

// Descriptor returns the descriptor c was built from.
func (c *Cli) Descriptor() Descriptor {
	return c.desc
}

// HasFlag reports whether the named flag appeared on the command line.
func (c *Cli) HasFlag(name string) (bool, error) {
	f := c.flagByName(name)
	if f == nil {
		return false, &UnknownNameError{Kind: "flag", Name: name}
	}
	return f.Found, nil
}

// ParameterValue returns the assigned or default value of the named
// parameter, or "" if it has neither.
func (c *Cli) ParameterValue(name string) (string, error) {
	v, _, err := c.LookupParameter(name)
	return v, err
}

// LookupParameter is like ParameterValue but also reports whether the
// parameter has a value.
func (c *Cli) LookupParameter(name string) (value string, ok bool, err error) {
	p := c.paramByName(name)
	if p == nil {
		return "", false, &UnknownNameError{Kind: "parameter", Name: name}
	}
	if p.Value == nil {
		return "", false, nil
	}
	return *p.Value, true, nil
}

// IntValue returns the value of the named parameter as an integer.
func (c *Cli) IntValue(name string) (int64, error) {
	v, ok, err := c.LookupParameter(name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("parameter %q has no value", name)
	}
	n, err := parseInteger(v)
	if err != nil {
		return 0, &TypeMismatchError{Parameter: name, Type: Integer, Value: v, Err: err}
	}
	return n, nil
}

// Flags returns a snapshot of every flag in declaration order.
func (c *Cli) Flags() []FlagState {
	out := make([]FlagState, len(c.flags))
	for i, f := range c.flags {
		out[i] = *f
	}
	return out
}

// Parameters returns a snapshot of every parameter in declaration order.
func (c *Cli) Parameters() []ParameterState {
	out := make([]ParameterState, len(c.params))
	for i, p := range c.params {
		out[i] = *p
		if p.Value != nil {
			v := *p.Value
			out[i].Value = &v
		}
	}
	return out
}

func (c *Cli) flagByName(name string) *FlagState {
	for _, f := range c.flags {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (c *Cli) flagByShort(r rune) *FlagState {
	for _, f := range c.flags {
		if f.Short != 0 && f.Short == r {
			return f
		}
	}
	return nil
}

// paramByName searches required parameters before optional ones.
func (c *Cli) paramByName(name string) *ParameterState {
	if p := paramIn(c.necessary, name); p != nil {
		return p
	}
	return paramIn(c.optional, name)
}

func paramIn(params []*ParameterState, name string) *ParameterState {
	for _, p := range params {
		if p.Name == name {
			return p
		}
	}
	return nil
}
