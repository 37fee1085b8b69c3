// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clir

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var errorLabel = color.New(color.FgRed, color.Bold)

// MustParse builds a Cli for d and calls ParseOrExit. It panics if d is
// invalid.
func MustParse(d Descriptor, args []string, opts ...Option) *Cli {
	c, err := New(d, opts...)
	if err != nil {
		panic(fmt.Sprintf("clir: %v", err))
	}
	c.ParseOrExit(args)
	return c
}

// ParseOrExit parses args. On a help request it prints the help page and
// exits 0; on any error it prints the error and exits 1.
func (c *Cli) ParseOrExit(args []string) {
	err := c.Parse(args)
	switch {
	case err == nil:
		return
	case errors.Is(err, ErrHelp):
		if werr := c.WriteHelp(c.stdout); werr != nil {
			c.exit(1)
			return
		}
		c.exit(0)
	default:
		PrintError(c.stderr, c.program, err)
		c.exit(1)
	}
}

// PrintError writes err for the end user, followed by a --help hint when
// the error was caused by the arguments.
func PrintError(w io.Writer, program string, err error) {
	if err == nil {
		return
	}
	errorLabel.Fprint(w, "error:")
	fmt.Fprintf(w, " %v\n", err)
	if IsUsageError(err) {
		fmt.Fprintf(w, "Try '%s --help' for more information.\n", program)
	}
}
