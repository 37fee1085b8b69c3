// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui holds small terminal helpers shared by the help renderer and
// the clir command.
package tui

import "os"

const (
	ColorReset  = "\x1b[0m"
	ColorBold   = "\x1b[1m"
	ColorGreen  = "\x1b[32m"
	ColorYellow = "\x1b[33m"
)

// Colorizer wraps text in ANSI escapes when Enabled. The zero value is a
// no-op, so plain output is the default.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns an enabled Colorizer if enabled is true and the
// environment does not opt out via NO_COLOR or a dumb TERM.
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Wrap(code, text string) string {
	if !c.Enabled || code == "" {
		return text
	}
	return code + text + ColorReset
}

// Heading styles a section title such as "USAGE:".
func (c Colorizer) Heading(text string) string {
	return c.Wrap(ColorBold+ColorYellow, text)
}

// Name styles a flag or parameter name.
func (c Colorizer) Name(text string) string {
	return c.Wrap(ColorGreen, text)
}
