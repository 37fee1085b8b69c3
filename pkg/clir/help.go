// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clir

import (
	"fmt"
	"io"
	"strings"
)

const (
	entryIndent = "    "
	descIndent  = 12
)

// Help renders the help page:
//
//	<name> (<version>):
//	<description>
//
//	USAGE:
//	    <name> [FLAGS] [PARAMETERS] [OPTIONS]
//
//	FLAGS:
//	    -<short>, --<flag>
//	            <description>
//
//	PARAMETERS:
//	        [<parameter>]
//	            <description>
//
//	OPTIONS:
//	        --<option>=<value>
//	            <description>
//
// Empty sections are left out, as are the usage markers for them.
func (c *Cli) Help() string {
	var b strings.Builder
	col := c.color

	var head bool
	if c.desc.Name != "" {
		head = true
		if c.desc.Version != "" {
			fmt.Fprintf(&b, "%s (%s):\n", c.desc.Name, c.desc.Version)
		} else {
			fmt.Fprintf(&b, "%s:\n", c.desc.Name)
		}
	}
	if c.desc.Description != "" {
		head = true
		b.WriteString(c.desc.Description)
		b.WriteString("\n")
	}
	if head {
		b.WriteString("\n")
	}

	flags := make([]string, 0, len(c.flags))
	for _, f := range c.flags {
		var line string
		if f.Short != 0 {
			line = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		} else {
			line = "    --" + f.Name
		}
		flags = append(flags, entryIndent+col.Name(line)+"\n"+indent(f.Description, descIndent))
	}
	params := make([]string, 0, len(c.necessary))
	for _, p := range c.necessary {
		params = append(params, entryIndent+entryIndent+col.Name("["+p.Name+"]")+"\n"+indent(p.Description, descIndent))
	}
	options := make([]string, 0, len(c.optional))
	for _, p := range c.optional {
		options = append(options, entryIndent+entryIndent+col.Name("--"+p.Name+"=<value>")+"\n"+indent(p.Description, descIndent))
	}

	usage := c.program
	if len(flags) > 0 {
		usage += " [FLAGS]"
	}
	if len(params) > 0 {
		usage += " [PARAMETERS]"
	}
	if len(options) > 0 {
		usage += " [OPTIONS]"
	}
	b.WriteString(col.Heading("USAGE:"))
	b.WriteString("\n")
	b.WriteString(entryIndent + usage + "\n")

	for _, sec := range []struct {
		title   string
		entries []string
	}{
		{"FLAGS:", flags},
		{"PARAMETERS:", params},
		{"OPTIONS:", options},
	} {
		if len(sec.entries) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(col.Heading(sec.title))
		b.WriteString("\n")
		b.WriteString(strings.Join(sec.entries, "\n\n"))
		b.WriteString("\n")
	}
	return b.String()
}

// WriteHelp writes the help page to w.
func (c *Cli) WriteHelp(w io.Writer) error {
	_, err := io.WriteString(w, c.Help())
	return err
}

// indent prefixes every line of text with n spaces.
func indent(text string, n int) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
