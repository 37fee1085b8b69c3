// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env renders parse results as shell variable assignments.
package env

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yeetrun/clir/pkg/clir"
)

// Var is a single NAME=value assignment.
type Var struct {
	Name  string
	Value string
}

// Vars returns the state of c as variables. Flags become "true" or "false";
// parameters without a value are left out.
func Vars(prefix string, c *clir.Cli) []Var {
	var vars []Var
	for _, f := range c.Flags() {
		vars = append(vars, Var{Name: Key(prefix, f.Name), Value: strconv.FormatBool(f.Found)})
	}
	for _, p := range c.Parameters() {
		if p.Value == nil {
			continue
		}
		vars = append(vars, Var{Name: Key(prefix, p.Name), Value: *p.Value})
	}
	return vars
}

// Key returns the variable name for a flag or parameter: prefix followed by
// name, upper-cased, with anything that is not a letter or digit replaced by
// an underscore.
func Key(prefix, name string) string {
	key := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, prefix+name)
	if key != "" && key[0] >= '0' && key[0] <= '9' {
		key = "_" + key
	}
	return key
}

// Write writes vars to w, one assignment per line, quoted for a POSIX shell.
func Write(w io.Writer, vars []Var) error {
	for _, v := range vars {
		if _, err := fmt.Fprintf(w, "%s=%s\n", v.Name, Quote(v.Value)); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes an environment file with the given name and content.
func WriteFile(name string, vars []Var) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := Write(f, vars); err != nil {
		return fmt.Errorf("failed to write env: %v", err)
	}
	return f.Close()
}

// Quote returns s unchanged if the shell would read it literally, and
// single-quoted otherwise.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, unsafe) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func unsafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_./:,+@%=", r)
}
