// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clir

import (
	"fmt"

	"tailscale.com/util/mak"
)

// ValueType is the kind of value a parameter accepts.
type ValueType string

const (
	String  ValueType = "string"
	Integer ValueType = "integer"
)

// orDefault maps the zero ValueType to String.
func (t ValueType) orDefault() ValueType {
	if t == "" {
		return String
	}
	return t
}

func (t ValueType) valid() bool {
	switch t.orDefault() {
	case String, Integer:
		return true
	}
	return false
}

// Descriptor declares the flags and parameters a program accepts.
// Flags and Parameters are kept in declaration order; that order decides
// positional assignment and the order of the help page.
type Descriptor struct {
	Name        string
	Version     string
	Description string
	Flags       []Flag
	Parameters  []Parameter
}

// Flag describes a boolean switch.
type Flag struct {
	Name        string
	Description string
	// Short is the one-letter alias used in -x clusters. Zero means none.
	Short rune
}

// Parameter describes a slot that receives a value, either positionally or,
// for optional parameters, with --name=value.
type Parameter struct {
	Name        string
	Description string
	Type        ValueType
	Optional    bool
	// Default is the value of an optional parameter that was not supplied.
	// Nil means no default.
	Default *string
}

// Names reserved by help interception.
const (
	helpName  = "help"
	helpShort = 'h'
)

// Validate reports the first problem with d as a *DescriptorError.
func (d Descriptor) Validate() error {
	var names map[string]string
	var shorts map[rune]string

	claim := func(kind, name string) error {
		if name == "" {
			return &DescriptorError{Kind: kind, Reason: "name must not be empty"}
		}
		if name == helpName {
			return &DescriptorError{Kind: kind, Name: name, Reason: "name is reserved for --help"}
		}
		if prev, ok := names[name]; ok {
			return &DescriptorError{Kind: kind, Name: name, Reason: fmt.Sprintf("name already declared as a %s", prev)}
		}
		mak.Set(&names, name, kind)
		return nil
	}

	for _, f := range d.Flags {
		if err := claim("flag", f.Name); err != nil {
			return err
		}
		if f.Short == 0 {
			continue
		}
		if !isASCIILetter(f.Short) {
			return &DescriptorError{Kind: "flag", Name: f.Name, Reason: fmt.Sprintf("short alias %q is not a single ASCII letter", f.Short)}
		}
		if f.Short == helpShort {
			return &DescriptorError{Kind: "flag", Name: f.Name, Reason: "short alias 'h' is reserved for -h"}
		}
		if prev, ok := shorts[f.Short]; ok {
			return &DescriptorError{Kind: "flag", Name: f.Name, Reason: fmt.Sprintf("short alias '%c' already used by %s", f.Short, prev)}
		}
		mak.Set(&shorts, f.Short, f.Name)
	}

	for _, p := range d.Parameters {
		if err := claim("parameter", p.Name); err != nil {
			return err
		}
		if !p.Type.valid() {
			return &DescriptorError{Kind: "parameter", Name: p.Name, Reason: fmt.Sprintf("unknown type %q", p.Type)}
		}
		if !p.Optional && p.Default != nil {
			return &DescriptorError{Kind: "parameter", Name: p.Name, Reason: "required parameters cannot have a default"}
		}
		if p.Default != nil && p.Type.orDefault() == Integer {
			if _, err := parseInteger(*p.Default); err != nil {
				return &DescriptorError{Kind: "parameter", Name: p.Name, Reason: fmt.Sprintf("default %q is not an integer", *p.Default)}
			}
		}
	}
	return nil
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
