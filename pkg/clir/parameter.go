// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clir

import "strconv"

// ParameterState tracks the value assigned to a declared parameter.
type ParameterState struct {
	Name        string
	Description string
	Type        ValueType
	Optional    bool
	// Found is set by the first assignment from the command line. A default
	// does not count.
	Found bool
	// Value is nil until assigned, unless an optional parameter has a default.
	Value *string
}

func newParameterState(p Parameter) *ParameterState {
	desc := p.Description
	if desc == "" {
		desc = noDescription
	}
	s := &ParameterState{
		Name:        p.Name,
		Description: desc,
		Type:        p.Type.orDefault(),
		Optional:    p.Optional,
	}
	if p.Optional && p.Default != nil {
		v := *p.Default
		s.Value = &v
	}
	return s
}

// assign stores value, replacing any earlier one. Integer parameters reject
// values that are not base-10 integers.
func (p *ParameterState) assign(value string) error {
	p.Found = true
	if p.Type == Integer {
		if _, err := parseInteger(value); err != nil {
			return &TypeMismatchError{Parameter: p.Name, Type: p.Type, Value: value, Err: err}
		}
	}
	p.Value = &value
	return nil
}

func (p *ParameterState) assigned() bool {
	return p.Value != nil
}

func parseInteger(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
