// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clir

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrHelp is returned by Parse when --help or -h appears in the arguments.
	ErrHelp = errors.New("help requested")

	// ErrParsed is returned when Parse is called more than once on a Cli.
	ErrParsed = errors.New("arguments already parsed")
)

// UnknownShortFlagError is returned when a letter in a -abc cluster matches
// no declared flag alias.
type UnknownShortFlagError struct {
	Letter rune
	Arg    string // the cluster the letter appeared in
}

func (e *UnknownShortFlagError) Error() string {
	return fmt.Sprintf("unknown flag: '%c'", e.Letter)
}

// TypeMismatchError is returned when a value does not fit a parameter's type.
type TypeMismatchError struct {
	Parameter string
	Type      ValueType
	Value     string
	Err       error
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("invalid parameter type, %s should be an %s (got %q)", e.Parameter, e.Type, e.Value)
}

func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}

// MissingParameterError is returned at the end of parsing when required
// parameters were not supplied.
type MissingParameterError struct {
	Parameters []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("not enough parameters provided, missing: %s", strings.Join(e.Parameters, ", "))
}

// UnknownNameError is returned by accessors queried with a name the
// descriptor does not declare.
type UnknownNameError struct {
	Kind string // "flag" or "parameter"
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Name)
}

// DescriptorError reports an invalid descriptor.
type DescriptorError struct {
	Kind   string // "flag" or "parameter"
	Name   string
	Reason string
}

func (e *DescriptorError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid %s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Name, e.Reason)
}

// IsUsageError reports whether err is caused by the user's arguments, as
// opposed to a programming error, and should be shown with a --help hint.
func IsUsageError(err error) bool {
	var (
		short   *UnknownShortFlagError
		typ     *TypeMismatchError
		missing *MissingParameterError
	)
	return errors.As(err, &short) || errors.As(err, &typ) || errors.As(err, &missing)
}
