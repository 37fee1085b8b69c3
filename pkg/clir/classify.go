// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clir

import "strings"

// argKind is the syntactic category of a single argument.
type argKind int

const (
	argValue argKind = iota // positional value
	argLong                 // --name or --name=value
	argShort                // -abc
)

func (k argKind) String() string {
	switch k {
	case argLong:
		return "long"
	case argShort:
		return "short"
	default:
		return "value"
	}
}

// classify decides the category of arg without looking at any declared
// flag or parameter. Long form is checked first so "--x" is never read as
// a short cluster.
func classify(arg string) argKind {
	if isLongFlag(arg) {
		return argLong
	}
	if isShortCluster(arg) {
		return argShort
	}
	return argValue
}

// isLongFlag reports whether arg is "--" followed by at least one character
// that is not '-'. Bare "--" and "---x" are not long flags.
func isLongFlag(arg string) bool {
	return len(arg) >= 3 && strings.HasPrefix(arg, "--") && arg[2] != '-'
}

// isShortCluster reports whether arg is "-" followed by a character other
// than '-'.
func isShortCluster(arg string) bool {
	return len(arg) >= 2 && arg[0] == '-' && arg[1] != '-'
}

// splitLongFlag strips the leading "--" and splits at the first '='.
// hasValue is false when there is no '='.
func splitLongFlag(arg string) (name, value string, hasValue bool) {
	return strings.Cut(strings.TrimPrefix(arg, "--"), "=")
}
