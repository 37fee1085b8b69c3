// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clir

const noDescription = "(no description)"

// FlagState tracks whether a declared flag appeared on the command line.
type FlagState struct {
	Name        string
	Description string
	Short       rune
	Found       bool
}

func newFlagState(f Flag) *FlagState {
	desc := f.Description
	if desc == "" {
		desc = noDescription
	}
	return &FlagState{Name: f.Name, Description: desc, Short: f.Short}
}

func (f *FlagState) markFound() {
	f.Found = true
}
