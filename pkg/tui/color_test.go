// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import "testing"

func TestNewColorizer(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		noColor string
		term    string
		want    bool
	}{
		{name: "disabled", enabled: false, term: "xterm", want: false},
		{name: "enabled", enabled: true, term: "xterm", want: true},
		{name: "no color", enabled: true, noColor: "1", term: "xterm", want: false},
		{name: "dumb term", enabled: true, term: "dumb", want: false},
		{name: "no term", enabled: true, term: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			if got := NewColorizer(tt.enabled).Enabled; got != tt.want {
				t.Errorf("NewColorizer(%v).Enabled = %v, want %v", tt.enabled, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	on := Colorizer{Enabled: true}
	if got, want := on.Heading("USAGE:"), ColorBold+ColorYellow+"USAGE:"+ColorReset; got != want {
		t.Errorf("Heading() = %q, want %q", got, want)
	}
	if got, want := on.Name("--verbose"), ColorGreen+"--verbose"+ColorReset; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if got := on.Wrap("", "plain"); got != "plain" {
		t.Errorf("Wrap with empty code = %q, want %q", got, "plain")
	}
	var off Colorizer
	if got := off.Heading("USAGE:"); got != "USAGE:" {
		t.Errorf("disabled Heading() = %q, want %q", got, "USAGE:")
	}
}
