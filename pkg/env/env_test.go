// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/clir/pkg/clir"
	"tailscale.com/types/ptr"
)

func TestKey(t *testing.T) {
	tests := []struct {
		prefix, name, want string
	}{
		{"", "verbose", "VERBOSE"},
		{"APP_", "dry-run", "APP_DRY_RUN"},
		{"", "2fa", "_2FA"},
		{"x.", "Out File", "X_OUT_FILE"},
	}
	for _, tt := range tests {
		if got := Key(tt.prefix, tt.name); got != tt.want {
			t.Errorf("Key(%q, %q) = %q, want %q", tt.prefix, tt.name, got, tt.want)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "''"},
		{"out.md", "out.md"},
		{"/tmp/a-b_c", "/tmp/a-b_c"},
		{"two words", "'two words'"},
		{"it's", `'it'\''s'`},
		{"$HOME", "'$HOME'"},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVars(t *testing.T) {
	d := clir.Descriptor{
		Name:  "example",
		Flags: []clir.Flag{{Name: "verbose", Short: 'v'}, {Name: "dry-run"}},
		Parameters: []clir.Parameter{
			{Name: "input"},
			{Name: "output", Optional: true, Default: ptr.To("out.md")},
			{Name: "tag", Optional: true},
		},
	}
	c, err := clir.New(d)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Parse([]string{"-v", "in file.md"}); err != nil {
		t.Fatal(err)
	}
	got := Vars("EX_", c)
	want := []Var{
		{Name: "EX_VERBOSE", Value: "true"},
		{Name: "EX_DRY_RUN", Value: "false"},
		{Name: "EX_INPUT", Value: "in file.md"},
		{Name: "EX_OUTPUT", Value: "out.md"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Vars() mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := Write(&buf, got); err != nil {
		t.Fatal(err)
	}
	wantOut := "EX_VERBOSE=true\nEX_DRY_RUN=false\nEX_INPUT='in file.md'\nEX_OUTPUT=out.md\n"
	if buf.String() != wantOut {
		t.Errorf("Write() = %q, want %q", buf.String(), wantOut)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "args.env")
	if err := WriteFile(path, []Var{{Name: "A", Value: "1"}}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "A=1\n" {
		t.Errorf("file content = %q, want %q", b, "A=1\n")
	}
}
