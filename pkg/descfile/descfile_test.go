// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/clir/pkg/clir"
	"github.com/yeetrun/clir/pkg/ftdetect"
	"tailscale.com/types/ptr"
)

const exampleTOML = `name = "example"
description = "Example usage of the clir library."

[flags.lorem]

[flags.verbose]
description = "level of verbosity"
short = "v"

[flags.extra]
short = "e"

[parameters.input]
description = "input file"

[parameters.output]
optional = true
default = "out.md"

[parameters.count]
type = "integer"
optional = true
default = 3
`

const exampleYAML = `name: example
description: Example usage of the clir library.
flags:
  lorem:
  verbose:
    description: level of verbosity
    short: v
  extra: {short: e}
parameters:
  input:
    description: input file
  output: {optional: true, default: out.md}
  count: {type: integer, optional: true, default: 3}
`

const exampleJSON = `{
  "name": "example",
  "description": "Example usage of the clir library.",
  "flags": {
    "lorem": {},
    "verbose": {"description": "level of verbosity", "short": "v"},
    "extra": {"short": "e"}
  },
  "parameters": {
    "input": {"description": "input file"},
    "output": {"optional": true, "default": "out.md"},
    "count": {"type": "integer", "optional": true, "default": 3}
  }
}`

var exampleDescriptor = clir.Descriptor{
	Name:        "example",
	Description: "Example usage of the clir library.",
	Flags: []clir.Flag{
		{Name: "lorem"},
		{Name: "verbose", Description: "level of verbosity", Short: 'v'},
		{Name: "extra", Short: 'e'},
	},
	Parameters: []clir.Parameter{
		{Name: "input", Description: "input file"},
		{Name: "output", Optional: true, Default: ptr.To("out.md")},
		{Name: "count", Type: clir.Integer, Optional: true, Default: ptr.To("3")},
	},
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		ft      ftdetect.FileType
		content string
	}{
		{name: "toml", ft: ftdetect.TOML, content: exampleTOML},
		{name: "yaml", ft: ftdetect.YAML, content: exampleYAML},
		{name: "json", ft: ftdetect.JSON, content: exampleJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.content), tt.ft)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if diff := cmp.Diff(exampleDescriptor, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		ft      ftdetect.FileType
		content string
		wantErr string
	}{
		{
			name:    "unknown toml key",
			ft:      ftdetect.TOML,
			content: "name = \"x\"\n[flags.verbose]\nalias = \"v\"\n",
			wantErr: "unknown keys: flags.verbose.alias",
		},
		{
			name:    "unknown yaml key",
			ft:      ftdetect.YAML,
			content: "name: x\nauthor: me\n",
			wantErr: "field author not found",
		},
		{
			name:    "flags not a mapping",
			ft:      ftdetect.YAML,
			content: "name: x\nflags: [verbose]\n",
			wantErr: "expected a mapping",
		},
		{
			name:    "long short alias",
			ft:      ftdetect.TOML,
			content: "name = \"x\"\n[flags.verbose]\nshort = \"vv\"\n",
			wantErr: `short alias "vv" must be a single letter`,
		},
		{
			name:    "bad default",
			ft:      ftdetect.YAML,
			content: "name: x\nparameters:\n  ratio: {optional: true, default: 1.5}\n",
			wantErr: "default must be a string or an integer",
		},
		{
			name:    "invalid descriptor",
			ft:      ftdetect.TOML,
			content: "name = \"x\"\n[flags.help]\n",
			wantErr: "reserved",
		},
		{
			name:    "unsupported format",
			ft:      ftdetect.Unknown,
			content: "",
			wantErr: "unsupported descriptor format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.content), tt.ft)
			if err == nil {
				t.Fatal("Decode() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Decode() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeDescriptorError(t *testing.T) {
	_, err := Decode(strings.NewReader("name: x\nflags:\n  verbose: {short: '1'}\n"), ftdetect.YAML)
	var de *clir.DescriptorError
	if !errors.As(err, &de) {
		t.Fatalf("Decode() error = %v, want *clir.DescriptorError", err)
	}
	if de.Name != "verbose" {
		t.Errorf("DescriptorError.Name = %q, want %q", de.Name, "verbose")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"cli.toml":   exampleTOML,
		"cli.yaml":   exampleYAML,
		"cli.json":   exampleJSON,
		"descriptor": exampleTOML,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Run(name, func(t *testing.T) {
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(exampleDescriptor, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestLint(t *testing.T) {
	d := clir.Descriptor{
		Version: "one",
		Flags:   []clir.Flag{{Name: "verbose"}},
		Parameters: []clir.Parameter{
			{Name: "input", Description: "input file"},
			{Name: "port", Description: "port", Type: clir.Integer, Optional: true},
		},
	}
	want := []string{
		"no name set, usage will show the executable name",
		`version "one" is not a semantic version`,
		"no description set",
		`flag "verbose" has no description`,
		`integer option "port" has no default`,
	}
	if diff := cmp.Diff(want, Lint(d)); diff != "" {
		t.Errorf("Lint() mismatch (-want +got):\n%s", diff)
	}

	clean := exampleDescriptor
	clean.Version = "1.2.3"
	clean.Flags = []clir.Flag{{Name: "verbose", Description: "level of verbosity"}}
	clean.Parameters = []clir.Parameter{{Name: "input", Description: "input file"}}
	if got := Lint(clean); len(got) != 0 {
		t.Errorf("Lint() = %q, want no warnings", got)
	}
}
