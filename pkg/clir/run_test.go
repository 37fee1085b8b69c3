// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clir

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestParseOrExit(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:     "success does not exit",
			args:     []string{"in.md"},
			wantCode: -1,
		},
		{
			name:       "help exits zero",
			args:       []string{"in.md", "-h"},
			wantCode:   0,
			wantStdout: "USAGE:\n    example [FLAGS] [PARAMETERS] [OPTIONS]\n",
		},
		{
			name:       "unknown short flag",
			args:       []string{"-z"},
			wantCode:   1,
			wantStderr: "error: unknown flag: 'z'\nTry 'example --help' for more information.\n",
		},
		{
			name:       "missing parameter",
			args:       nil,
			wantCode:   1,
			wantStderr: "error: not enough parameters provided, missing: input\nTry 'example --help' for more information.\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := -1
			c := mustNew(t, exampleDescriptor(t),
				WithStdout(&stdout),
				WithStderr(&stderr),
				WithExit(func(c int) { code = c }),
			)
			c.ParseOrExit(tt.args)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantStdout)
			}
			if stderr.String() != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestMustParsePanicsOnInvalidDescriptor(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse did not panic on an invalid descriptor")
		}
	}()
	MustParse(Descriptor{Flags: []Flag{{Name: ""}}}, nil)
}

func TestPrintErrorWithoutHint(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	PrintError(&buf, "tool", errors.New("boom"))
	if got, want := buf.String(), "error: boom\n"; got != want {
		t.Errorf("PrintError = %q, want %q", got, want)
	}
}
