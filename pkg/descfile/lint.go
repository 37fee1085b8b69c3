// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descfile

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/clir/pkg/clir"
)

// Lint returns warnings for a descriptor that is valid but likely to render
// a poor help page.
func Lint(d clir.Descriptor) []string {
	var warnings []string
	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}
	if d.Name == "" {
		warnf("no name set, usage will show the executable name")
	}
	if d.Version != "" {
		if _, err := semver.NewVersion(d.Version); err != nil {
			warnf("version %q is not a semantic version", d.Version)
		}
	}
	if d.Description == "" {
		warnf("no description set")
	}
	for _, f := range d.Flags {
		if f.Description == "" {
			warnf("flag %q has no description", f.Name)
		}
	}
	for _, p := range d.Parameters {
		if p.Description == "" {
			warnf("parameter %q has no description", p.Name)
		}
		if p.Optional && p.Default == nil && p.Type == clir.Integer {
			warnf("integer option %q has no default", p.Name)
		}
	}
	return warnings
}
