// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clir

import "slices"

// Builder assembles a Descriptor in declaration order.
type Builder struct {
	d Descriptor
}

// NewBuilder returns a Builder for a program called name.
func NewBuilder(name string) *Builder {
	return &Builder{d: Descriptor{Name: name}}
}

func (b *Builder) Version(v string) *Builder {
	b.d.Version = v
	return b
}

func (b *Builder) Description(desc string) *Builder {
	b.d.Description = desc
	return b
}

// Flag declares a flag without a short alias.
func (b *Builder) Flag(name, desc string) *Builder {
	return b.ShortFlag(name, 0, desc)
}

// ShortFlag declares a flag that can also be given as -short.
func (b *Builder) ShortFlag(name string, short rune, desc string) *Builder {
	b.d.Flags = append(b.d.Flags, Flag{Name: name, Description: desc, Short: short})
	return b
}

// Required declares a parameter that must be supplied positionally.
func (b *Builder) Required(name string, typ ValueType, desc string) *Builder {
	b.d.Parameters = append(b.d.Parameters, Parameter{Name: name, Description: desc, Type: typ})
	return b
}

// Optional declares a parameter that may be supplied as --name=value,
// --name value, or positionally once all required parameters are filled.
// def may be nil.
func (b *Builder) Optional(name string, typ ValueType, desc string, def *string) *Builder {
	b.d.Parameters = append(b.d.Parameters, Parameter{Name: name, Description: desc, Type: typ, Optional: true, Default: def})
	return b
}

// Build validates and returns the descriptor. The returned value shares no
// memory with the Builder.
func (b *Builder) Build() (Descriptor, error) {
	d := b.d
	d.Flags = slices.Clone(b.d.Flags)
	d.Parameters = slices.Clone(b.d.Parameters)
	for i, p := range d.Parameters {
		if p.Default != nil {
			v := *p.Default
			d.Parameters[i].Default = &v
		}
	}
	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}
