// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package descfile loads clir descriptors from TOML, YAML or JSON files.
//
// Flags and parameters are tables keyed by name; the order they appear in
// the file is the declaration order:
//
//	name = "example"
//	description = "Example usage of the clir library."
//
//	[flags.lorem]
//
//	[flags.verbose]
//	description = "level of verbosity"
//	short = "v"
//
//	[parameters.input]
//
//	[parameters.output]
//	optional = true
//	default = "out.md"
package descfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/clir/pkg/clir"
	"github.com/yeetrun/clir/pkg/ftdetect"
	"gopkg.in/yaml.v3"
	"tailscale.com/types/ptr"
)

type fileFlag struct {
	Description string `toml:"description" yaml:"description"`
	Short       string `toml:"short" yaml:"short"`
}

type fileParameter struct {
	Description string `toml:"description" yaml:"description"`
	Type        string `toml:"type" yaml:"type"`
	Optional    bool   `toml:"optional" yaml:"optional"`
	// Default is a string or an integer.
	Default any `toml:"default" yaml:"default"`
}

type entry[T any] struct {
	name  string
	value T
}

// Load reads the descriptor file at path. The format is detected with
// ftdetect.
func Load(path string) (clir.Descriptor, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return clir.Descriptor{}, err
	}
	ft, err := ftdetect.Detect(path, bytes.NewReader(bs))
	if err != nil {
		return clir.Descriptor{}, fmt.Errorf("%s: %w", path, err)
	}
	d, err := Decode(bytes.NewReader(bs), ft)
	if err != nil {
		return clir.Descriptor{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return d, nil
}

// Decode reads a descriptor of the given format from r and validates it.
func Decode(r io.Reader, ft ftdetect.FileType) (clir.Descriptor, error) {
	var (
		d   clir.Descriptor
		err error
	)
	switch ft {
	case ftdetect.TOML:
		d, err = decodeTOML(r)
	case ftdetect.YAML, ftdetect.JSON:
		d, err = decodeYAML(r)
	default:
		return clir.Descriptor{}, fmt.Errorf("unsupported descriptor format %v", ft)
	}
	if err != nil {
		return clir.Descriptor{}, err
	}
	if err := d.Validate(); err != nil {
		return clir.Descriptor{}, err
	}
	return d, nil
}

type tomlDescriptor struct {
	Name        string                   `toml:"name"`
	Version     string                   `toml:"version"`
	Description string                   `toml:"description"`
	Flags       map[string]fileFlag      `toml:"flags"`
	Parameters  map[string]fileParameter `toml:"parameters"`
}

func decodeTOML(r io.Reader) (clir.Descriptor, error) {
	var td tomlDescriptor
	md, err := toml.NewDecoder(r).Decode(&td)
	if err != nil {
		return clir.Descriptor{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return clir.Descriptor{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	flags := orderByKeys(md.Keys(), "flags", td.Flags)
	params := orderByKeys(md.Keys(), "parameters", td.Parameters)
	return build(td.Name, td.Version, td.Description, flags, params)
}

// orderByKeys returns the entries of m in the order their tables appear
// under section in keys. Names keys does not mention are appended sorted.
func orderByKeys[T any](keys []toml.Key, section string, m map[string]T) []entry[T] {
	out := make([]entry[T], 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, k := range keys {
		if len(k) != 2 || k[0] != section || seen[k[1]] {
			continue
		}
		v, ok := m[k[1]]
		if !ok {
			continue
		}
		seen[k[1]] = true
		out = append(out, entry[T]{name: k[1], value: v})
	}
	var rest []string
	for name := range m {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	for _, name := range rest {
		out = append(out, entry[T]{name: name, value: m[name]})
	}
	return out
}

// ordered decodes a YAML mapping keeping key order.
type ordered[T any] []entry[T]

func (o *ordered[T]) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		var name string
		if err := n.Content[i].Decode(&name); err != nil {
			return err
		}
		var v T
		if err := n.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*o = append(*o, entry[T]{name: name, value: v})
	}
	return nil
}

type yamlDescriptor struct {
	Name        string                 `yaml:"name"`
	Version     string                 `yaml:"version"`
	Description string                 `yaml:"description"`
	Flags       ordered[fileFlag]      `yaml:"flags"`
	Parameters  ordered[fileParameter] `yaml:"parameters"`
}

func decodeYAML(r io.Reader) (clir.Descriptor, error) {
	var yd yamlDescriptor
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&yd); err != nil && err != io.EOF {
		return clir.Descriptor{}, err
	}
	return build(yd.Name, yd.Version, yd.Description, yd.Flags, yd.Parameters)
}

func build(name, version, desc string, flags []entry[fileFlag], params []entry[fileParameter]) (clir.Descriptor, error) {
	d := clir.Descriptor{Name: name, Version: version, Description: desc}
	for _, e := range flags {
		f := clir.Flag{Name: e.name, Description: e.value.Description}
		if e.value.Short != "" {
			rs := []rune(e.value.Short)
			if len(rs) != 1 {
				return clir.Descriptor{}, &clir.DescriptorError{Kind: "flag", Name: e.name, Reason: fmt.Sprintf("short alias %q must be a single letter", e.value.Short)}
			}
			f.Short = rs[0]
		}
		d.Flags = append(d.Flags, f)
	}
	for _, e := range params {
		p := clir.Parameter{
			Name:        e.name,
			Description: e.value.Description,
			Type:        clir.ValueType(e.value.Type),
			Optional:    e.value.Optional,
		}
		def, err := defaultString(e.value.Default)
		if err != nil {
			return clir.Descriptor{}, &clir.DescriptorError{Kind: "parameter", Name: e.name, Reason: err.Error()}
		}
		p.Default = def
		d.Parameters = append(d.Parameters, p)
	}
	return d, nil
}

func defaultString(v any) (*string, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return ptr.To(v), nil
	case int:
		return ptr.To(strconv.Itoa(v)), nil
	case int64:
		return ptr.To(strconv.FormatInt(v, 10)), nil
	default:
		return nil, fmt.Errorf("default must be a string or an integer, got %T", v)
	}
}
