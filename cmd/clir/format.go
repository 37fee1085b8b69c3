// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/yeetrun/clir/pkg/clir"
	"github.com/yeetrun/clir/pkg/env"
	"gopkg.in/yaml.v3"
)

type renderer func(w io.Writer, c *clir.Cli, prefix string) error

var renderers = map[string]renderer{
	"table": renderTable,
	"json":  renderJSON,
	"yaml":  renderYAML,
	"env":   renderEnv,
}

type flagOutcome struct {
	Name string `json:"name" yaml:"name"`
	Set  bool   `json:"set" yaml:"set"`
}

type parameterOutcome struct {
	Name     string  `json:"name" yaml:"name"`
	Type     string  `json:"type" yaml:"type"`
	Optional bool    `json:"optional" yaml:"optional"`
	Found    bool    `json:"found" yaml:"found"`
	Value    *string `json:"value" yaml:"value"`
}

type outcome struct {
	Flags      []flagOutcome      `json:"flags" yaml:"flags"`
	Parameters []parameterOutcome `json:"parameters" yaml:"parameters"`
}

func outcomeOf(c *clir.Cli) outcome {
	o := outcome{
		Flags:      []flagOutcome{},
		Parameters: []parameterOutcome{},
	}
	for _, f := range c.Flags() {
		o.Flags = append(o.Flags, flagOutcome{Name: f.Name, Set: f.Found})
	}
	for _, p := range c.Parameters() {
		o.Parameters = append(o.Parameters, parameterOutcome{
			Name:     p.Name,
			Type:     string(p.Type),
			Optional: p.Optional,
			Found:    p.Found,
			Value:    p.Value,
		})
	}
	return o
}

func renderTable(w io.Writer, c *clir.Cli, _ string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tVALUE")
	for _, f := range c.Flags() {
		fmt.Fprintf(tw, "%s\tflag\t%t\n", f.Name, f.Found)
	}
	for _, p := range c.Parameters() {
		kind := "parameter"
		if p.Optional {
			kind = "option"
		}
		value := "-"
		if p.Value != nil {
			value = fmt.Sprintf("%q", *p.Value)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, kind, value)
	}
	return tw.Flush()
}

func renderJSON(w io.Writer, c *clir.Cli, _ string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(outcomeOf(c))
}

func renderYAML(w io.Writer, c *clir.Cli, _ string) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(outcomeOf(c)); err != nil {
		return err
	}
	return enc.Close()
}

func renderEnv(w io.Writer, c *clir.Cli, prefix string) error {
	return env.Write(w, env.Vars(prefix, c))
}
