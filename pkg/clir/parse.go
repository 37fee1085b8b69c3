// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clir

const (
	helpFlagLong  = "--help"
	helpFlagShort = "-h"
)

// helpRequested reports whether --help or -h appears anywhere in args.
func helpRequested(args []string) bool {
	for _, arg := range args {
		if arg == helpFlagLong || arg == helpFlagShort {
			return true
		}
	}
	return false
}

// Parse classifies args and records the outcome in c. Args should not
// include the program name (os.Args[1:]).
//
// If --help or -h is present anywhere, Parse returns ErrHelp without
// looking at the other arguments. Once Parse has run, later calls return
// ErrParsed.
func (c *Cli) Parse(args []string) error {
	if c.parsed {
		return ErrParsed
	}
	if helpRequested(args) {
		return ErrHelp
	}
	c.parsed = true

	p := &parser{c: c}
	for _, arg := range args {
		if err := p.next(arg); err != nil {
			return err
		}
	}
	return p.finish()
}

// parser is the state of a single pass over the arguments.
type parser struct {
	c *Cli
	// collector, when set, receives the next argument whole, whatever it
	// looks like. It is set by "--option" without "=value".
	collector *ParameterState
}

func (p *parser) next(arg string) error {
	if p.collector != nil {
		target := p.collector
		p.collector = nil
		return target.assign(arg)
	}
	switch classify(arg) {
	case argLong:
		return p.long(arg)
	case argShort:
		return p.short(arg)
	default:
		return p.value(arg)
	}
}

// long handles --name and --name=value. Only flags and optional parameters
// are addressable by name; anything else is dropped.
func (p *parser) long(arg string) error {
	name, value, hasValue := splitLongFlag(arg)
	if f := p.c.flagByName(name); f != nil {
		if hasValue {
			p.c.logf("clir: flag --%s takes no value, ignoring %q", name, value)
		}
		f.markFound()
		return nil
	}
	if opt := paramIn(p.c.optional, name); opt != nil {
		if hasValue {
			return opt.assign(value)
		}
		p.collector = opt
		return nil
	}
	if paramIn(p.c.necessary, name) != nil {
		p.c.logf("clir: parameter %q is positional only, ignoring %q", name, arg)
		return nil
	}
	p.c.logf("clir: ignoring unknown option %q", arg)
	return nil
}

// short handles a -abc cluster. Every letter must be a declared alias.
func (p *parser) short(arg string) error {
	for _, r := range arg[1:] {
		f := p.c.flagByShort(r)
		if f == nil {
			return &UnknownShortFlagError{Letter: r, Arg: arg}
		}
		f.markFound()
	}
	return nil
}

// value assigns a positional argument to the next unfilled parameter.
func (p *parser) value(arg string) error {
	target := p.nextTarget()
	if target == nil {
		p.c.logf("clir: ignoring extra argument %q", arg)
		return nil
	}
	return target.assign(arg)
}

// nextTarget returns the first unassigned parameter, required parameters
// first, then optional ones, each in declaration order.
func (p *parser) nextTarget() *ParameterState {
	for _, s := range p.c.necessary {
		if !s.assigned() {
			return s
		}
	}
	for _, s := range p.c.optional {
		if !s.assigned() {
			return s
		}
	}
	return nil
}

func (p *parser) finish() error {
	if p.collector != nil {
		p.c.logf("clir: option --%s expects a value", p.collector.Name)
		p.collector = nil
	}
	var missing []string
	for _, s := range p.c.necessary {
		if !s.assigned() {
			missing = append(missing, s.Name)
		}
	}
	if len(missing) > 0 {
		return &MissingParameterError{Parameters: missing}
	}
	return nil
}
