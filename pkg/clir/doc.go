// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clir parses command-line arguments against a declarative descriptor
// of boolean flags and string or integer parameters.
//
// A descriptor lists flags (with an optional one-letter alias) and
// parameters (required, or optional with a default). Parsing is a single
// left-to-right pass over the arguments:
//   - Long flags: --verbose
//   - Short flag clusters: -v, -vq
//   - Optional parameters: --output=file.md or --output file.md
//   - Everything else is a positional value, assigned to the first
//     unfilled parameter in declaration order (required ones first)
//
// Unknown long options and surplus positional values are ignored. Unknown
// short flags, non-integer values for integer parameters and missing
// required parameters are errors.
//
// # Basic Usage
//
//	d, err := clir.NewBuilder("example").
//	    Description("Example usage of the clir library.").
//	    Flag("lorem", "").
//	    ShortFlag("verbose", 'v', "level of verbosity").
//	    Required("input", clir.String, "").
//	    Optional("output", clir.String, "", ptr.To("out.md")).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cli := clir.MustParse(d, os.Args[1:])
//	verbose, _ := cli.HasFlag("verbose")
//	input, _ := cli.ParameterValue("input")
//
// MustParse prints the help page and exits when --help or -h appears
// anywhere in the arguments, and prints the error with a --help hint and
// exits non-zero when parsing fails. Use New and Parse to handle both cases
// yourself.
package clir
