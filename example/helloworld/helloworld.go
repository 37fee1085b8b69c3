// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/yeetrun/clir/pkg/clir"
	"tailscale.com/types/ptr"
	"tailscale.com/util/must"
)

func main() {
	d := must.Get(clir.NewBuilder("example").
		Description("Example usage of the clir library.").
		Flag("lorem", "").
		ShortFlag("verbose", 'v', "level of verbosity").
		Required("input", clir.String, "").
		Optional("output", clir.String, "", ptr.To("out.md")).
		Build())

	cli := clir.MustParse(d, os.Args[1:])

	if must.Get(cli.HasFlag("verbose")) {
		fmt.Println("found is verbose")
	}
	fmt.Printf("found value: %s\n", must.Get(cli.ParameterValue("input")))
}
