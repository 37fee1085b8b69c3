// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/yeetrun/clir/pkg/clir"
	"tailscale.com/types/ptr"
	"tailscale.com/util/must"
)

func main() {
	d := must.Get(clir.NewBuilder("helloserver").
		Version("0.1.0").
		Description("Serve a greeting over HTTP.").
		ShortFlag("env", 'e', "also serve the process environment at /env").
		ShortFlag("verbose", 'v', "log every request").
		Optional("port", clir.Integer, "port to listen on", ptr.To("8080")).
		Optional("greeting", clir.String, "text to serve at /", ptr.To("Hello, world!")).
		Build())

	var opts []clir.Option
	if os.Getenv("HELLOSERVER_TRACE") != "" {
		opts = append(opts, clir.WithLogf(log.Printf))
	}
	cli := clir.MustParse(d, os.Args[1:], opts...)

	port := must.Get(cli.IntValue("port"))
	greeting := must.Get(cli.ParameterValue("greeting"))
	serveEnv := must.Get(cli.HasFlag("env"))
	verbose := must.Get(cli.HasFlag("verbose"))

	addr := fmt.Sprintf(":%d", port)
	log.Printf("listening on %s", addr)
	err := http.ListenAndServe(addr, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if verbose {
			log.Printf("%s %s", r.Method, r.URL.Path)
		}
		if serveEnv && r.URL.Path == "/env" {
			fmt.Fprintln(w, os.Environ())
			return
		}
		fmt.Fprintln(w, greeting)
	}))
	log.Fatal(err)
}
