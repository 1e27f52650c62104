package main

import (
	"context"
	"fmt"
	"os"

	"netmon/icongen/cmd/clean"
	"netmon/icongen/cmd/generate"
	"netmon/icongen/cmd/version"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "icongen",
		Usage: "procedural icon generator for the network monitor extension",
		Commands: []*cli.Command{
			generate.GetCommand(),
			clean.GetCommand(),
			version.GetCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Printf("[!] Error: %s\n", err)
	}
}
