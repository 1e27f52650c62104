package generate

import (
	"context"
	"fmt"

	"netmon/icongen/cmd/shared"
	"netmon/icongen/pkg/config"
	"netmon/icongen/pkg/gen"
	"netmon/icongen/pkg/log"

	"github.com/urfave/cli/v3"
)

const categoryGenerate = "generate"

const smoothFlag = "smooth"
const icoFlag = "ico"
const svgFlag = "svg"

// GetCommand ...
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate the icon set",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sizes, err := shared.ParseSizes(cmd.StringSlice(shared.SizeFlag))
			if err != nil {
				return fmt.Errorf("shared.ParseSizes(): %s", err)
			}

			cfg := config.Config{
				Dir:     cmd.String(shared.DirFlag),
				Sizes:   sizes,
				Smooth:  cmd.Bool(smoothFlag),
				ICO:     cmd.Bool(icoFlag),
				SVG:     cmd.Bool(svgFlag),
				Verbose: cmd.Bool(shared.VerboseFlag),
			}

			if errors := cfg.Validate(); len(errors) > 0 {
				log.ErrorMsg("Argument validation errors:\n")
				for _, err := range errors {
					log.ErrorMsg(" - %s\n", err)
				}
				return fmt.Errorf("exiting")
			}

			log.SetVerbose(cfg.Verbose)
			log.InfoMsg("Generating %d icon(s) in %s\n", len(cfg.Sizes), cfg.Dir)

			g := gen.New(cfg)
			if err := g.Run(); err != nil {
				return fmt.Errorf("generating: %s", err)
			}

			return nil
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:     smoothFlag,
				Aliases:  []string{},
				Usage:    "Render at 4x and downscale for anti-aliased edges",
				Category: categoryGenerate,
				Value:    false,
				Required: false,
			},
			&cli.BoolFlag{
				Name:     icoFlag,
				Aliases:  []string{},
				Usage:    "Also bundle all sizes into icon.ico",
				Category: categoryGenerate,
				Value:    false,
				Required: false,
			},
			&cli.BoolFlag{
				Name:     svgFlag,
				Aliases:  []string{},
				Usage:    "Also write a vector icon.svg",
				Category: categoryGenerate,
				Value:    false,
				Required: false,
			},
		}, shared.GetCommonFlags()...),
	}
}
