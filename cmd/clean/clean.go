package clean

import (
	"context"
	"fmt"

	"netmon/icongen/cmd/shared"
	"netmon/icongen/pkg/clean"
	"netmon/icongen/pkg/config"
	"netmon/icongen/pkg/log"

	"github.com/urfave/cli/v3"
)

// GetCommand ...
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "Remove previously generated icon files",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sizes, err := shared.ParseSizes(cmd.StringSlice(shared.SizeFlag))
			if err != nil {
				return fmt.Errorf("shared.ParseSizes(): %s", err)
			}

			cfg := config.Config{
				Dir:     cmd.String(shared.DirFlag),
				Sizes:   sizes,
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
			log.InfoMsg("Cleaning icon files in %s\n", cfg.Dir)

			if err := clean.Run(cfg); err != nil {
				return fmt.Errorf("cleaning: %s", err)
			}

			return nil
		},
		Flags: shared.GetCommonFlags(),
	}
}
