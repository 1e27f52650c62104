// Package shared provides common CLI flag definitions and parsers used
// across icongen's commands.
package shared

import (
	"github.com/urfave/cli/v3"
)

const categoryCommon = "common"

// DirFlag is the name of the flag selecting the output directory.
const DirFlag = "dir"

// SizeFlag is the name of the repeatable flag selecting icon sizes.
const SizeFlag = "size"

// VerboseFlag is the name of the flag to enable verbose logging.
const VerboseFlag = "verbose"

// DefaultSizes are the icon sizes generated when --size is not given,
// matching the set a browser extension manifest expects.
var DefaultSizes = []string{"16", "32", "48", "128"}

// GetCommonFlags returns the flags shared by the generate and clean
// commands.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     DirFlag,
			Aliases:  []string{"d"},
			Usage:    "Output directory for generated files",
			Category: categoryCommon,
			Value:    ".",
			Required: false,
		},
		&cli.StringSliceFlag{
			Name:     SizeFlag,
			Aliases:  []string{},
			Usage:    "Icon size in pixels, repeat or comma-separate for multiple sizes",
			Category: categoryCommon,
			Value:    DefaultSizes,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose logging",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
	}
}
