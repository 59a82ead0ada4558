// Package cliopts parses the emulator's command-line surface, grounded on
// the original firmware's getopt_long-based options.c and built on
// urfave/cli.v2, the flag library this corpus's own CLI tools use.
package cliopts

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v2"
)

// Options holds the parsed flag values for one run.
type Options struct {
	Turbo       bool
	Debug       bool
	ROMFile     string
	DataFile    string
	HasDataFile bool
}

const defaultROMFile = "all.rom"

// Parse interprets args (normally os.Args) and returns the resulting
// Options. -h/--help and -v/--version print their message and exit 0,
// matching the original's show_help/show_banner paths; an unknown flag or
// a flag missing its argument exits non-zero with a diagnostic.
func Parse(args []string) (*Options, error) {
	opts := &Options{ROMFile: defaultROMFile}
	ran := false

	app := &cli.App{
		Name:    "uk101re",
		Usage:   "Micro UK101 replica emulator",
		Version: "1.00",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "turbo",
				Aliases: []string{"t"},
				Usage:   "disable host pacing and run as fast as possible",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "enter the interactive single-step debugger",
			},
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "ROM image to load",
				Value:   defaultROMFile,
			},
		},
		Action: func(c *cli.Context) error {
			ran = true
			opts.Turbo = c.Bool("turbo")
			opts.Debug = c.Bool("debug")
			opts.ROMFile = c.String("rom")
			if c.Args().Len() > 0 {
				opts.DataFile = c.Args().Get(0)
				opts.HasDataFile = true
			}
			return nil
		},
	}

	if err := app.Run(args); err != nil {
		return nil, fmt.Errorf("cliopts: %w", err)
	}
	if !ran {
		// help or version was shown instead of running the action
		os.Exit(0)
	}
	return opts, nil
}

// ParseOrExit is the convenience entry point main() calls: on error it
// prints the diagnostic to stderr and exits with status 1, matching the
// original's EXIT_FAILURE path for bad arguments.
func ParseOrExit(args []string) *Options {
	opts, err := Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return opts
}
