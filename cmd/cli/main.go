package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/multimediallc/copyright-plus/internal/app"
	"github.com/multimediallc/copyright-plus/internal/config"
	"github.com/urfave/cli/v2"
)

func main() {
	var dir string

	dirFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"d", "repo"},
			Value:       "./",
			Usage:       "Path to local Git repo",
			Destination: &dir,
		}
	}

	cliApp := &cli.App{
		Name:        "copyright-cli",
		Usage:       "Check license headers of source files in a Git repo",
		Description: "With no command, checks every tracked .cc/.hh/.py file for the expected license header and prints the copyright owners found.",
		Flags:       []cli.Flag{dirFlag()},
		Action: func(cCtx *cli.Context) error {
			return runScan(dir, func(a *app.App) error { return a.Run() })
		},
		Commands: []*cli.Command{
			{
				Name:    "worktree",
				Aliases: []string{"w"},
				Usage:   "Check all files in the working tree, tracked or not",
				Flags:   []cli.Flag{dirFlag()},
				Action: func(cCtx *cli.Context) error {
					return runScan(dir, func(a *app.App) error { return a.RunWorktree() })
				},
			},
			{
				Name:  "diff",
				Usage: "Check only files changed between two refs",
				Flags: []cli.Flag{
					dirFlag(),
					&cli.StringFlag{
						Name:     "base",
						Aliases:  []string{"b"},
						Required: true,
						Usage:    "Base ref of the range",
					},
					&cli.StringFlag{
						Name:    "head",
						Aliases: []string{"H"},
						Value:   "HEAD",
						Usage:   "Head ref of the range",
					},
				},
				Action: func(cCtx *cli.Context) error {
					base := cCtx.String("base")
					head := cCtx.String("head")
					return runScan(dir, func(a *app.App) error { return a.RunDiff(base, head) })
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func runScan(dir string, run func(*app.App) error) error {
	conf, err := config.Read(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading copyright.toml - using default config")
	}

	scanner := app.New(app.Config{
		Dir:    dir,
		Ignore: conf.Ignore,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	})

	if err := run(scanner); err != nil {
		if errors.Is(err, app.ErrListingFailed) {
			// Cause already printed by the scanner.
			return cli.Exit("", 1)
		}
		return cli.Exit(fmt.Sprintf("Error: %s", err), 1)
	}
	return nil
}
