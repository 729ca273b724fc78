package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/atvirokodosprendimai/bookcheck/internal/app"
	"github.com/atvirokodosprendimai/bookcheck/internal/config"
)

func main() {
	cmd := &cli.Command{
		Name:  "bookcheck",
		Usage: "Validate book metadata records and their ISBN-10 check digits",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Sources: cli.EnvVars("BOOKCHECK_CONFIG"),
				Usage:   "YAML config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "metrics-textfile",
				Usage: "Write prometheus metrics to this file on exit",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "load",
				Usage:     "Validate every record and print the books, stopping at the first invalid one",
				ArgsUsage: "<file|->",
				Flags: []cli.Flag{
					inputFormatFlag(),
					&cli.StringFlag{
						Name:  "output",
						Usage: "Output format: text or json",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withApp(c, func(a *app.App) error {
						return a.Load(ctx, inputPath(c), c.String("input-format"))
					})
				},
			},
			{
				Name:      "lint",
				Usage:     "Report every problem in the records",
				ArgsUsage: "<file|->",
				Flags:     []cli.Flag{inputFormatFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withApp(c, func(a *app.App) error {
						return a.Lint(ctx, inputPath(c), c.String("input-format"))
					})
				},
			},
			{
				Name:      "isbn",
				Usage:     "Check ISBN-10 values",
				ArgsUsage: "<value>...",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() == 0 {
						return errors.New("isbn: at least one value is required")
					}
					return withApp(c, func(a *app.App) error {
						return a.CheckISBN(c.Args().Slice())
					})
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "bookcheck:", err)
		stop()
		os.Exit(1)
	}
}

func withApp(c *cli.Command, run func(*app.App) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	a, closer, err := app.New(*cfg, os.Stdout)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	runErr := run(a)
	if closeErr := closer.Close(); closeErr != nil && runErr == nil {
		return closeErr
	}
	return runErr
}

// loadConfig layers flag overrides on top of config.Load.
func loadConfig(c *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("metrics-textfile") {
		cfg.Metrics.Textfile = c.String("metrics-textfile")
	}
	if c.IsSet("output") {
		cfg.Output.Format = c.String("output")
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func inputFormatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "input-format",
		Usage: "Input format: json or yaml (default: from file extension)",
	}
}

func inputPath(c *cli.Command) string {
	if c.Args().Len() == 0 {
		return "-"
	}
	return c.Args().First()
}
