package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/biolockj/bljconfig/internal/conf"
	"github.com/biolockj/bljconfig/internal/l10n"
)

var version = "dev"

// settings holds the tool configuration after flags have been applied.
var settings conf.Config

func newApp() *cli.App {
	return &cli.App{
		Name:    "bljconfig",
		Version: version,
		Usage:   l10n.T("resolve BioLockJ pipeline configuration files"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: l10n.T("set the log level (DEBUG, INFO, WARN, ERROR)"),
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: l10n.T("read tool settings from `DIR` instead of /etc/bljconfig"),
			},
			&cli.StringFlag{
				Name:  "standard-config",
				Usage: l10n.T("use `FILE` as the standard config"),
			},
			&cli.StringFlag{
				Name:  "docker-config",
				Usage: l10n.T("use `FILE` as the container config"),
			},
			&cli.StringSliceFlag{
				Name:  "search-path",
				Usage: l10n.T("look up default config references in `DIR`"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "resolve",
				Usage:     l10n.T("print the merged properties of a pipeline config"),
				ArgsUsage: "CONFIG",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "text",
						Usage: l10n.T("output format (text, json)"),
					},
					&cli.BoolFlag{
						Name:  "origin",
						Usage: l10n.T("show the file that supplied each value"),
					},
					&cli.BoolFlag{
						Name:  "describe",
						Usage: l10n.T("show the type and description of known properties"),
					},
				},
				Action: resolveAction,
			},
			{
				Name:      "defaults",
				Usage:     l10n.T("print the config files loaded for a pipeline config"),
				ArgsUsage: "CONFIG",
				Action:    defaultsAction,
			},
			{
				Name:      "modules",
				Usage:     l10n.T("print the modules declared in a pipeline config"),
				ArgsUsage: "CONFIG",
				Action:    modulesAction,
			},
			{
				Name:      "describe",
				Usage:     l10n.T("print the type and description of properties"),
				ArgsUsage: "[PROPERTY...]",
				Action:    describeAction,
			},
		},
		Before: beforeAction,
	}
}

func beforeAction(c *cli.Context) error {
	config, err := conf.NewConfigSource(c.String("config-dir")).Read()
	if err != nil {
		return cli.Exit(err, 1)
	}

	if c.IsSet("log-level") {
		level, err := conf.ParseLevel(c.String("log-level"))
		if err != nil {
			return cli.Exit(err, 1)
		}
		config.LogLevel = level
	}
	if c.IsSet("standard-config") {
		config.StandardConfig = c.String("standard-config")
	}
	if c.IsSet("docker-config") {
		config.DockerConfig = c.String("docker-config")
	}
	if c.IsSet("search-path") {
		config.SearchPaths = c.StringSlice("search-path")
	}
	settings = config

	handler := slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: settings.LogLevel})
	slog.SetDefault(slog.New(handler))

	return nil
}

func main() {
	app := newApp()
	app.ErrWriter = os.Stderr
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
