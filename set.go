package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	lib "github.com/awused/sway-backgrounds/lib"
	"github.com/urfave/cli/v2"
)

const (
	configFlag    = "config"
	backendFlag   = "backend"
	modeFlag      = "mode"
	dayFormatFlag = "day-format"
	timeoutFlag   = "timeout"
	dryRunFlag    = "dry-run"
	logFileFlag   = "log-file"
)

func setFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    configFlag,
			Aliases: []string{"c"},
			Usage:   "Config file, defaults to $XDG_CONFIG_HOME/sway-backgrounds/config.toml",
		},
		&cli.StringFlag{
			Name:    backendFlag,
			Aliases: []string{"b"},
			Usage:   "One of auto, swaymsg or x11",
		},
		&cli.StringFlag{
			Name:    modeFlag,
			Aliases: []string{"m"},
			Usage:   "Scaling mode: fill, fit, stretch, center or tile",
		},
		&cli.StringFlag{
			Name: dayFormatFlag,
			Usage: "Go time layout naming a sub-directory to choose from first, " +
				"e.g. Monday. Empty disables it",
		},
		&cli.DurationFlag{
			Name:    timeoutFlag,
			Aliases: []string{"t"},
			Usage:   "Give up after this long, 0 waits forever",
		},
		&cli.BoolFlag{
			Name:    dryRunFlag,
			Aliases: []string{"n"},
			Usage:   "Print the chosen wallpapers without setting them",
		},
		&cli.StringFlag{
			Name:  logFileFlag,
			Usage: "Append log output to this file",
		},
	}
}

// Flags win over the config file
func configFromContext(c *cli.Context) (*lib.Config, error) {
	conf, err := lib.LoadConfig(c.String(configFlag))
	if err != nil {
		return nil, err
	}

	if c.NArg() > 1 {
		return nil, fmt.Errorf("Expected at most one base path, got %d", c.NArg())
	}
	if c.NArg() == 1 {
		conf.BasePath = c.Args().First()
	}

	if c.IsSet(backendFlag) {
		conf.Backend = c.String(backendFlag)
	}
	if c.IsSet(modeFlag) {
		conf.Mode = c.String(modeFlag)
	}
	if c.IsSet(dayFormatFlag) {
		conf.DayDirectoryFormat = c.String(dayFormatFlag)
	}
	if c.IsSet(timeoutFlag) {
		conf.Timeout = c.Duration(timeoutFlag).String()
	}
	if c.IsSet(logFileFlag) {
		conf.LogFile = c.String(logFileFlag)
	}

	if err = conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func setAction(c *cli.Context) error {
	conf, err := configFromContext(c)
	if err != nil {
		return err
	}

	if conf.LogFile != "" {
		f, err := os.OpenFile(conf.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("Error opening log file: %w", err)
		}
		defer f.Close()

		log.SetOutput(f)
	}

	compositor, err := conf.NewCompositor()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if d := conf.TimeoutDuration(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	assignments, err := lib.SetWallpapers(ctx, lib.Options{
		BasePath:   conf.BasePath,
		DaySubPath: conf.DaySubPath(time.Now()),
		Mode:       conf.ScaleMode(),
		Compositor: compositor,
		DryRun:     c.Bool(dryRunFlag),
	})
	if err != nil {
		return err
	}

	if len(assignments) == 0 {
		log.Println("No outputs detected.")
	}
	if c.Bool(dryRunFlag) {
		for _, a := range assignments {
			fmt.Printf("%s\t%s\n", a.Output, a.Path)
		}
	}
	return nil
}
