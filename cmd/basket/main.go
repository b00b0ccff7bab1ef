package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/idilsaglam/basket/internal/cli"
	"github.com/idilsaglam/basket/internal/config"
	"github.com/idilsaglam/basket/internal/logging"
	"github.com/idilsaglam/basket/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "path to basket.yaml")
	theme := flag.String("theme", "", "classic, neon or mono (overrides ui.theme)")
	plain := flag.Bool("plain", false, "print the list instead of opening the interactive view")
	noColor := flag.Bool("no-color", os.Getenv("NO_COLOR") != "", "disable colors")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}
	if *theme != "" {
		cfg.UI.Theme = *theme
	}
	ui.SetTheme(cfg.UI.Theme)
	if *noColor {
		ui.SetColorForcing(false, true)
	}

	log := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Run(ctx, args, cli.Options{
		Config: cfg,
		Log:    log,
		Plain:  *plain,
	})
	stop()
	_ = log.Sync()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
