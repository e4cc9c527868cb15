package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/agentui/pkg/config"
	"github.com/umputun/agentui/pkg/content"
	"github.com/umputun/agentui/pkg/demo"
	"github.com/umputun/agentui/pkg/repository"
	"github.com/umputun/agentui/pkg/settings"
	"github.com/umputun/agentui/server"
)

// Opts with all CLI options
type Opts struct {
	Config   string `short:"c" long:"config" env:"CONFIG" description:"configuration file, built-in defaults if not set"`
	Listen   string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Subtitle string `long:"subtitle" env:"NEXT_PUBLIC_SUBTITLE" description:"agents page subtitle, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	log.Printf("[INFO] starting agentui version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.Subtitle != "" {
		cfg.UI.Subtitle = opts.Subtitle
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open settings journal: %w", err)
	}
	defer repos.Close()

	// every process starts from the defaults, revisions of earlier runs are dropped
	if err := repos.Revision.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset settings journal: %w", err)
	}

	initial := initialSettings(cfg.Gateway)
	log.Printf("[DEBUG] initial gateway settings: %+v", initial)
	store := settings.NewStore(initial, repos.Revision)

	cluster := &demo.ClusterGenerator{Samples: cfg.UI.ClusterSamples, Step: cfg.UI.ClusterStep}

	srv := server.New(cfg, store, cluster, content.NewLibrary(), revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// initialSettings applies non-empty gateway overrides from the config to the built-in defaults
func initialSettings(gw config.GatewayConfig) settings.Record {
	patch := settings.Patch{"enabled": gw.Enabled}
	for key, val := range map[string]string{
		"title":       gw.Title,
		"description": gw.Description,
		"themeColor":  gw.ThemeColor,
		"publicUrl":   gw.PublicURL,
		"authMode":    gw.AuthMode,
	} {
		if val != "" {
			patch[key] = val
		}
	}
	return settings.Default().Merge(patch)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

