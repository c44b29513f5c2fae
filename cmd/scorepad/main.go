package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"

	"github.com/nertzpro/scorepad/internal/config"
	"github.com/nertzpro/scorepad/internal/game"
	"github.com/nertzpro/scorepad/internal/store"
	"github.com/nertzpro/scorepad/internal/tui"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" default:"scorepad.hcl" help:"Path to HCL config file"`
	Data    string           `help:"Session file path (overrides config)"`
	Target  int              `short:"t" help:"Target score for a fresh game (overrides config)"`
	Fresh   bool             `help:"Ignore any saved session and start over"`
	Debug   bool             `help:"Log at debug level"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("scorepad"),
		kong.Description("Terminal scorekeeper for Nerts-style card games"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)
	ctx.FatalIfErrorf(run(cli))
}

func run(cli CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cli.Data != "" {
		cfg.Storage.Path = cli.Data
	}
	if cli.Target != 0 {
		cfg.Game.TargetScore = cli.Target
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.WarnLevel
	}
	if cli.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
	logger.Info("starting scorepad", "version", version, "data", cfg.Storage.Path)

	st := store.NewFileStore(cfg.Storage.Path, nil, logger)
	sess := loadSession(cli, cfg, st, logger)

	theme := tui.DefaultTheme(termenv.HasDarkBackground())
	model := tui.New(sess, st, logger, theme)
	program := tea.NewProgram(model, tea.WithAltScreen())

	err = runUntilDone(func() error {
		_, err := program.Run()
		return err
	}, program.Quit, logger)
	if err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return model.Err()
}

// runUntilDone runs the TUI alongside a signal watcher and returns once
// the program has exited. The watcher asks the program to quit on
// SIGINT/SIGTERM; a normal program exit cancels the watcher so the
// group never outlives the TUI.
func runUntilDone(run func() error, quit func(), logger *log.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return run()
	})
	g.Go(func() error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case <-ctx.Done():
			return nil
		case sig := <-sigCh:
			logger.Info("received signal, shutting down", "signal", sig.String())
			quit()
			return nil
		}
	})
	return g.Wait()
}

// loadSession restores the saved session, falling back to a fresh
// Setup-state session when none exists, --fresh was given, or the blob
// cannot be read.
func loadSession(cli CLI, cfg *config.Config, st store.Store, logger *log.Logger) *game.Session {
	if !cli.Fresh {
		sess, ok, err := st.Load()
		if err != nil {
			logger.Warn("failed to load saved session, starting fresh", "error", err)
		} else if ok {
			logger.Info("restored session", "players", sess.PlayerCount(), "rounds", sess.RoundCount())
			return sess
		}
	}
	return game.NewSession(
		game.WithTargetScore(cfg.Game.TargetScore),
		game.WithScoreRange(cfg.Game.ScoreFloor, cfg.Game.ScoreSpan),
	)
}
