package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/lintmark/internal/config"
	"github.com/iw2rmb/lintmark/kv"
	"github.com/iw2rmb/lintmark/lint"
	"github.com/iw2rmb/lintmark/settings"
)

// env is what every command needs: configuration, the settings store and,
// on demand, an initialized engine.
type env struct {
	cfg      config.Config
	logger   *log.Logger
	store    kv.Store
	settings *settings.Settings
	engine   *lint.Engine
}

func loadEnv(cmd *cobra.Command, logger *log.Logger) (*env, error) {
	if logger == nil {
		logger = log.New(os.Stderr, "lintmark: ", 0)
	}
	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return nil, err
	}
	return openEnv(cmd, cfg, logger)
}

// loadConfig reads --config and applies the flags that override it.
func loadConfig(cmd *cobra.Command, logger *log.Logger) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, logger)
	if err != nil {
		return cfg, err
	}
	if trace, _ := cmd.Flags().GetBool("trace"); trace {
		cfg.Trace = true
	}
	return cfg, applyColorMode(cmd)
}

func openEnv(cmd *cobra.Command, cfg config.Config, logger *log.Logger) (*env, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := kv.Open(ctx, cfg.KV())
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	st, err := settings.Load(ctx, store, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, store: store, settings: st}, nil
}

// startEngine builds and initializes the lint engine over the settings.
func (e *env) startEngine(ctx context.Context) (*lint.Engine, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	eng := lint.New(e.settings, lint.Options{
		WordList:       e.cfg.Lint.WordList,
		StrictSpelling: e.cfg.Lint.StrictSpelling,
		Logger:         e.logger,
	})
	if err := eng.Init(ctx); err != nil {
		return nil, err
	}
	e.engine = eng
	return eng, nil
}

func (e *env) Close() error {
	if e.engine != nil {
		e.engine.Shutdown()
	}
	return e.store.Close()
}

func applyColorMode(cmd *cobra.Command) error {
	mode, _ := cmd.Flags().GetString("color")
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "", "auto":
		color.NoColor = !isTerminal(os.Stdout) || os.Getenv("NO_COLOR") != ""
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}

func discardLogger() *log.Logger { return log.New(io.Discard, "", 0) }
