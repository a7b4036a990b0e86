package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/lintmark/internal/app"
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open the editor",
	Long:  `Open file in the editor, creating it on first save if it does not exist. ctrl+s saves, ctrl+q quits.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New("edit needs a terminal; use `lintmark check` for pipes")
	}

	var path, text string
	if len(args) == 1 {
		path = args[0]
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// created on first save
		case err != nil:
			return err
		case !utf8.Valid(data):
			return fmt.Errorf("%s: not valid UTF-8", path)
		default:
			text = string(data)
		}
	}

	cfg, err := loadConfig(cmd, log.New(os.Stderr, "lintmark: ", 0))
	if err != nil {
		return err
	}
	logger, closeLog, err := editLogger(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	e, err := openEnv(cmd, cfg, logger)
	if err != nil {
		return err
	}
	defer e.Close()
	eng, err := e.startEngine(cmd.Context())
	if err != nil {
		return err
	}

	m := app.New(app.Options{
		Path:     path,
		Text:     text,
		Analyzer: eng,
		Settings: e.settings,
		Config:   e.cfg,
		Logger:   logger,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}

// editLogger writes to path, which defaults to a file under the data dir.
// The terminal belongs to the program, so log output has nowhere else to go.
// An empty path discards.
func editLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return discardLogger(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	f, err := tea.LogToFile(path, "lintmark")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.Default(), func() { _ = f.Close() }, nil
}
