// Package config loads lintmark.toml and applies LINTMARK_* environment
// overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/lintmark/analysis"
	"github.com/iw2rmb/lintmark/kv"
)

type Config struct {
	Analysis    Analysis    `toml:"analysis"`
	Interaction Interaction `toml:"interaction"`
	Store       Store       `toml:"store"`
	Lint        Lint        `toml:"lint"`
	Log         Log         `toml:"log"`
	Editor      Editor      `toml:"editor"`
	Trace       bool        `toml:"trace"`
}

type Analysis struct {
	Policy  string `toml:"policy"`
	DelayMS int    `toml:"delay_ms"`
}

type Interaction struct {
	KeepSelection bool `toml:"keep_selection"`
}

type Store struct {
	Backend  string `toml:"backend"`
	Path     string `toml:"path"`
	RedisURL string `toml:"redis_url"`
}

type Lint struct {
	WordList       string `toml:"word_list"`
	StrictSpelling bool   `toml:"strict_spelling"`
}

type Log struct {
	File string `toml:"file"`
}

type Editor struct {
	LineNumbers bool `toml:"line_numbers"`
}

func Default() Config {
	return Config{
		Analysis: Analysis{Policy: "debounce", DelayMS: int(analysis.DefaultDelay / time.Millisecond)},
		Store: Store{
			Backend:  string(kv.BackendFile),
			Path:     filepath.Join(DataDir(), "settings.mp"),
			RedisURL: "redis://localhost:6379/0",
		},
		Log:    Log{File: filepath.Join(DataDir(), "lintmark.log")},
		Editor: Editor{LineNumbers: true},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/lintmark/lintmark.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "lintmark.toml"
	}
	return filepath.Join(dir, "lintmark", "lintmark.toml")
}

// DataDir is $LINTMARK_DATA_DIR, else $XDG_DATA_HOME/lintmark, else
// ~/.local/share/lintmark.
func DataDir() string {
	if d := getenv("LINTMARK_DATA_DIR", ""); d != "" {
		return d
	}
	if d := getenv("XDG_DATA_HOME", ""); d != "" {
		return filepath.Join(d, "lintmark")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lintmark"
	}
	return filepath.Join(home, ".local", "share", "lintmark")
}

// Load reads path (DefaultPath if empty). A missing file yields defaults.
// Values that do not make sense are replaced by defaults and reported to
// logger.
func Load(path string, logger *log.Logger) (Config, error) {
	if logger == nil {
		logger = log.Default()
	}
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg.applyEnv()
	cfg.normalize(logger)
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Analysis.Policy = getenv("LINTMARK_POLICY", c.Analysis.Policy)
	c.Analysis.DelayMS = getenvInt("LINTMARK_DEBOUNCE_MS", c.Analysis.DelayMS)
	c.Store.Backend = getenv("LINTMARK_STORE", c.Store.Backend)
	c.Store.RedisURL = getenv("LINTMARK_REDIS_URL", c.Store.RedisURL)
	c.Log.File = getenv("LINTMARK_LOG_FILE", c.Log.File)
	c.Trace = getenvBool("LINTMARK_TRACE", c.Trace)
}

func (c *Config) normalize(logger *log.Logger) {
	def := Default()
	if _, err := analysis.ParsePolicy(c.Analysis.Policy); err != nil {
		logger.Printf("config: %v; using %s", err, def.Analysis.Policy)
		c.Analysis.Policy = def.Analysis.Policy
	}
	if c.Analysis.DelayMS <= 0 {
		logger.Printf("config: analysis.delay_ms must be positive, got %d; using %d", c.Analysis.DelayMS, def.Analysis.DelayMS)
		c.Analysis.DelayMS = def.Analysis.DelayMS
	}
	if _, err := kv.ParseBackend(c.Store.Backend); err != nil {
		logger.Printf("config: %v; using %s", err, def.Store.Backend)
		c.Store.Backend = def.Store.Backend
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		c.Store.Path = def.Store.Path
	}
}

func (c Config) Policy() analysis.Policy {
	p, _ := analysis.ParsePolicy(c.Analysis.Policy)
	return p
}

func (c Config) Delay() time.Duration {
	return time.Duration(c.Analysis.DelayMS) * time.Millisecond
}

func (c Config) KV() kv.Config {
	b, _ := kv.ParseBackend(c.Store.Backend)
	return kv.Config{Backend: b, Path: c.Store.Path, RedisURL: c.Store.RedisURL}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
