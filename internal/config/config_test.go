package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iw2rmb/lintmark/analysis"
	"github.com/iw2rmb/lintmark/kv"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lintmark.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LINTMARK_DATA_DIR", dir)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.Delay(), analysis.DefaultDelay; got != want {
		t.Fatalf("delay=%v, want %v", got, want)
	}
	if got := cfg.Policy(); got != analysis.PolicyDebounce {
		t.Fatalf("policy=%v, want debounce", got)
	}
	if got := cfg.KV().Backend; got != kv.BackendFile {
		t.Fatalf("backend=%q, want file", got)
	}
	if got, want := cfg.Log.File, filepath.Join(dir, "lintmark.log"); got != want {
		t.Fatalf("log file=%q, want %q", got, want)
	}
}

func TestLoad_EmptyLogFileDisablesLogging(t *testing.T) {
	t.Setenv("LINTMARK_DATA_DIR", t.TempDir())
	cfg, err := Load(writeConfig(t, "[log]\nfile = \"\"\n"), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.File != "" {
		t.Fatalf("log file=%q, want empty", cfg.Log.File)
	}
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
trace = true

[analysis]
policy = "throttle"
delay_ms = 120

[interaction]
keep_selection = true

[store]
backend = "redis"
redis_url = "redis://cache:6379/2"

[lint]
strict_spelling = true
`)
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Policy() != analysis.PolicyThrottle || cfg.Delay() != 120*time.Millisecond {
		t.Fatalf("analysis=%+v", cfg.Analysis)
	}
	if !cfg.Trace || !cfg.Interaction.KeepSelection || !cfg.Lint.StrictSpelling {
		t.Fatalf("flags=%+v", cfg)
	}
	if got := cfg.KV(); got.Backend != kv.BackendRedis || got.RedisURL != "redis://cache:6379/2" {
		t.Fatalf("kv=%+v", got)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "[analysis]\ndelay_ms = 120\n")
	dir := t.TempDir()
	t.Setenv("LINTMARK_DEBOUNCE_MS", "50")
	t.Setenv("LINTMARK_STORE", "memory")
	t.Setenv("LINTMARK_DATA_DIR", dir)
	t.Setenv("LINTMARK_LOG_FILE", "/tmp/lintmark.log")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Delay(); got != 50*time.Millisecond {
		t.Fatalf("delay=%v, want 50ms", got)
	}
	if got := cfg.KV().Backend; got != kv.BackendMemory {
		t.Fatalf("backend=%q", got)
	}
	if got, want := cfg.Store.Path, filepath.Join(dir, "settings.mp"); got != want {
		t.Fatalf("path=%q, want %q", got, want)
	}
	if cfg.Log.File != "/tmp/lintmark.log" {
		t.Fatalf("log file=%q", cfg.Log.File)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
[analysis]
policy = "sometimes"
delay_ms = -5

[store]
backend = "floppy"
`)
	t.Setenv("LINTMARK_DEBOUNCE_MS", "soon")

	var logs bytes.Buffer
	cfg, err := Load(path, log.New(&logs, "", 0))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Policy() != analysis.PolicyDebounce || cfg.Delay() != analysis.DefaultDelay {
		t.Fatalf("analysis=%+v", cfg.Analysis)
	}
	if cfg.Store.Backend != string(kv.BackendFile) {
		t.Fatalf("backend=%q", cfg.Store.Backend)
	}
	for _, want := range []string{"sometimes", "delay_ms", "floppy"} {
		if !strings.Contains(logs.String(), want) {
			t.Fatalf("logs missing %q: %q", want, logs.String())
		}
	}
}

func TestLoad_BrokenTOML(t *testing.T) {
	path := writeConfig(t, "[analysis\n")
	if _, err := Load(path, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}
