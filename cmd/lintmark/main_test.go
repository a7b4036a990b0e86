package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// writeConfig points the settings store at a file under a temp dir.
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "lintmark.toml")
	body := "[store]\nbackend = \"file\"\npath = \"" + filepath.ToSlash(filepath.Join(dir, "settings.mp")) + "\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LINTMARK_STORE", "")
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPositionOf_RuneColumns(t *testing.T) {
	starts := lineStarts("ab\ncé\n")
	if got, want := len(starts), 3; got != want {
		t.Fatalf("lines=%d, want %d", got, want)
	}
	cases := []struct {
		off  int
		want position
	}{
		{0, position{0, 0}},
		{2, position{0, 2}},
		{3, position{1, 0}},
		{5, position{1, 2}},
		{6, position{2, 0}},
	}
	for _, tc := range cases {
		got, err := positionOf(starts, tc.off)
		if err != nil {
			t.Fatalf("positionOf(%d): %v", tc.off, err)
		}
		if got != tc.want {
			t.Fatalf("positionOf(%d)=%v, want %v", tc.off, got, tc.want)
		}
	}
}

func TestApplyColorMode(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	cmd := &cobra.Command{}
	cmd.Flags().String("color", "", "")

	_ = cmd.Flags().Set("color", "on")
	if err := applyColorMode(cmd); err != nil || color.NoColor {
		t.Fatalf("on: err=%v NoColor=%v", err, color.NoColor)
	}
	_ = cmd.Flags().Set("color", "OFF")
	if err := applyColorMode(cmd); err != nil || !color.NoColor {
		t.Fatalf("off: err=%v NoColor=%v", err, color.NoColor)
	}
	_ = cmd.Flags().Set("color", "sometimes")
	if err := applyColorMode(cmd); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}

func TestCheck_JSONReportsSpelling(t *testing.T) {
	cfg := writeConfig(t)
	doc := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(doc, []byte("The cat.\nTeh cat sat on the mat."), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "check", "--config", cfg, "--color", "off", "--json=true", doc)
	if !errors.Is(err, errIssuesFound) {
		t.Fatalf("err=%v, want errIssuesFound", err)
	}
	var got []jsonIssue
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	var spell *jsonIssue
	for i := range got {
		if got[i].Rule == "SpellCheck" {
			spell = &got[i]
		}
	}
	if spell == nil {
		t.Fatalf("no spelling issue in %+v", got)
	}
	want := jsonRange{Start: position{1, 0}, End: position{1, 3}}
	if spell.Range != want {
		t.Fatalf("range=%+v, want %+v", spell.Range, want)
	}
	if spell.Severity != "ERROR" || len(spell.Suggestions) == 0 || spell.Suggestions[0] != "The" {
		t.Fatalf("issue=%+v", *spell)
	}
}

func TestCheck_TextOutputFromStdin(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "Teh cat sat on the mat.", "check", "--config", cfg, "--color", "off", "--json=false")
	if !errors.Is(err, errIssuesFound) {
		t.Fatalf("err=%v, want errIssuesFound", err)
	}
	if !strings.HasPrefix(out, "<stdin>:1:1: Spelling: Did you mean to spell Teh this way?") {
		t.Fatalf("out=%q", out)
	}

	out, err = run(t, "The cat sat on the mat.", "check", "--config", cfg, "--color", "off", "--json=false", "-")
	if err != nil {
		t.Fatalf("clean text: %v", err)
	}
	if got, want := out, "no issues\n"; got != want {
		t.Fatalf("out=%q, want %q", got, want)
	}
}

func TestWords_AddListRemove(t *testing.T) {
	cfg := writeConfig(t)

	if _, err := run(t, "", "words", "add", "--config", cfg, "--color", "off", "Teh", "zyzzx"); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := run(t, "", "words", "list", "--config", cfg, "--color", "off")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got, want := out, "Teh\nzyzzx\n"; got != want {
		t.Fatalf("list=%q, want %q", got, want)
	}

	// Added words are no longer flagged.
	if _, err := run(t, "Teh cat sat on the mat.", "check", "--config", cfg, "--color", "off", "--json=false"); err != nil {
		t.Fatalf("check after add: %v", err)
	}

	if _, err := run(t, "", "words", "remove", "--config", cfg, "--color", "off", "zyzzx"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	out, _ = run(t, "", "words", "list", "--config", cfg, "--color", "off")
	if got, want := out, "Teh\n"; got != want {
		t.Fatalf("list=%q, want %q", got, want)
	}
}

func TestRules_DisableAndExport(t *testing.T) {
	cfg := writeConfig(t)

	if _, err := run(t, "", "rules", "disable", "--config", cfg, "--color", "off", "SpellCheck"); err != nil {
		t.Fatalf("disable: %v", err)
	}
	out, err := run(t, "", "rules", "export", "--config", cfg, "--color", "off")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var rules map[string]bool
	if err := json.Unmarshal([]byte(out), &rules); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if on, ok := rules["SpellCheck"]; !ok || on {
		t.Fatalf("rules=%v", rules)
	}

	if _, err := run(t, "", "rules", "enable", "--config", cfg, "--color", "off", "NoSuchRule"); err == nil {
		t.Fatalf("expected error for unknown rule")
	}
}

func TestEditLogger_CreatesDataDir(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	})
	path := filepath.Join(t.TempDir(), "data", "lintmark.log")
	logger, closeLog, err := editLogger(path)
	if err != nil {
		t.Fatalf("editLogger: %v", err)
	}
	logger.Print("analysis failed")
	closeLog()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "analysis failed") {
		t.Fatalf("log=%q, want the logged line", b)
	}
}
