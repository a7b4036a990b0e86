package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/lintmark/issue"
)

var errIssuesFound = errors.New("issues found")

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Report issues without opening the editor",
	Long:  `Analyze each file and print its issues. Reads standard input when no file or "-" is given. Exits non-zero when any issue is found.`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("json", false, "emit issues as JSON with zero-based line/character positions")
}

type position struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

type jsonRange struct {
	Start position `json:"start"`
	End   position `json:"end"`
}

type jsonIssue struct {
	File        string    `json:"file"`
	Range       jsonRange `json:"range"`
	Severity    string    `json:"severity"`
	Kind        string    `json:"kind"`
	Rule        string    `json:"rule,omitempty"`
	Message     string    `json:"message"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

type document struct {
	name string
	text string
}

func runCheck(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	docs, err := readDocuments(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	e, err := loadEnv(cmd, nil)
	if err != nil {
		return err
	}
	defer e.Close()
	eng, err := e.startEngine(cmd.Context())
	if err != nil {
		return err
	}

	var out []jsonIssue
	total := 0
	for _, d := range docs {
		raws, err := eng.Analyze(cmd.Context(), d.text)
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		sort.SliceStable(raws, func(i, j int) bool { return raws[i].Span.Start < raws[j].Span.Start })
		total += len(raws)

		found, err := toJSON(d, raws)
		if err != nil {
			return err
		}
		if asJSON {
			out = append(out, found...)
			continue
		}
		printIssues(cmd.OutOrStdout(), found)
	}

	if asJSON {
		if out == nil {
			out = []jsonIssue{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else if total == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("no issues"))
	}
	if total > 0 {
		return errIssuesFound
	}
	return nil
}

func readDocuments(args []string, stdin io.Reader) ([]document, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	docs := make([]document, 0, len(args))
	for _, name := range args {
		var data []byte
		var err error
		if name == "-" {
			data, err = io.ReadAll(stdin)
			name = "<stdin>"
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%s: not valid UTF-8", name)
		}
		docs = append(docs, document{name: name, text: string(data)})
	}
	return docs, nil
}

func toJSON(d document, raws []issue.Raw) ([]jsonIssue, error) {
	lines := lineStarts(d.text)
	out := make([]jsonIssue, 0, len(raws))
	for _, r := range raws {
		start, err := positionOf(lines, r.Span.Start)
		if err != nil {
			return nil, err
		}
		end, err := positionOf(lines, r.Span.End)
		if err != nil {
			return nil, err
		}
		ji := jsonIssue{
			File:     d.name,
			Range:    jsonRange{Start: start, End: end},
			Severity: issue.SeverityOf(r.Kind).String(),
			Kind:     r.Kind,
			Rule:     r.Rule,
			Message:  r.Message,
		}
		for _, s := range r.Suggestions {
			ji.Suggestions = append(ji.Suggestions, s.Label())
		}
		out = append(out, ji)
	}
	return out, nil
}

// lineStarts returns the rune offset at which each line begins.
func lineStarts(text string) []int {
	starts := []int{0}
	off := 0
	for _, r := range text {
		off++
		if r == '\n' {
			starts = append(starts, off)
		}
	}
	return starts
}

func positionOf(starts []int, off int) (position, error) {
	line := sort.Search(len(starts), func(i int) bool { return starts[i] > off }) - 1
	line = max(line, 0)
	l, err := safecast.Conv[uint32](line)
	if err != nil {
		return position{}, err
	}
	c, err := safecast.Conv[uint32](off - starts[line])
	if err != nil {
		return position{}, err
	}
	return position{Line: l, Character: c}, nil
}

var (
	fileColor    = color.New(color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	hintColor    = color.New(color.FgGreen)
)

func severityColor(sev string) *color.Color {
	switch sev {
	case issue.SevError.String():
		return errorColor
	case issue.SevWarning.String():
		return warningColor
	default:
		return infoColor
	}
}

// printIssues writes one "file:line:col: kind: message" line per issue,
// with one-based positions.
func printIssues(w io.Writer, found []jsonIssue) {
	for _, ji := range found {
		fmt.Fprintf(w, "%s %s %s\n",
			fileColor.Sprintf("%s:%d:%d:", ji.File, ji.Range.Start.Line+1, ji.Range.Start.Character+1),
			severityColor(ji.Severity).Sprintf("%s:", ji.Kind),
			plainMessage(ji.Message),
		)
		if len(ji.Suggestions) > 0 {
			fmt.Fprintf(w, "    %s\n", hintColor.Sprintf("suggestions: %s", strings.Join(ji.Suggestions, ", ")))
		}
	}
}

// plainMessage drops the code markers from msg.
func plainMessage(msg string) string {
	var b strings.Builder
	for _, seg := range issue.ParseMessage(msg) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
