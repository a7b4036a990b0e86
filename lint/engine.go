// Package lint is the bundled grammar and spelling checker. An Engine is an
// owned resource: call Init before the first Analyze and Shutdown when done.
package lint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/iw2rmb/lintmark/analysis"
	"github.com/iw2rmb/lintmark/apply"
	"github.com/iw2rmb/lintmark/issue"
	"github.com/iw2rmb/lintmark/settings"
)

var ErrNotInitialized = errors.New("lint: engine not initialized")

// Dictionary is the user's persisted configuration. *settings.Settings
// implements it.
type Dictionary interface {
	Words() []string
	AddWord(ctx context.Context, word string) (bool, error)
	RuleEnabled(name string, def bool) bool
	Dialect() settings.Dialect
}

type Options struct {
	// WordList is an optional newline-separated word file loaded on top of
	// the built-in list, e.g. /usr/share/dict/words.
	WordList string
	// StrictSpelling flags unknown words even when no close known word
	// exists.
	StrictSpelling bool
	Logger         *log.Logger
}

type Engine struct {
	dict  Dictionary
	rules []Rule
	opt   Options

	mu     sync.RWMutex
	ready  bool
	words  *wordList
	custom map[string]struct{} // replaced, never mutated
}

var _ analysis.Analyzer = (*Engine)(nil)

// New returns an engine running DefaultRules. dict may be nil, in which
// case every rule uses its default and added words live only in memory.
func New(dict Dictionary, opt Options) *Engine {
	if opt.Logger == nil {
		opt.Logger = log.Default()
	}
	return &Engine{dict: dict, rules: DefaultRules(), opt: opt}
}

// Init loads the word lists. Calling it again is a no-op.
func (e *Engine) Init(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ready {
		return nil
	}
	words, err := loadWordList(ctx, e.opt.WordList)
	if err != nil {
		return fmt.Errorf("lint init: %w", err)
	}
	custom := make(map[string]struct{})
	if e.dict != nil {
		for _, w := range e.dict.Words() {
			custom[strings.ToLower(w)] = struct{}{}
		}
	}
	e.words = words
	e.custom = custom
	e.ready = true
	return nil
}

// Shutdown releases the word lists. Analyze fails until the next Init.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ready = false
	e.words = nil
	e.custom = nil
}

// RuleInfo describes one rule and its current toggle.
type RuleInfo struct {
	Name        string
	Title       string
	Description string
	Enabled     bool
}

func (e *Engine) Rules() []RuleInfo {
	out := make([]RuleInfo, 0, len(e.rules))
	for _, r := range e.rules {
		out = append(out, RuleInfo{
			Name:        r.Name(),
			Title:       issue.RuleTitle(r.Name()),
			Description: r.Description(),
			Enabled:     e.enabled(r),
		})
	}
	return out
}

func (e *Engine) enabled(r Rule) bool {
	if e.dict == nil {
		return r.DefaultEnabled()
	}
	return e.dict.RuleEnabled(r.Name(), r.DefaultEnabled())
}

// Analyze runs every enabled rule over text. Issues come back grouped by
// rule, in rule order.
func (e *Engine) Analyze(ctx context.Context, text string) ([]issue.Raw, error) {
	doc, err := e.document(text)
	if err != nil {
		return nil, err
	}

	results := make([][]issue.Raw, len(e.rules))
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range e.rules {
		if !e.enabled(r) {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			found := r.Check(doc)
			for j := range found {
				found[j].Rule = r.Name()
			}
			results[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []issue.Raw
	for _, rs := range results {
		out = append(out, rs...)
	}
	return out, nil
}

func (e *Engine) document(text string) (*Document, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.ready {
		return nil, ErrNotInitialized
	}
	dialect := settings.DialectAmerican
	if e.dict != nil {
		dialect = e.dict.Dialect()
	}
	return newDocument(text, e.words, e.custom, dialect, e.opt.StrictSpelling), nil
}

func (e *Engine) ApplySuggestion(_ context.Context, text string, raw issue.Raw, s issue.Suggestion) (string, error) {
	return apply.Realize(text, raw, s)
}

// AddWord persists word and makes spell checking accept it right away.
func (e *Engine) AddWord(ctx context.Context, word string) error {
	w, err := settings.NormalizeWord(word)
	if err != nil {
		return err
	}
	if e.dict != nil {
		if _, err := e.dict.AddWord(ctx, w); err != nil {
			return fmt.Errorf("add word: %w", err)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	next := make(map[string]struct{}, len(e.custom)+1)
	for k := range e.custom {
		next[k] = struct{}{}
	}
	next[strings.ToLower(w)] = struct{}{}
	e.custom = next
	return nil
}
