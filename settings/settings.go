// Package settings persists the user's dictionary, rule toggles and
// dialect in a kv.Store.
//
// Values are read once by Load and written through on every mutation.
// Anything that fails to decode is replaced by its default and logged;
// a broken settings entry never keeps the editor from starting.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/unicode/norm"

	"github.com/iw2rmb/lintmark/kv"
)

const (
	keyWords   = "words"
	keyRules   = "rules"
	keyDialect = "dialect"
)

var ErrInvalidWord = errors.New("settings: word must be a single non-empty token")

type Settings struct {
	mu      sync.Mutex
	store   kv.Store
	logger  *log.Logger
	words   []string
	rules   map[string]bool
	dialect Dialect
}

// Load reads all values from store. It fails only when the store itself
// does.
func Load(ctx context.Context, store kv.Store, logger *log.Logger) (*Settings, error) {
	if logger == nil {
		logger = log.Default()
	}
	s := &Settings{store: store, logger: logger, rules: map[string]bool{}}

	var words []string
	ok, err := s.load(ctx, keyWords, &words)
	if err != nil {
		return nil, err
	}
	if ok {
		s.words = normalizeWords(words)
	}

	var rules map[string]bool
	if ok, err = s.load(ctx, keyRules, &rules); err != nil {
		return nil, err
	}
	if ok && rules != nil {
		s.rules = rules
	}

	var dialect string
	if ok, err = s.load(ctx, keyDialect, &dialect); err != nil {
		return nil, err
	}
	if ok && dialect != "" {
		d, err := ParseDialect(dialect)
		if err != nil {
			s.logger.Printf("settings: %v; using %s", err, DialectAmerican)
		}
		s.dialect = d
	}
	return s, nil
}

// load decodes key into v. It reports false when the key is missing or
// malformed, in which case v must not be used.
func (s *Settings) load(ctx context.Context, key string, v any) (bool, error) {
	b, err := s.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := msgpack.Unmarshal(b, v); err != nil {
		s.logger.Printf("settings: malformed %q, using defaults: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (s *Settings) save(ctx context.Context, key string, v any) error {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, b); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Words returns the custom dictionary, sorted.
func (s *Settings) Words() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.words)
}

// AddWord adds w in NFC form. It reports false if w was already present.
func (s *Settings) AddWord(ctx context.Context, w string) (bool, error) {
	w, err := NormalizeWord(w)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := slices.BinarySearch(s.words, w)
	if ok {
		return false, nil
	}
	next := slices.Insert(slices.Clone(s.words), i, w)
	if err := s.save(ctx, keyWords, next); err != nil {
		return false, err
	}
	s.words = next
	return true, nil
}

func (s *Settings) RemoveWord(ctx context.Context, w string) (bool, error) {
	w = norm.NFC.String(strings.TrimSpace(w))
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := slices.BinarySearch(s.words, w)
	if !ok {
		return false, nil
	}
	next := slices.Delete(slices.Clone(s.words), i, i+1)
	if err := s.save(ctx, keyWords, next); err != nil {
		return false, err
	}
	s.words = next
	return true, nil
}

// Rules returns the explicit rule toggles. Rules absent from the map use
// their default.
func (s *Settings) Rules() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.rules)
}

// RuleEnabled returns the stored toggle for name, or def.
func (s *Settings) RuleEnabled(name string, def bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on, ok := s.rules[name]; ok {
		return on
	}
	return def
}

func (s *Settings) SetRule(ctx context.Context, name string, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := maps.Clone(s.rules)
	next[name] = on
	if err := s.save(ctx, keyRules, next); err != nil {
		return err
	}
	s.rules = next
	return nil
}

// ReplaceRules swaps the whole toggle map.
func (s *Settings) ReplaceRules(ctx context.Context, rules map[string]bool) error {
	next := maps.Clone(rules)
	if next == nil {
		next = map[string]bool{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(ctx, keyRules, next); err != nil {
		return err
	}
	s.rules = next
	return nil
}

func (s *Settings) Dialect() Dialect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialect
}

func (s *Settings) SetDialect(ctx context.Context, d Dialect) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(ctx, keyDialect, d.String()); err != nil {
		return err
	}
	s.dialect = d
	return nil
}

// NormalizeWord trims w and converts it to NFC. Words containing
// whitespace are rejected.
func NormalizeWord(w string) (string, error) {
	w = norm.NFC.String(strings.TrimSpace(w))
	if w == "" || strings.IndexFunc(w, unicode.IsSpace) >= 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, w)
	}
	return w, nil
}

func normalizeWords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		if n, err := NormalizeWord(w); err == nil {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
