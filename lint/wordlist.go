package lint

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

//go:embed words.txt
var builtinWords string

// wordList is an immutable lowercase word set. order keeps the first-seen
// order, which for the built-in list is roughly by frequency.
type wordList struct {
	set   map[string]struct{}
	order [][]rune
}

func (l *wordList) has(lw string) bool {
	if l == nil {
		return false
	}
	_, ok := l.set[lw]
	return ok
}

func (l *wordList) add(w string) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w == "" || strings.HasPrefix(w, "#") {
		return
	}
	if _, ok := l.set[w]; ok {
		return
	}
	l.set[w] = struct{}{}
	l.order = append(l.order, []rune(w))
}

func (l *wordList) read(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		if n++; n%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		l.add(sc.Text())
	}
	return sc.Err()
}

func loadWordList(ctx context.Context, path string) (*wordList, error) {
	l := &wordList{set: make(map[string]struct{})}
	if err := l.read(ctx, strings.NewReader(builtinWords)); err != nil {
		return nil, err
	}
	if path == "" {
		return l, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	if err := l.read(ctx, f); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return l, nil
}

// nearest returns up to limit known words within maxDist edits of lw, closest
// first and in list order among equals.
func (l *wordList) nearest(lw string, maxDist, limit int) []string {
	if l == nil {
		return nil
	}
	target := []rune(lw)
	type cand struct {
		word string
		dist int
		rank int
	}
	var found []cand
	for i, w := range l.order {
		if d := editDistance(target, w, maxDist); d <= maxDist {
			found = append(found, cand{string(w), d, i})
		}
	}
	slices.SortFunc(found, func(a, b cand) int {
		if a.dist != b.dist {
			return a.dist - b.dist
		}
		return a.rank - b.rank
	})
	out := make([]string, 0, min(limit, len(found)))
	for _, c := range found[:min(limit, len(found))] {
		out = append(out, c.word)
	}
	return out
}
