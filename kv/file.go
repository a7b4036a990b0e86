package kv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// fileSchemaVersion changes whenever filePayload does.
const fileSchemaVersion uint16 = 1

type filePayload struct {
	Schema  uint16            `msgpack:"schema"`
	Entries map[string][]byte `msgpack:"entries"`
}

// File keeps every entry in one msgpack file. Each write rewrites the file
// through a temp file and a rename, so readers never see a partial file.
type File struct {
	mu      sync.RWMutex
	path    string
	entries map[string][]byte
}

// OpenFile loads path, or starts empty if it does not exist. A file written
// with another schema version is ignored.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("kv: file backend needs a path")
	}
	s := &File{path: path, entries: make(map[string][]byte)}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var p filePayload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if p.Schema == fileSchemaVersion && p.Entries != nil {
		s.entries = p.Entries
	}
	return s, nil
}

func (s *File) Path() string { return s.path }

func (s *File) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *File) Set(_ context.Context, key string, val []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.entries[key]
	s.entries[key] = append([]byte(nil), val...)
	if err := s.flush(); err != nil {
		if had {
			s.entries[key] = prev
		} else {
			delete(s.entries, key)
		}
		return err
	}
	return nil
}

func (s *File) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.flush()
}

func (s *File) Close() error { return nil }

func (s *File) flush() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	payload := filePayload{Schema: fileSchemaVersion, Entries: s.entries}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
