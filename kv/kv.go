// Package kv stores small settings blobs under string keys.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("kv: key not found")

// Store is a byte-valued key-value store. Implementations are safe for
// concurrent use.
type Store interface {
	// Get returns ErrNotFound for a missing key.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte) error
	// Delete is not an error for a missing key.
	Delete(ctx context.Context, key string) error
	Close() error
}

type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
)

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendMemory, BackendFile, BackendRedis:
		return b, nil
	case "":
		return BackendFile, nil
	default:
		return "", fmt.Errorf("kv: unknown backend %q", s)
	}
}

type Config struct {
	Backend  Backend
	Path     string // file backend
	RedisURL string // redis backend
	Prefix   string // redis backend, default "lintmark:"
}

// Open builds the store described by cfg.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile, "":
		return OpenFile(cfg.Path)
	case BackendRedis:
		return NewRedis(ctx, cfg.RedisURL, cfg.Prefix)
	default:
		return nil, fmt.Errorf("kv: unknown backend %q", cfg.Backend)
	}
}
