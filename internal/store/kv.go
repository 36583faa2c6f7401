package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// KV is the generic key-value persisted store the document lives in.
// Get reports ok=false for a missing key.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
)

func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(BackendSQLite):
		return BackendSQLite, nil
	case string(BackendFile), "json":
		return BackendFile, nil
	case string(BackendMemory):
		return BackendMemory, nil
	default:
		return "", fmt.Errorf("unknown backend: %s (expected sqlite|file|memory)", s)
	}
}

// OpenKV opens the backend rooted at dir.
func OpenKV(ctx context.Context, dir string, backend Backend) (KV, error) {
	switch backend {
	case BackendSQLite:
		return OpenSQLiteKV(ctx, dir)
	case BackendFile:
		return OpenFileKV(dir)
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", backend)
	}
}

// MemoryKV keeps values in process memory. Used by tests and --backend=memory.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: map[string][]byte{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.data))
	for k := range m.data {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemoryKV) Close() error { return nil }

// CopyKV copies every key from src to dst, overwriting existing values.
func CopyKV(ctx context.Context, dst, src KV) (int, error) {
	keys, err := src.Keys(ctx)
	if err != nil {
		return 0, fmt.Errorf("list keys: %w", err)
	}
	n := 0
	for _, k := range keys {
		v, ok, err := src.Get(ctx, k)
		if err != nil {
			return n, fmt.Errorf("read %s: %w", k, err)
		}
		if !ok {
			continue
		}
		if err := dst.Put(ctx, k, v); err != nil {
			return n, fmt.Errorf("write %s: %w", k, err)
		}
		n++
	}
	return n, nil
}
