package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"shiftclip/internal/model"

	"github.com/rs/zerolog"
)

const (
	DataKey      = "shiftclip_data"
	LockedKey    = "shiftclip_locked"
	ThemeKey     = "theme"
	SelectionKey = "shiftclip_selection"
)

// DB is the in-memory state for one process: the document tree and the
// current selection. The selection is not part of the document.
type DB struct {
	Tree      model.Tree
	Selection model.Path
}

func NewDB() *DB {
	return &DB{Tree: model.Tree{}, Selection: model.Path{}}
}

type Store struct {
	Dir     string
	Backend Backend

	kv  KV
	log zerolog.Logger
}

// Open opens the backend under dir. The returned Store owns the KV handle.
func Open(ctx context.Context, dir string, backend Backend, log zerolog.Logger) (*Store, error) {
	kv, err := OpenKV(ctx, dir, backend)
	if err != nil {
		return nil, fmt.Errorf("open %s store in %s: %w", backend, dir, err)
	}
	return &Store{Dir: dir, Backend: backend, kv: kv, log: log}, nil
}

// New wraps an already open KV.
func New(kv KV, log zerolog.Logger) *Store {
	return &Store{kv: kv, log: log}
}

func (s *Store) KV() KV { return s.kv }

func (s *Store) Close() error {
	if s == nil || s.kv == nil {
		return nil
	}
	return s.kv.Close()
}

// Load reads the document. A missing, unreadable or corrupt document yields
// an empty tree; the failure is logged and never returned.
func (s *Store) Load(ctx context.Context) *DB {
	db := NewDB()
	b, ok, err := s.kv.Get(ctx, DataKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", DataKey).Msg("read document failed; starting with an empty tree")
		return db
	}
	if !ok || len(strings.TrimSpace(string(b))) == 0 {
		s.log.Debug().Str("key", DataKey).Msg("no document; starting with an empty tree")
		return db
	}
	tree, err := DecodeTree(b)
	if err != nil {
		s.log.Warn().Err(err).Str("key", DataKey).Msg("corrupt document; starting with an empty tree")
		return db
	}
	db.Tree = tree
	return db
}

// Save writes the whole tree.
func (s *Store) Save(ctx context.Context, db *DB) error {
	if db == nil {
		return fmt.Errorf("save tree: nil db")
	}
	b, err := EncodeTree(db.Tree)
	if err != nil {
		return fmt.Errorf("save tree: %w", err)
	}
	if err := s.kv.Put(ctx, DataKey, b); err != nil {
		return fmt.Errorf("save tree: %w", err)
	}
	s.log.Debug().Int("bytes", len(b)).Int("nodes", db.Tree.CountNodes()).Msg("tree saved")
	return nil
}

func EncodeTree(t model.Tree) ([]byte, error) {
	if t == nil {
		t = model.Tree{}
	}
	return json.Marshal(t)
}

func DecodeTree(b []byte) (model.Tree, error) {
	var t model.Tree
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	t.Normalize()
	return t, nil
}
