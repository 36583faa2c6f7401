package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	backupDirName = "backups"
	backupPrefix  = "shiftclip-"
	backupExt     = ".json"
)

var ErrNoDataDir = errors.New("store has no data directory")

// Backup copies the stored document to Dir/backups before a destructive
// change and returns the file written. An empty document writes nothing.
func (s *Store) Backup(ctx context.Context, now time.Time) (string, error) {
	if s.Dir == "" || s.Backend == BackendMemory {
		return "", ErrNoDataDir
	}
	b, ok, err := s.kv.Get(ctx, DataKey)
	if err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}
	if !ok || strings.TrimSpace(string(b)) == "" {
		return "", nil
	}
	path := filepath.Join(s.Dir, backupDirName, backupPrefix+now.UTC().Format("20060102-150405.000")+backupExt)
	if err := writeFileAtomic(path, b); err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}
	s.log.Info().Str("file", path).Int("bytes", len(b)).Msg("document backed up")
	return path, nil
}

// Backups lists backup files, oldest first.
func (s *Store) Backups() ([]string, error) {
	if s.Dir == "" {
		return nil, ErrNoDataDir
	}
	dir := filepath.Join(s.Dir, backupDirName)
	ents, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var out []string
	for _, e := range ents {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, backupPrefix) || filepath.Ext(name) != backupExt {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}
	sort.Strings(out)
	return out, nil
}
