package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackup_WritesStoredDocument(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	st, err := Open(ctx, dir, BackendFile, zerolog.Nop())
	require.NoError(t, err)
	defer st.Close()

	// Nothing stored yet.
	path, err := st.Backup(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, path)

	db := NewDB()
	db.Tree = sampleTree()
	require.NoError(t, st.Save(ctx, db))

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	path, err = st.Backup(ctx, at)
	require.NoError(t, err)
	assert.Contains(t, path, "shiftclip-20260102-030405.000.json")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	got, err := DecodeTree(b)
	require.NoError(t, err)
	assert.Equal(t, db.Tree.CountNodes(), got.CountNodes())

	list, err := st.Backups()
	require.NoError(t, err)
	assert.Equal(t, []string{path}, list)
}

func TestBackup_MemoryStoreHasNoDir(t *testing.T) {
	st := New(NewMemoryKV(), zerolog.Nop())
	_, err := st.Backup(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrNoDataDir)
}
