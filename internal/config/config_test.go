package config

import (
	"os"
	"path/filepath"
	"testing"

	"shiftclip/internal/format"
	"shiftclip/internal/store"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SHIFTCLIP_CONFIG_DIR", dir)
	for _, k := range []string{"DATA_DIR", "BACKEND", "FORMAT", "PRETTY", "VERBOSITY", "THEME", "SEARCH_LIMIT", "TOAST_SECONDS"} {
		t.Setenv("SHIFTCLIP_"+k, "")
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, store.BackendSQLite, cfg.Backend)
	assert.Equal(t, format.Auto, cfg.Format)
	assert.Equal(t, store.ThemeDark, cfg.Theme)
	assert.Equal(t, 5, cfg.SearchLimit)
	assert.Equal(t, 5, cfg.ToastSeconds)
	assert.Equal(t, store.DefaultDataDir(), cfg.DataDir)
	assert.Empty(t, cfg.File)
}

func TestLoad_FileThenEnvThenFlag(t *testing.T) {
	dir := isolate(t)
	yml := "backend: file\ntheme: light\nsearch_limit: 3\ndata_dir: /from/file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yml), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, store.BackendFile, cfg.Backend)
	assert.Equal(t, store.ThemeLight, cfg.Theme)
	assert.Equal(t, 3, cfg.SearchLimit)
	assert.Equal(t, "/from/file", cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.File)

	t.Setenv("SHIFTCLIP_DATA_DIR", "/from/env")
	cfg, err = Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.DataDir)

	v := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("dir", "", "")
	fs.String("backend", "", "")
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--dir", "/from/flag", "--backend", "memory"}))
	cfg, err = Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.DataDir)
	assert.Equal(t, store.BackendMemory, cfg.Backend)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(New(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("SHIFTCLIP_BACKEND", "postgres")
	_, err = Load(New(), "")
	assert.Error(t, err)

	t.Setenv("SHIFTCLIP_BACKEND", "")
	t.Setenv("SHIFTCLIP_THEME", "sepia")
	_, err = Load(New(), "")
	assert.Error(t, err)
}
