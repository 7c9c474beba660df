package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()

	cfg := viper.New()
	cfg.Set("preferences.path", path)

	store, err := NewStore(cfg)
	require.NoError(t, err)
	return store
}

func TestStoreGetBoolMissingFile(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "prefs.toml"))

	assert.False(t, store.GetBool("dark_theme"))
}

func TestStoreSetBoolRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	store := newTestStore(t, path)

	require.NoError(t, store.SetBool("dark_theme", true))
	assert.True(t, store.GetBool("dark_theme"))

	require.NoError(t, store.SetBool("dark_theme", false))
	assert.False(t, store.GetBool("dark_theme"))
}

func TestStoreValueSurvivesReconstruction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	first := newTestStore(t, path)
	require.NoError(t, first.SetBool("dark_theme", true))

	second := newTestStore(t, path)
	assert.True(t, second.GetBool("dark_theme"), "a fresh store against the same file sees the persisted value")
}

func TestStoreSetBoolKeepsOtherFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	store := newTestStore(t, path)

	require.NoError(t, store.SetBool("dark_theme", true))
	require.NoError(t, store.SetBool("compact_lists", true))

	assert.True(t, store.GetBool("dark_theme"))
	assert.True(t, store.GetBool("compact_lists"))
}

func TestStoreCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.toml")
	store := newTestStore(t, path)

	require.NoError(t, store.SetBool("dark_theme", true))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStoreWriteIsAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.toml")
	store := newTestStore(t, path)

	require.NoError(t, store.SetBool("dark_theme", true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	assert.Equal(t, "prefs.toml", entries[0].Name())
}

func TestStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o600))

	store := newTestStore(t, path)
	assert.False(t, store.GetBool("dark_theme"), "unreadable file reads as all-false")
	assert.Error(t, store.SetBool("dark_theme", true), "writes refuse to clobber a corrupt file")
}
