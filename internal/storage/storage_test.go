package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ideal-institute/bookstall/internal/colors"
	"github.com/ideal-institute/bookstall/internal/config"
	"github.com/ideal-institute/bookstall/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupState(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("BOOKSTALL_STATE_DIR", filepath.Join(tmp, "state"))
	colors.SetOutput(io.Discard, io.Discard)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	config.Reset()
	config.Load()
	t.Cleanup(config.Reset)
	return filepath.Join(tmp, "state")
}

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	_, ok, err := kv.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("a", "1"))
	require.NoError(t, kv.Set("b", "2"))
	require.NoError(t, kv.Set("a", "3"))

	v, ok, err := kv.Get("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	require.NoError(t, kv.Delete("a"))
	require.NoError(t, kv.Delete("missing"))
	_, ok, err = kv.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)

	v, _, err = kv.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
	assert.NoError(t, kv.Close())
}

func TestMemory(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.toml")
	fs, err := NewFileStorage(path)
	require.NoError(t, err)

	exerciseKV(t, fs)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, `b = ['"]2['"]`, string(data))
	assert.NoDirExists(t, path+".lock")
}

func TestFileStorageRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [toml"), 0600))
	fs, err := NewFileStorage(path)
	require.NoError(t, err)

	_, _, err = fs.Get("a")
	assert.Error(t, err)
}

func TestLockTimesOutWhileHeld(t *testing.T) {
	oldTimeout, oldRetry := lockTimeout, lockRetry
	lockTimeout, lockRetry = 30*time.Millisecond, 5*time.Millisecond
	t.Cleanup(func() { lockTimeout, lockRetry = oldTimeout, oldRetry })

	dir := filepath.Join(t.TempDir(), "held.lock")
	held := NewLock(dir)
	require.NoError(t, held.Acquire())

	err := WithLock(dir, func() error { return nil })
	assert.Error(t, err)

	require.NoError(t, held.Release())
	called := false
	require.NoError(t, WithLock(dir, func() error { called = true; return nil }))
	assert.True(t, called)
}

func TestNewForBackend(t *testing.T) {
	state := setupState(t)

	kv, err := NewForBackend(BackendMemory)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, kv)

	kv, err = NewForBackend(BackendFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(state, sessionTOMLFileName), kv.(*FileStorage).Path())

	kv, err = NewForBackend(" SQLite ")
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Store{}, kv)
	require.NoError(t, kv.Close())
	assert.FileExists(t, filepath.Join(state, sessionDBFileName))

	_, err = NewForBackend("redis")
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	setupState(t)
	t.Setenv("BOOKSTALL_STORAGE_BACKEND", "memory")
	config.Load()

	kv, err := NewFromConfig()
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, kv)
}
