package store

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore runs the behaviour every backend shares.
func testStore(t *testing.T, s Store) {
	t.Helper()

	_, err := s.Get(LevelKey)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(LevelKey, "warn"))
	got, err := s.Get(LevelKey)
	require.NoError(t, err)
	assert.Equal(t, "warn", got)

	require.NoError(t, s.Set(LevelKey, "error"))
	got, err = s.Get(LevelKey)
	require.NoError(t, err)
	assert.Equal(t, "error", got)

	require.NoError(t, s.Delete(LevelKey))
	_, err = s.Get(LevelKey)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.Close())
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestLevelDBInMemory(t *testing.T) {
	s, err := NewInMemoryLevelDB()
	require.NoError(t, err)
	testStore(t, s)
}

func TestLevelDBOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels")

	s, err := NewLevelDB(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(LevelKey, "info"))
	require.NoError(t, s.Close())

	s, err = NewLevelDB(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(LevelKey)
	require.NoError(t, err)
	assert.Equal(t, "info", got)
}

func TestFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s, err := NewFile(fsys, "/var/prefixlog")
	require.NoError(t, err)
	testStore(t, s)

	require.NoError(t, afero.WriteFile(fsys, "/var/prefixlog/debug", []byte("OFF\r\n"), 0o640))
	got, err := s.Get(LevelKey)
	require.NoError(t, err)
	assert.Equal(t, "OFF", got)

	_, err = s.Get("../etc/passwd")
	assert.Error(t, err)
	assert.NoError(t, s.Delete("missing"))
}

func TestEnv(t *testing.T) {
	t.Setenv("PREFIXLOG_STORE_DEBUG", "")
	testStore(t, NewEnv())

	t.Setenv("PREFIXLOG_STORE_DEBUG", "warn")
	got, err := NewEnv().Get(LevelKey)
	require.NoError(t, err)
	assert.Equal(t, "warn", got)
}

func TestOpen(t *testing.T) {
	for _, backend := range []string{"", BackendMemory, BackendLevelDB, BackendEnv} {
		s, err := Open(backend, "")
		require.NoError(t, err, backend)
		assert.NoError(t, s.Close())
	}

	s, err := Open(BackendFile, t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)

	_, err = Open("redis", "")
	assert.EqualError(t, err, `unknown store backend "redis"`)
}

func TestGlobal(t *testing.T) {
	m := NewMemory()
	prev := SetGlobal(m)
	defer SetGlobal(prev)

	assert.Same(t, m, Global())
}
