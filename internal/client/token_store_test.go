package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore_LoadMissing(t *testing.T) {
	s := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))

	token, err := s.Load()

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileTokenStore_SaveLoadDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	s := NewFileTokenStore(path)

	require.NoError(t, s.Save("tok-1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, s.Save("tok-2"))
	token, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)

	require.NoError(t, s.Delete())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileTokenStore_DeleteMissing(t *testing.T) {
	s := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))

	assert.NoError(t, s.Delete())
}

func TestFileTokenStore_LoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("tok\n"), 0o600))

	token, err := NewFileTokenStore(path).Load()

	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}
