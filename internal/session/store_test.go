package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session_token")
	store := NewFileStore(path)

	// Absent token reads as empty, not as an error.
	raw, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, raw)

	require.NoError(t, store.Write("tok-abc"))

	raw, err = store.Read()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", raw)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	require.NoError(t, store.Clear())
	raw, err = store.Read()
	require.NoError(t, err)
	assert.Empty(t, raw)

	// Clearing an already empty store succeeds.
	require.NoError(t, store.Clear())
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session_token")
	require.NoError(t, os.WriteFile(path, []byte("tok-abc\n"), 0600))

	raw, err := NewFileStore(path).Read()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", raw)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	raw, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, raw)

	require.NoError(t, store.Write("tok"))
	raw, err = store.Read()
	require.NoError(t, err)
	assert.Equal(t, "tok", raw)

	require.NoError(t, store.Clear())
	raw, err = store.Read()
	require.NoError(t, err)
	assert.Empty(t, raw)
}
