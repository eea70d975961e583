package leads

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "renamed.csv")
	c := filepath.Join(dir, "c.csv")

	require.NoError(t, os.WriteFile(a, []byte("full_name\nAda\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("full_name\nAda\n"), 0o600))
	require.NoError(t, os.WriteFile(c, []byte("full_name\nGrace\n"), 0o600))

	digestA, err := DigestFile(a)
	require.NoError(t, err)
	digestB, err := DigestFile(b)
	require.NoError(t, err)
	digestC, err := DigestFile(c)
	require.NoError(t, err)

	// Same content, same digest, regardless of name.
	assert.Equal(t, digestA, digestB)
	assert.NotEqual(t, digestA, digestC)
	assert.Len(t, digestA, 64)
}

func TestDigestFileMissing(t *testing.T) {
	_, err := DigestFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestLedgerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "imports.json")

	ledger, err := LoadLedger(path)
	require.NoError(t, err)

	_, found := ledger.Lookup("abc123")
	assert.False(t, found)

	record := ImportRecord{
		Digest:     "abc123",
		Filename:   "leads.csv",
		ImportedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Created:    10,
		Duplicates: 2,
	}
	require.NoError(t, ledger.Record(record))

	// A fresh load sees the recorded import.
	reloaded, err := LoadLedger(path)
	require.NoError(t, err)
	got, found := reloaded.Lookup("abc123")
	require.True(t, found)
	assert.Equal(t, "leads.csv", got.Filename)
	assert.Equal(t, 10, got.Created)
}

func TestLoadLedgerCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imports.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := LoadLedger(path)
	require.Error(t, err)
}
