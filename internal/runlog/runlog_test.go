package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendCreatesFileWithHeader(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{NewEntry("generate", "customers=100 transactions=500")}))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "run-log.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Header))
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	first := NewEntry("generate", "seed=42")
	require.NoError(t, Append(dir, []Entry{first}))
	require.NoError(t, Append(dir, []Entry{NewEntry("analyze", "customers=100")}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "generate", entries[0].Command)
	assert.Equal(t, "seed=42", entries[0].Details)
	assert.Equal(t, first.RunID, entries[0].RunID)
	assert.Equal(t, "analyze", entries[1].Command)
}

func TestNewEntryUniqueRunIDs(t *testing.T) {
	a := NewEntry("analyze", "")
	b := NewEntry("analyze", "")
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.NotEmpty(t, a.RunID)
}

func TestReadMissingLog(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMarshalRoundTrip(t *testing.T) {
	e := Entry{
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		RunID:     "b2c3a1d4-0000-0000-0000-000000000000",
		Command:   "serve",
		Details:   "addr=:8080",
	}

	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e, got)
}
