package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"openhours-service/internal/pkg/lookup"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const restaurantsCSV = `"Restaurant Name","Hours"
"The Cowfish Sushi Burger Bar","Mon-Sun 11:00 am - 10 pm"
"Morgan St Food Hall","Mon-Sun 11 am - 9:30 pm"
"Beasley's Chicken + Honey","Mon-Fri, Sat 11 am - 12 pm  / Sun 11 am - 10 pm"
"Broken Hours","Someday 9 am - 5 pm"
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "restaurants.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runIndexer(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := getRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestIndexerWritesSnapshotToStdout(t *testing.T) {
	stdout, stderr, err := runIndexer(t, "--csv", writeCSV(t, restaurantsCSV))
	require.NoError(t, err)

	var snapshot lookup.Snapshot
	require.NoError(t, json.Unmarshal([]byte(stdout), &snapshot))
	assert.Equal(t, 3, snapshot.Businesses)

	// Wednesday 2025-05-14 at 21:45
	open := snapshot.Index.OpenAt(time.Date(2025, 5, 14, 21, 45, 0, 0, time.UTC))
	assert.Equal(t, []string{"The Cowfish Sushi Burger Bar"}, open)

	assert.Contains(t, stderr, `skipped "Broken Hours"`)
	assert.Contains(t, stderr, "indexed 3 of 4 businesses")
}

func TestIndexerWritesSnapshotToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "index.json")
	stdout, _, err := runIndexer(t, "-c", writeCSV(t, restaurantsCSV), "-o", out, "--pretty")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")

	var snapshot lookup.Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	assert.Equal(t, lookup.SnapshotVersion, snapshot.Version)

	_, err = os.Stat(out + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestIndexerStrictFailsOnBadRecord(t *testing.T) {
	out := filepath.Join(t.TempDir(), "index.json")
	_, stderr, err := runIndexer(t, "-c", writeCSV(t, restaurantsCSV), "-o", out, "--strict")
	require.Error(t, err)
	assert.Contains(t, stderr, "indexer:")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no index should be written")
}

func TestIndexerMissingFile(t *testing.T) {
	_, _, err := runIndexer(t, "-c", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestIndexerRejectsArguments(t *testing.T) {
	_, _, err := runIndexer(t, "extra")
	assert.Error(t, err)
}
