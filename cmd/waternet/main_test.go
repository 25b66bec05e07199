package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeASCII(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun_TextReport(t *testing.T) {
	dir := t.TempDir()
	path := writeASCII(t, dir, "2015.asc", "ncols 3\nnrows 3\nxllcorner 0\nyllcorner 0\ncellsize 30\n0 0 0\n0 0 0\n0 0 0\n")

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-log-level", "error", path}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	want := "Number of Edges: 12\n" +
		"Largest Component Size: 9\n" +
		"Number of Nodes: 9\n" +
		"Average Number of Node Connections: 2.67\n" +
		"Number of Components: 1\n" +
		"Connectivity Metric: -28.11\n"
	assert.Equal(t, want, out.String())
}

func TestRun_JSONAndHistory(t *testing.T) {
	dir := t.TempDir()
	a := writeASCII(t, dir, "a.asc", "ncols 2\nnrows 2\n0 1\n1 0\n")
	b := writeASCII(t, dir, "b.asc", "ncols 1\nnrows 1\n0\n")
	db := filepath.Join(dir, "hist", "runs.db")

	var out, errOut bytes.Buffer
	code := run(context.Background(),
		[]string{"-format", "json", "-history", db, "-log-level", "error", "checker=" + a, b},
		&out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "checker", entries[0]["name"])
	assert.EqualValues(t, 2, entries[0]["num_components"])
	assert.Equal(t, "b", entries[1]["name"])
	assert.EqualValues(t, -1, entries[1]["connectivity"])

	out.Reset()
	code = run(context.Background(),
		[]string{"-list-history", "-history", db, "-format", "table", "-log-level", "error"},
		&out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "checker")
	assert.Contains(t, out.String(), "b")
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	assert.Equal(t, 2, run(context.Background(), []string{"-log-level", "error"}, &out, &errOut))
	assert.Equal(t, 1, run(context.Background(), []string{"-label-conn", "6", "x.asc"}, &out, &errOut))
	assert.Equal(t, 1, run(context.Background(), []string{"-log-level", "error", filepath.Join(dir, "missing.asc")}, &out, &errOut))
	assert.Equal(t, 1, run(context.Background(), []string{"-list-history"}, &out, &errOut))
	assert.Empty(t, out.String())
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "waternet.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("water_value = 1\nformat = \"table\"\nlog_level = \"error\"\n"), 0o644))
	path := writeASCII(t, dir, "ones.asc", "ncols 2\nnrows 1\n1 1\n")

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-config", cfg, path}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "ones")
}

func TestRun_EmptyRasterWithLabelsDir(t *testing.T) {
	dir := t.TempDir()
	path := writeASCII(t, dir, "empty.asc", "ncols 0\nnrows 0\n")

	var out, errOut bytes.Buffer
	code := run(context.Background(),
		[]string{"-labels-dir", filepath.Join(dir, "labels"), "-log-level", "error", path}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "Number of Nodes: 0\n")
	assert.Contains(t, out.String(), "Connectivity Metric: 0.00\n")
}

func TestRun_DuplicateStems(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "b"), 0o755))
	a := writeASCII(t, dir, "a/2015.asc", "ncols 1\nnrows 1\n0\n")
	b := writeASCII(t, dir, "b/2015.asc", "ncols 1\nnrows 1\n0\n")

	var out, errOut bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{"-log-level", "error", a, b}, &out, &errOut))
	assert.Empty(t, out.String())

	code := run(context.Background(), []string{"-log-level", "error", a, "2015b=" + b}, &out, &errOut)
	assert.Equal(t, 0, code, errOut.String())
}
