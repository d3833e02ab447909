package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), bytes.Repeat([]byte("x"), 10), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.mp4"), bytes.Repeat([]byte("x"), 50), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "c.py"), bytes.Repeat([]byte("x"), 25), 0o644))
	return dir
}

func TestReportCmd_JSON(t *testing.T) {
	dir := writeTree(t)

	root := New("test").newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"report", dir, "--output", "json"})

	require.NoError(t, root.Execute())

	var r struct {
		Root           string           `json:"root"`
		TotalSize      int64            `json:"total_size"`
		FileCount      int64            `json:"file_count"`
		DirCount       int64            `json:"dir_count"`
		CategoryTotals map[string]int64 `json:"category_totals"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	assert.Equal(t, dir, r.Root)
	assert.Equal(t, int64(85), r.TotalSize)
	assert.Equal(t, int64(3), r.FileCount)
	assert.Equal(t, int64(2), r.DirCount)
	assert.Equal(t, int64(50), r.CategoryTotals["video"])
	assert.Equal(t, int64(25), r.CategoryTotals["code"])
	assert.Equal(t, int64(10), r.CategoryTotals["document"])
}

func TestReportCmd_Table(t *testing.T) {
	dir := writeTree(t)

	root := New("test").newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"report", dir})

	require.NoError(t, root.Execute())

	out := buf.String()
	assert.Contains(t, out, "Scanned:")
	assert.Contains(t, out, "1) video:")
	assert.Contains(t, out, "Total files:")
	assert.Contains(t, out, "(85 bytes)")
}

func TestReportCmd_DepthLimit(t *testing.T) {
	dir := writeTree(t)

	root := New("test").newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"report", dir, "--output", "json", "--depth", "0"})

	require.NoError(t, root.Execute())

	var r struct {
		TotalSize int64 `json:"total_size"`
		FileCount int64 `json:"file_count"`
		DirCount  int64 `json:"dir_count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	assert.Equal(t, int64(60), r.TotalSize, "sub is below the bound, so c.py stays out")
	assert.Equal(t, int64(2), r.FileCount)
	assert.Equal(t, int64(1), r.DirCount)
}

func TestReportCmd_InvalidOutput(t *testing.T) {
	root := New("test").newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"report", t.TempDir(), "--output", "xml"})

	err := root.Execute()

	assert.ErrorContains(t, err, "invalid output format")
}

func TestReportCmd_MissingDirectory(t *testing.T) {
	root := New("test").newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"report", filepath.Join(t.TempDir(), "nope")})

	err := root.Execute()

	assert.ErrorContains(t, err, "not a directory")
}
