package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOutputFilePath(t *testing.T) {
	base := t.TempDir()
	om := NewOutputManager(base)

	path, err := om.GetOutputFilePath("run-1", "../../officers.xlsx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "run-1", "officers.xlsx"), path)

	info, err := os.Stat(filepath.Join(base, "run-1"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetFileType(t *testing.T) {
	om := NewOutputManager("")
	assert.Equal(t, "xlsx", om.GetFileType("report.XLSX"))
	assert.Equal(t, "jpeg", om.GetFileType("snapshot.jpg"))
	assert.Equal(t, "pdf", om.GetFileType("a.pdf"))
	assert.Equal(t, "unknown", om.GetFileType("notes.txt"))
}

func TestGetFileSize(t *testing.T) {
	om := NewOutputManager(t.TempDir())
	path := filepath.Join(om.BaseOutputDir, "a.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o644))

	size, err := om.GetFileSize(path)
	require.NoError(t, err)
	assert.Equal(t, int64(4), size)
}
