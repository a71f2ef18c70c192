package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	files := []GeneratedFile{
		{PkgPath: "example.com/a", Dir: filepath.Join(dir, "a"), Filename: "adt_gen.go", Content: []byte("package a\n")},
		{PkgPath: "example.com/b", Dir: filepath.Join(dir, "b"), Filename: "adt_gen.go", Content: []byte("package b\n")},
	}

	written, err := WriteFiles(files)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a", "adt_gen.go"), filepath.Join(dir, "b", "adt_gen.go")}, written)

	content, err := os.ReadFile(filepath.Join(dir, "b", "adt_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package b\n", string(content))

	written, err = WriteFiles(files)
	require.NoError(t, err)
	assert.Empty(t, written, "unchanged files are not rewritten")

	files[0].Content = []byte("package a\n\nvar X int\n")
	written, err = WriteFiles(files)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a", "adt_gen.go")}, written)
}

func TestWriteFiles_NoDir(t *testing.T) {
	_, err := WriteFiles([]GeneratedFile{{PkgPath: "example.com/mem", Filename: "adt_gen.go"}})
	assert.Error(t, err)
}

func TestRemoveStale(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "adt_gen.go"), []byte("package x\n"), 0o644))

	removed, err := RemoveStale(dir, "adt_gen.go")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = RemoveStale(dir, "adt_gen.go")
	require.NoError(t, err)
	assert.False(t, removed)
}
