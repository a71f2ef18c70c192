package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file into its package directory and
// returns the paths that changed. Files whose content is already on disk are
// left untouched.
func WriteFiles(files []GeneratedFile) ([]string, error) {
	var written []string

	for _, file := range files {
		if file.Dir == "" {
			return written, fmt.Errorf("package %s has no directory to write %s into", file.PkgPath, file.Filename)
		}

		outputPath := file.Path()

		current, err := os.ReadFile(outputPath)
		if err == nil && bytes.Equal(current, file.Content) {
			continue
		}

		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return written, fmt.Errorf("reading %s: %w", outputPath, err)
		}

		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return written, fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return written, fmt.Errorf("writing file %s: %w", outputPath, err)
		}

		written = append(written, outputPath)
	}

	return written, nil
}

// RemoveStale deletes a previously generated file from dir when a run no
// longer produces one for that package. It reports whether a file was removed.
func RemoveStale(dir, filename string) (bool, error) {
	p := filepath.Join(dir, filename)

	err := os.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("removing stale %s: %w", p, err)
	}

	return true, nil
}
