package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// sidecarName maps adt_gen.go to _adt_gen.unformatted.go. The leading
// underscore keeps the go tool from compiling it.
func sidecarName(filename string) string {
	return "_" + strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}

// writeDebugUnformatted saves source that go/format rejected next to the
// intended output. Packages loaded from memory have no directory and are
// skipped.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if dir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, sidecarName(filename)), content, filePerm)
}
