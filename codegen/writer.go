package codegen

import (
	"fmt"
	"os"
	"path/filepath"
)

// WritePackage materializes files (as produced by Generate) under dir,
// creating it if necessary. This is the ambient "write to disk" glue the
// CLI driver needs; Generate's own contract stays pure in-memory so it
// stays easy to test.
func WritePackage(dir string, files map[string][]byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("codegen: creating %s: %w", dir, err)
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf("codegen: writing %s: %w", path, err)
		}
	}
	return nil
}
