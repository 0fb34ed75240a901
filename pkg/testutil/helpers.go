// Package testutil provides common utility functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/terzaghi-bearing/pkg/terzaghi"
)

// FindFactorRow finds the row for angle in a factor table.
// Returns a pointer to the row if found, nil otherwise.
func FindFactorRow(table []terzaghi.AngleFactors, angle int) *terzaghi.AngleFactors {
	for i := range table {
		if table[i].Angle == angle {
			return &table[i]
		}
	}
	return nil
}

// WriteConfig writes contents to config.yaml in dir and returns its path.
func WriteConfig(t testing.TB, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write config %s: %v", path, err)
	}
	return path
}
