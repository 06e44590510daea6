// Package testutil provides shared test helpers for setting up draft and site directories.
package testutil

import (
	"testing"

	"github.com/starford/ansuz/internal/storage"
)

// TestDir creates a temporary directory with a storage.Provider rooted in it.
func TestDir(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}
