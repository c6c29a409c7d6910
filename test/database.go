package test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpDatabase returns the path of a fresh SQLite database file in a
// directory that is removed when the test finishes.
func TmpDatabase(t *testing.T) string {
	return filepath.Join(t.TempDir(), fmt.Sprintf("moneywise-%s.db", uuid.New()))
}
