package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/named-data/ndnx/std/ndn"
)

// Names of the store back ends accepted by Open.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendSqlite = "sqlite"
)

// Open creates the store of the given back end. For badger, path is a
// directory; for sqlite, a database file. The memory back end ignores path.
func Open(backend string, path string) (ndn.Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendBadger:
		if err := os.MkdirAll(path, 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
		return NewBadgerStore(path)
	case BackendSqlite:
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
		return NewSqliteStore(path)
	default:
		return nil, ndn.ErrNotSupported{Item: "store backend " + backend}
	}
}
