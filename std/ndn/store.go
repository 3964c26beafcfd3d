package ndn

import enc "github.com/named-data/ndnx/std/encoding"

// Store keeps encoded ContentObjects by name.
type Store interface {
	// Get returns a ContentObject wire matching the given name
	// prefix = return the lexicographically last wire under the given prefix
	// A missing object is (nil, nil).
	Get(name enc.Name, prefix bool) ([]byte, error)

	// Scan calls f with every wire under prefix in key order, or in reverse
	// key order, until f returns false. f must not use the store.
	Scan(prefix enc.Name, reverse bool, f func(wire []byte) bool) error

	// Put inserts a ContentObject wire into the store
	Put(name enc.Name, wire []byte) error

	// Remove removes a ContentObject wire from the store
	Remove(name enc.Name) error
	// RemovePrefix remove all wires under a prefix
	RemovePrefix(prefix enc.Name) error

	// Begin starts a write transaction (for put only)
	// we support these primarily for performance rather than correctness
	// do not rely on atomicity of transactions as far as possible
	Begin() (Store, error)
	// Commit commits a write transaction
	Commit() error
	// Rollback discards a write transaction
	Rollback() error

	// Close releases the resources of the store.
	Close() error
}
