package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/log"
	"github.com/named-data/ndnx/std/ndn"
)

// BadgerStore keeps ContentObjects in a badger database.
// Keys are the concatenated component encodings of the name,
// so every name under a prefix shares the prefix's key as a byte prefix.
type BadgerStore struct {
	db *badger.DB
	tx *badger.Txn
}

func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(badgerLogger{})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) String() string {
	return "badger-store"
}

func (s *BadgerStore) Close() error {
	if s.tx != nil {
		return fmt.Errorf("Close() called within a write transaction")
	}
	return s.db.Close()
}

func (s *BadgerStore) Get(name enc.Name, prefix bool) (wire []byte, err error) {
	if s.tx != nil {
		panic("Get() called within a write transaction")
	}

	key := nameKey(name)
	err = s.db.View(func(txn *badger.Txn) error {
		// Exact match
		if !prefix {
			item, err := txn.Get(key)
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			} else if err != nil {
				return err
			}
			wire, err = item.ValueCopy(nil)
			return err
		}

		// Prefix match, greatest key first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		it.Seek(prefixEnd(key))
		if !it.ValidForPrefix(key) {
			return nil
		}

		wire, err = it.Item().ValueCopy(nil)
		return err
	})

	return
}

func (s *BadgerStore) Scan(prefix enc.Name, reverse bool, f func(wire []byte) bool) error {
	if s.tx != nil {
		panic("Scan() called within a write transaction")
	}

	key := nameKey(prefix)
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = reverse
		opts.Prefix = key
		it := txn.NewIterator(opts)
		defer it.Close()

		start := key
		if reverse {
			start = prefixEnd(key)
		}
		for it.Seek(start); it.ValidForPrefix(key); it.Next() {
			wire, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			if !f(wire) {
				return nil
			}
		}
		return nil
	})
}

func (s *BadgerStore) Put(name enc.Name, wire []byte) error {
	key := nameKey(name)
	return s.update(func(txn *badger.Txn) error {
		return txn.Set(key, wire)
	})
}

func (s *BadgerStore) Remove(name enc.Name) error {
	key := nameKey(name)
	return s.update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (s *BadgerStore) RemovePrefix(prefix enc.Name) error {
	keyPfx := nameKey(prefix)

	return s.update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // keys only
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(keyPfx); it.ValidForPrefix(keyPfx); it.Next() {
			key := it.Item().KeyCopy(nil)
			if err := txn.Delete(key); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *BadgerStore) Begin() (ndn.Store, error) {
	if s.tx != nil {
		panic("Begin() called within a write transaction")
	}
	tx := s.db.NewTransaction(true)
	return &BadgerStore{db: s.db, tx: tx}, nil
}

func (s *BadgerStore) Commit() error {
	if s.tx == nil {
		panic("Commit() called without a write transaction")
	}
	return s.tx.Commit()
}

func (s *BadgerStore) Rollback() error {
	if s.tx == nil {
		panic("Rollback() called without a write transaction")
	}
	s.tx.Discard()
	return nil
}

func (s *BadgerStore) update(f func(tx *badger.Txn) error) error {
	if s.tx != nil {
		return f(s.tx)
	}
	return s.db.Update(f)
}

func nameKey(name enc.Name) []byte {
	return name.BytesInner()
}

// prefixEnd returns a key greater than every key under prefix.
// Component encodings never start with 0xFF.
func prefixEnd(prefix []byte) []byte {
	return append(append([]byte{}, prefix...), 0xFF)
}

// badgerLogger forwards badger's own messages to the default logger.
type badgerLogger struct{}

func (badgerLogger) String() string {
	return "badger"
}

func (l badgerLogger) Errorf(f string, v ...any) {
	log.Error(l, strings.TrimSpace(fmt.Sprintf(f, v...)))
}

func (l badgerLogger) Warningf(f string, v ...any) {
	log.Warn(l, strings.TrimSpace(fmt.Sprintf(f, v...)))
}

func (l badgerLogger) Infof(f string, v ...any) {
	log.Debug(l, strings.TrimSpace(fmt.Sprintf(f, v...)))
}

func (l badgerLogger) Debugf(f string, v ...any) {
	log.Trace(l, strings.TrimSpace(fmt.Sprintf(f, v...)))
}
