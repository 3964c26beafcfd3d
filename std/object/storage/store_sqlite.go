package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/ndn"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS objects (
	name BLOB PRIMARY KEY,
	wire BLOB NOT NULL
) WITHOUT ROWID;
`

// SqliteStore keeps ContentObjects in an SQLite table keyed by the same
// name keys as BadgerStore. SQLite compares BLOBs bytewise, so prefix
// lookups are range scans over the primary key.
type SqliteStore struct {
	db *sql.DB
	tx *sql.Tx
}

// NewSqliteStore opens or creates the database file at path.
func NewSqliteStore(path string) (*SqliteStore, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if _, err = db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) String() string {
	return "sqlite-store"
}

func (s *SqliteStore) Close() error {
	if s.tx != nil {
		return fmt.Errorf("Close() called within a write transaction")
	}
	return s.db.Close()
}

func (s *SqliteStore) Get(name enc.Name, prefix bool) ([]byte, error) {
	if s.tx != nil {
		panic("Get() called within a write transaction")
	}

	key := nameKey(name)
	var row *sql.Row
	if prefix {
		row = s.db.QueryRow(
			"SELECT wire FROM objects WHERE name >= ? AND name < ? ORDER BY name DESC LIMIT 1",
			key, prefixEnd(key),
		)
	} else {
		row = s.db.QueryRow("SELECT wire FROM objects WHERE name = ?", key)
	}

	var wire []byte
	if err := row.Scan(&wire); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return wire, nil
}

func (s *SqliteStore) Scan(prefix enc.Name, reverse bool, f func(wire []byte) bool) error {
	if s.tx != nil {
		panic("Scan() called within a write transaction")
	}

	query := "SELECT wire FROM objects WHERE name >= ? AND name < ? ORDER BY name ASC"
	if reverse {
		query = "SELECT wire FROM objects WHERE name >= ? AND name < ? ORDER BY name DESC"
	}
	key := nameKey(prefix)
	rows, err := s.db.Query(query, key, prefixEnd(key))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var wire []byte
		if err := rows.Scan(&wire); err != nil {
			return err
		}
		if !f(wire) {
			return nil
		}
	}
	return rows.Err()
}

func (s *SqliteStore) Put(name enc.Name, wire []byte) error {
	_, err := s.exec("INSERT OR REPLACE INTO objects (name, wire) VALUES (?, ?)", nameKey(name), wire)
	return err
}

func (s *SqliteStore) Remove(name enc.Name) error {
	_, err := s.exec("DELETE FROM objects WHERE name = ?", nameKey(name))
	return err
}

func (s *SqliteStore) RemovePrefix(prefix enc.Name) error {
	key := nameKey(prefix)
	_, err := s.exec("DELETE FROM objects WHERE name >= ? AND name < ?", key, prefixEnd(key))
	return err
}

func (s *SqliteStore) Begin() (ndn.Store, error) {
	if s.tx != nil {
		panic("Begin() called within a write transaction")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	return &SqliteStore{db: s.db, tx: tx}, nil
}

func (s *SqliteStore) Commit() error {
	if s.tx == nil {
		panic("Commit() called without a write transaction")
	}
	return s.tx.Commit()
}

func (s *SqliteStore) Rollback() error {
	if s.tx == nil {
		panic("Rollback() called without a write transaction")
	}
	return s.tx.Rollback()
}

func (s *SqliteStore) exec(query string, args ...any) (sql.Result, error) {
	if s.tx != nil {
		return s.tx.Exec(query, args...)
	}
	return s.db.Exec(query, args...)
}
