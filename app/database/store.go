package database

import (
	"database/sql"
	"fmt"
)

// Store wraps the database handle. Every query in this package hangs off
// Store so callers receive an explicitly constructed dependency instead of
// reaching for a package global.
type Store struct {
	db *sql.DB
}

// NewStore returns a Store backed by db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}
