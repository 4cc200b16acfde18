package util

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

const TestDatabaseUrlEnv = "EMAILGENIE_TEST_DATABASE_URL"

func NewDb(connStr string) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	return dbConn, nil
}

// NewTestDb connects to the database named by EMAILGENIE_TEST_DATABASE_URL.
// ok is false when the variable is unset so callers can skip.
func NewTestDb() (db *sql.DB, ok bool, err error) {
	connStr := os.Getenv(TestDatabaseUrlEnv)
	if connStr == "" {
		return nil, false, nil
	}
	db, err = NewDb(connStr)
	if err != nil {
		return nil, true, err
	}
	return db, true, nil
}

func StringPointer(s string) *string {
	return &s
}

// Excerpt returns the first n runes of s.
func Excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
