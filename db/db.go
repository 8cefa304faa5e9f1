package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

const schema = `
CREATE TABLE IF NOT EXISTS stories (
	id BIGINT PRIMARY KEY,
	title TEXT NOT NULL,
	url TEXT NOT NULL,
	time BIGINT NOT NULL,
	text TEXT,
	summary TEXT,
	image TEXT,
	score BIGINT NOT NULL
)`

// Open connects to the store named by url and ensures the schema exists.
// A postgres:// or postgresql:// URL selects the Postgres driver; anything
// else is treated as an SQLite file path (":memory:" included).
func Open(url string) (*sql.DB, error) {
	driver := "sqlite"
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		driver = "postgres"
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if driver == "postgres" {
		conn.SetMaxOpenConns(25)
		conn.SetMaxIdleConns(25)
		conn.SetConnMaxLifetime(5 * time.Minute)
	} else {
		// SQLite has a single writer; one pooled connection also keeps
		// :memory: databases from splitting across connections.
		conn.SetMaxOpenConns(1)
		if _, err := conn.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("set wal mode: %w", err)
		}
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return conn, nil
}

func Connect(url string) error {
	var err error
	DB, err = Open(url)
	return err
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
