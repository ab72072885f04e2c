// Package memdb opens an in-memory SQLite database shaped like the postgres schema,
// so repositories can be exercised without a running server.
package memdb

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
	"todolist/infras/postgres"
)

// Schema mirrors migrations/postgres with SQLite types.
const Schema = `
CREATE TABLE users (
	id          TEXT PRIMARY KEY,
	username    TEXT NOT NULL UNIQUE,
	email       TEXT UNIQUE,
	password    TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL,
	modified_at TIMESTAMP NOT NULL,
	created_by  TEXT NOT NULL DEFAULT '',
	modified_by TEXT NOT NULL DEFAULT ''
);

CREATE TABLE todos (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	checked     BOOLEAN NOT NULL DEFAULT FALSE,
	user_id     TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	created_at  TIMESTAMP NOT NULL,
	modified_at TIMESTAMP NOT NULL,
	created_by  TEXT NOT NULL DEFAULT '',
	modified_by TEXT NOT NULL DEFAULT ''
);

CREATE TABLE sub_todos (
	id          TEXT PRIMARY KEY,
	todo_id     TEXT NOT NULL REFERENCES todos (id) ON DELETE CASCADE,
	title       TEXT NOT NULL,
	checked     BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMP NOT NULL,
	modified_at TIMESTAMP NOT NULL,
	created_by  TEXT NOT NULL DEFAULT '',
	modified_by TEXT NOT NULL DEFAULT ''
);
`

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// New returns a Connection whose read and write pools share one in-memory database.
// It is closed when the test completes.
func New(t testing.TB) *postgres.Connection {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening sqlite db: %v", err)
	}

	// every pooled connection to :memory: would otherwise see its own empty database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("enabling foreign keys: %v", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("creating schema: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("closing sqlite db: %v", err)
		}
	})

	return &postgres.Connection{Read: db, Write: db}
}
