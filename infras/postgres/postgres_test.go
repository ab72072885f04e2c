package postgres_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"todolist/infras/postgres"
	"todolist/infras/postgres/memdb"
)

func insertUser(tx *sqlx.Tx, id, username string) error {
	now := time.Now().UTC()
	_, err := tx.Exec(
		"INSERT INTO users (id, username, password, created_at, modified_at) VALUES (?, ?, 'hash', ?, ?)",
		id, username, now, now,
	)

	return err
}

func countUsers(t *testing.T, conn *postgres.Connection) int {
	t.Helper()

	var count int
	require.NoError(t, conn.Read.Get(&count, "SELECT COUNT(*) FROM users"))

	return count
}

func TestWithinTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits", func(t *testing.T) {
		conn := memdb.New(t)
		transactor := postgres.NewTransactor(conn)

		err := transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
			return insertUser(tx, "u1", "jane")
		})

		require.NoError(t, err)
		assert.Equal(t, 1, countUsers(t, conn))
	})

	t.Run("rolls back on error", func(t *testing.T) {
		conn := memdb.New(t)
		transactor := postgres.NewTransactor(conn)

		err := transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
			require.NoError(t, insertUser(tx, "u1", "jane"))

			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, countUsers(t, conn))
	})

	t.Run("rolls back and re-panics", func(t *testing.T) {
		conn := memdb.New(t)
		transactor := postgres.NewTransactor(conn)

		assert.PanicsWithValue(t, "boom", func() {
			_ = transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
				require.NoError(t, insertUser(tx, "u1", "jane"))

				panic("boom")
			})
		})

		// the pool holds one connection, so a leaked tx would block here
		assert.Zero(t, countUsers(t, conn))
	})
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		expected string
	}{
		{
			name:     "plain credentials",
			username: "todo",
			password: "secret",
			expected: "postgres://todo:secret@db:5432/todolist?sslmode=disable",
		},
		{
			name:     "reserved characters are escaped",
			username: "todo",
			password: "p@ss/w:rd",
			expected: "postgres://todo:p%40ss%2Fw%3Ard@db:5432/todolist?sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := postgres.DSN(tt.username, tt.password, "db", "5432", "todolist", url.Values{"sslmode": {"disable"}})

			assert.Equal(t, tt.expected, dsn)

			parsed, err := url.Parse(dsn)
			require.NoError(t, err)

			password, _ := parsed.User.Password()
			assert.Equal(t, tt.password, password)
		})
	}
}
