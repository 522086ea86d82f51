package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"bagstore/internal/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	t.Cleanup(logger.Replace(zap.NewNop()))

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestMigrationPart(t *testing.T) {
	content := `
-- +migrate Up
CREATE TABLE products (id text);
ALTER TABLE products ADD COLUMN handle text;

-- +migrate Down
DROP TABLE products;
`
	t.Run("Extract Up", func(t *testing.T) {
		up := migrationPart(content, "Up")
		assert.Contains(t, up, "CREATE TABLE products")
		assert.Contains(t, up, "ALTER TABLE products")
		assert.NotContains(t, up, "DROP TABLE products")
		assert.NotContains(t, up, "-- +migrate")
	})

	t.Run("Extract Down", func(t *testing.T) {
		down := migrationPart(content, "Down")
		assert.Contains(t, down, "DROP TABLE products")
		assert.NotContains(t, down, "CREATE TABLE products")
	})

	t.Run("Down before Up", func(t *testing.T) {
		reversed := "-- +migrate Down\nDROP TABLE x;\n-- +migrate Up\nCREATE TABLE x (id int);\n"
		assert.Equal(t, "CREATE TABLE x (id int);\n", migrationPart(reversed, "Up"))
		assert.Equal(t, "DROP TABLE x;\n", migrationPart(reversed, "Down"))
	})

	t.Run("Catalog migration", func(t *testing.T) {
		content, err := os.ReadFile("../../migrations/0001_catalog.sql")
		require.NoError(t, err)

		up := migrationPart(string(content), "Up")
		assert.Contains(t, up, "CREATE TABLE IF NOT EXISTS products")
		assert.Contains(t, up, "CREATE TABLE IF NOT EXISTS collections")
		assert.Contains(t, migrationPart(string(content), "Down"), "DROP TABLE IF EXISTS products")
	})
}

func TestMigrateUp(t *testing.T) {
	db, mock := newMock(t)

	tmpDir := t.TempDir()
	applied := filepath.Join(tmpDir, "0001_init.sql")
	pending := filepath.Join(tmpDir, "0002_more.sql")
	require.NoError(t, os.WriteFile(applied, []byte("-- +migrate Up\nCREATE TABLE a (id int);"), 0o644))
	require.NoError(t, os.WriteFile(pending, []byte("-- +migrate Up\nCREATE TABLE b (id int);\n-- +migrate Down\nDROP TABLE b;"), 0o644))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("0001_init.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("0002_more.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("0002_more.sql").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, migrateUp(context.Background(), db, []string{applied, pending}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_RollsBackOnFailure(t *testing.T) {
	db, mock := newMock(t)

	file := filepath.Join(t.TempDir(), "0001_bad.sql")
	require.NoError(t, os.WriteFile(file, []byte("-- +migrate Up\nCREATE TABLE broken (;"), 0o644))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("0001_bad.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE broken").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := migrateUp(context.Background(), db, []string{file})
	assert.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateDown(t *testing.T) {
	t.Run("Rolls back latest", func(t *testing.T) {
		db, mock := newMock(t)

		file := filepath.Join(t.TempDir(), "0001_init.sql")
		require.NoError(t, os.WriteFile(file, []byte("-- +migrate Up\nCREATE TABLE a (id int);\n-- +migrate Down\nDROP TABLE a;"), 0o644))

		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0001_init.sql"))
		mock.ExpectBegin()
		mock.ExpectExec("DROP TABLE a").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM schema_migrations").
			WithArgs("0001_init.sql").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, migrateDown(context.Background(), db, []string{file}))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing applied", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(sqlmock.NewRows([]string{"version"}))

		require.NoError(t, migrateDown(context.Background(), db, nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing file", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0009_gone.sql"))

		err := migrateDown(context.Background(), db, nil)
		assert.ErrorContains(t, err, "0009_gone.sql")
	})
}

func TestRun_UnknownMode(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))

	err := run(context.Background(), db, "sideways", t.TempDir())
	assert.ErrorContains(t, err, "unknown mode: sideways")
}
