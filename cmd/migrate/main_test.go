package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMigrationPart(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("..", "..", "migrations", "0001_client_state.sql"))
	require.NoError(t, err)

	t.Run("Extract Up", func(t *testing.T) {
		up := extractMigrationPart(string(content), "Up")
		assert.Contains(t, up, "CREATE TABLE IF NOT EXISTS client_state")
		assert.Contains(t, up, "value      JSONB NOT NULL")
		assert.NotContains(t, up, "DROP TABLE")
		assert.NotContains(t, up, "-- +migrate Up")
	})

	t.Run("Extract Down", func(t *testing.T) {
		down := extractMigrationPart(string(content), "Down")
		assert.Contains(t, down, "DROP TABLE IF EXISTS client_state")
		assert.NotContains(t, down, "CREATE TABLE")
	})
}

func writeMigration(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunMigrationsUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dir := t.TempDir()
	first := writeMigration(t, dir, "0001_client_state.sql", "-- +migrate Up\nCREATE TABLE client_state (key text);\n-- +migrate Down\nDROP TABLE client_state;")
	second := writeMigration(t, dir, "0002_index.sql", "-- +migrate Up\nCREATE INDEX idx_client_state_updated ON client_state (updated_at);")

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("0001_client_state.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("0002_index.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE INDEX idx_client_state_updated").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("0002_index.sql").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = runMigrationsUp(context.Background(), db, []string{first, second})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsUp_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	file := writeMigration(t, t.TempDir(), "0001_client_state.sql", "-- +migrate Up\nCREATE TABLE client_state (key text);")

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("0001_client_state.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE client_state").
		WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err = runMigrationsUp(context.Background(), db, []string{file})
	assert.ErrorContains(t, err, "migration failed (0001_client_state.sql)")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsDown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	file := writeMigration(t, t.TempDir(), "0001_client_state.sql", "-- +migrate Up\nCREATE TABLE client_state (key text);\n-- +migrate Down\nDROP TABLE client_state;")

	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0001_client_state.sql"))
	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE client_state").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM schema_migrations").
		WithArgs("0001_client_state.sql").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, runMigrationsDown(context.Background(), db, []string{file}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsDown_NothingApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}))

	require.NoError(t, runMigrationsDown(context.Background(), db, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_UnknownMode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = run(context.Background(), db, "sideways", t.TempDir())
	assert.ErrorContains(t, err, "unknown mode: sideways")
}
