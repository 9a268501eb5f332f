package migration

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemapi/internal/database"
)

func TestEnsureMigrated(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (sqlmock.Sqlmock, func() error, *bytes.Buffer) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { sqlDB.Close() })

		gdb, err := database.NewGorm(sqlDB, false)
		require.NoError(t, err)

		var buf bytes.Buffer
		log := zerolog.New(&buf)
		run := func() error { return EnsureMigrated(ctx, gdb, log, "localhost") }
		return mock, run, &buf
	}

	t.Run("schema exists", func(t *testing.T) {
		mock, run, buf := setup(t)
		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		require.NoError(t, run())
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.Contains(t, buf.String(), "db_migration_skip")
	})

	t.Run("creates schema when absent", func(t *testing.T) {
		mock, run, buf := setup(t)
		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS items").
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, run())
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.Contains(t, buf.String(), "db_migration_success")
	})

	t.Run("sentinel query fails", func(t *testing.T) {
		mock, run, _ := setup(t)
		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery)).
			WillReturnError(errors.New("connection refused"))

		err := run()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check sentinel table")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("step fails", func(t *testing.T) {
		mock, run, buf := setup(t)
		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS items").
			WillReturnError(errors.New("permission denied"))

		err := run()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "migration step create_table_items failed")
		assert.Contains(t, buf.String(), `"migration_step":"create_table_items"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
