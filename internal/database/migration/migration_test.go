package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const checkQuery = "SELECT to_regclass($1) IS NOT NULL"

func newMock(t *testing.T) (sqlmock.Sqlmock, func() error, func(ctx context.Context) error) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	run := func(ctx context.Context) error {
		return EnsureMigrated(ctx, db, zap.NewNop(), "localhost")
	}
	return mock, db.Close, run
}

func TestEnsureMigrated_SkipsWhenSchemaExists(t *testing.T) {
	mock, closeFn, run := newMock(t)
	defer closeFn()

	mock.ExpectQuery(checkQuery).
		WithArgs(sentinelTable).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, run(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_RunsAllSteps(t *testing.T) {
	mock, closeFn, run := newMock(t)
	defer closeFn()

	mock.ExpectQuery(checkQuery).
		WithArgs(sentinelTable).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	for _, step := range steps {
		mock.ExpectExec(step.SQL).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, run(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_StepFailure(t *testing.T) {
	mock, closeFn, run := newMock(t)
	defer closeFn()

	mock.ExpectQuery(checkQuery).
		WithArgs(sentinelTable).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(steps[0].SQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(steps[1].SQL).WillReturnError(errors.New("permission denied"))

	err := run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), steps[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_CheckFailure(t *testing.T) {
	mock, closeFn, run := newMock(t)
	defer closeFn()

	mock.ExpectQuery(checkQuery).
		WithArgs(sentinelTable).
		WillReturnError(errors.New("connection refused"))

	err := run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check sentinel table")
}

func TestSteps_UniqueIndexesPresent(t *testing.T) {
	names := make(map[string]bool, len(steps))
	for _, s := range steps {
		assert.False(t, names[s.Name], "duplicate step %s", s.Name)
		names[s.Name] = true
	}
	assert.True(t, names["create_unique_index_words_word_id"])
	assert.True(t, names["create_unique_index_folder_words_triple"])
}
