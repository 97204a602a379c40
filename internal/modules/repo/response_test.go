package repo

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseRepo_Write(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	r := NewResponseRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO .*project_responses`).
		WillReturnRows(sqlmock.NewRows([]string{"response_id"}).AddRow(int64(5)))
	mock.ExpectCommit()

	response, err := r.Write(context.Background(), 1, 7, nil)

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, int64(5), response.ResponseID)
	assert.Equal(t, int64(1), response.ProjectID)
	assert.Equal(t, int64(7), response.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A second response for the same (user, project) trips the unique
// index; the postgres unique violation must come back as the
// ErrDuplicateResponse sentinel and the insert must roll back.
func TestResponseRepo_Write_DuplicateMapsToSentinel(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	r := NewResponseRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO .*project_responses`).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			Message:        "duplicate key value violates unique constraint",
			ConstraintName: "uq_project_response",
		})
	mock.ExpectRollback()

	response, err := r.Write(context.Background(), 1, 7, nil)

	require.ErrorIs(t, err, ErrDuplicateResponse)
	assert.Nil(t, response)
	assert.NoError(t, mock.ExpectationsWereMet())
}
