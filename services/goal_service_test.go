package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robord1/macronutrient-tracker-api/apperrors"
)

var goalColumns = []string{
	"id", "created_at", "updated_at", "deleted_at",
	"user_id", "protein_target", "carbs_target", "fat_target", "sodium_target",
}

func newGoalService(t *testing.T) (*GoalService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewGoalService(db, testLogger()), mock
}

func TestGetGoalsNotFound(t *testing.T) {
	svc, mock := newGoalService(t)

	mock.ExpectQuery(`SELECT \* FROM "goals" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows(goalColumns))

	_, err := svc.Get(1)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.Equal(t, "No goals found for this user", appErr.Message)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGoalsReturnsTargets(t *testing.T) {
	svc, mock := newGoalService(t)

	mock.ExpectQuery(`SELECT \* FROM "goals" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows(goalColumns).
			AddRow(3, nil, nil, nil, 1, 150, 200, 70, 2300))

	goal, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, uint(3), goal.ID)
	assert.Equal(t, 150, goal.ProteinTarget)
	assert.Equal(t, 200, goal.CarbsTarget)
	assert.Equal(t, 70, goal.FatTarget)
	assert.Equal(t, 2300, goal.SodiumTarget)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertCreatesOnFirstWrite(t *testing.T) {
	svc, mock := newGoalService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "goals" WHERE user_id = \$1 (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(goalColumns))
	mock.ExpectQuery(`INSERT INTO "goals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	created, err := svc.Upsert(1, 150, 200, 70, 2300)
	require.NoError(t, err)
	assert.True(t, created)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertReplacesExistingTargets(t *testing.T) {
	svc, mock := newGoalService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "goals" WHERE user_id = \$1 (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(goalColumns).
			AddRow(1, nil, nil, nil, 1, 150, 200, 70, 2300))
	mock.ExpectExec(`UPDATE "goals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := svc.Upsert(1, 160, 210, 75, 2000)
	require.NoError(t, err)
	assert.False(t, created)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertLostInsertRaceDegradesToUpdate(t *testing.T) {
	svc, mock := newGoalService(t)

	// First pass: no row yet, but a concurrent request wins the insert and
	// the unique index on user_id rejects ours.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "goals" WHERE user_id = \$1 (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(goalColumns))
	mock.ExpectQuery(`INSERT INTO "goals"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	// Second pass sees the winner's row and updates it.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "goals" WHERE user_id = \$1 (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(goalColumns).
			AddRow(1, nil, nil, nil, 1, 150, 200, 70, 2300))
	mock.ExpectExec(`UPDATE "goals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := svc.Upsert(1, 160, 210, 75, 2000)
	require.NoError(t, err)
	assert.False(t, created)

	require.NoError(t, mock.ExpectationsWereMet())
}
