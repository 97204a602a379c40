package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The cascade order is load-bearing: child tables carrying foreign
// keys must be cleared before their parents. This test pins the order
// so a careless reordering shows up in review.
func TestRemoveProjectSteps_Order(t *testing.T) {
	expected := []string{
		"project_vacancies",
		"project_chat",
		"team_members",
		"team_member_vacancies",
		"project_team",
		"project_comments",
		"dialog_main_info",
		"catalog_row",
		"status_row",
		"moderation_row",
		"stage_row",
		"move_not_completed_settings",
		"user_view_strategy",
		"sprint_duration_settings",
		"company_project",
		"company_workspace",
		"user_project",
		"notifications",
		"team_member_roles",
		"wiki_tree",
		"leftover_settings",
	}

	steps := removeProjectSteps()
	require.Len(t, steps, len(expected))

	for i, step := range steps {
		assert.Equal(t, expected[i], step.name, "step %d out of order", i)
		assert.NotNil(t, step.run, "step %s has no runner", step.name)
	}
}

func TestRemoveProjectSteps_TeamBeforeRoles(t *testing.T) {
	steps := removeProjectSteps()

	index := func(name string) int {
		for i, s := range steps {
			if s.name == name {
				return i
			}
		}
		t.Fatalf("step %s not found", name)
		return -1
	}

	// Members reference the team row, the team row is resolved before
	// roles are cleared, and the project row goes after its satellites.
	assert.Less(t, index("team_members"), index("project_team"))
	assert.Less(t, index("project_team"), index("team_member_roles"))
	assert.Less(t, index("catalog_row"), index("user_project"))
	assert.Less(t, index("moderation_row"), index("user_project"))
}

// A failing step mid-cascade must roll the whole transaction back and
// stop before any later step runs. The first step is allowed to
// succeed so the failure lands inside the cascade, not at its start.
func TestProjectRepo_Remove_RollsBackOnFailedStep(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	r := &projectRepo{db: gormDB}

	boom := errors.New("deadlock detected")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .*vacancy_name`).
		WillReturnRows(sqlmock.NewRows([]string{"vacancy_name"}).AddRow("Go developer"))
	mock.ExpectExec(`DELETE FROM .*project_vacancies`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT .*dialog_members`).WillReturnError(boom)
	mock.ExpectRollback()

	result, err := r.Remove(context.Background(), 1, 7)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "step project_chat")
	// Rollback consumed, nothing past the failing step executed.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepo_Remove_FirstStepFailureAbortsImmediately(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	r := &projectRepo{db: gormDB}

	boom := errors.New("relation is locked")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .*vacancy_name`).WillReturnError(boom)
	mock.ExpectRollback()

	result, err := r.Remove(context.Background(), 1, 7)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "step project_vacancies")
	assert.NoError(t, mock.ExpectationsWereMet())
}
