package repo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wirelance/wirelance/internal/modules/model"
)

func catalogRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"project_id", "project_name", "project_details", "user_id",
		"stage_sys_name", "date_created",
	}).AddRow(int64(1), "Marketplace redesign", "Rework the storefront", int64(7), "Idea", time.Now())
}

// The subscription tiebreak join goes through the owner's subscription
// id. Joining by user id would duplicate a card for every subscription
// row the owner holds.
func TestCatalogRepo_List_JoinsSubscriptionThroughOwner(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	r := NewCatalogRepo(gormDB)

	mock.ExpectQuery(`LEFT JOIN subscriptions\.user_subscriptions s ON s\.object_id = usr\.subscription_id`).
		WithArgs(int64(model.ModerationStatusPending), int64(model.ModerationStatusRejected)).
		WillReturnRows(catalogRows())

	out, err := r.List(context.Background(), CatalogFilters{})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ProjectID)
	assert.Equal(t, "Idea", out[0].StageSysName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The blocked moderation statuses are bound as parameters from the
// enum, not baked into the statement.
func TestCatalogRepo_List_StageFilterKeepsStatusParams(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	r := NewCatalogRepo(gormDB)

	mock.ExpectQuery(`stage_sys_name IN .* ORDER BY u\.date_created DESC, s\.object_id DESC NULLS LAST`).
		WithArgs(
			int64(model.ModerationStatusPending),
			int64(model.ModerationStatusRejected),
			"Idea",
		).
		WillReturnRows(catalogRows())

	out, err := r.List(context.Background(), CatalogFilters{StageSysNames: []string{"Idea"}})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepo_Search_BindsPatternAfterStatuses(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	r := NewCatalogRepo(gormDB)

	mock.ExpectQuery(`project_name ILIKE .* OR u\.project_details ILIKE`).
		WithArgs(
			int64(model.ModerationStatusPending),
			int64(model.ModerationStatusRejected),
			"%storefront%",
			"%storefront%",
		).
		WillReturnRows(catalogRows())

	out, err := r.Search(context.Background(), "storefront")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
