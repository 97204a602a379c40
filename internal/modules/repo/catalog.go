package repo

import (
	"context"
	"time"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

// CatalogProjectOutput is a catalog card row.
type CatalogProjectOutput struct {
	ProjectID      int64     `json:"project_id"`
	ProjectName    string    `json:"project_name"`
	ProjectDetails string    `json:"project_details"`
	UserID         int64     `json:"user_id"`
	StageSysName   string    `json:"stage_sys_name"`
	DateCreated    time.Time `json:"date_created"`
}

// CatalogFilters narrows the public catalog listing.
type CatalogFilters struct {
	StageSysNames []string
	AnyVacancies  bool
}

type CatalogRepo interface {
	List(ctx context.Context, filters CatalogFilters) ([]CatalogProjectOutput, error)
	Search(ctx context.Context, searchText string) ([]CatalogProjectOutput, error)
	Page(ctx context.Context, page, pageSize int) ([]CatalogProjectOutput, int64, error)
}

type catalogRepo struct{ db *gorm.DB }

func NewCatalogRepo(db *gorm.DB) CatalogRepo {
	return &catalogRepo{db: db}
}

// catalogBaseQuery selects public, non-archived projects that are not
// blocked by moderation. The secondary sort key (subscription object
// id) is a preserved tiebreak whose business meaning is unconfirmed;
// it is kept explicit rather than folded into the primary ordering.
// The subscription row is reached through the owner's subscription id,
// not by user id: a user may hold several subscription rows and the
// card must not fan out per row.
const catalogBaseQuery = `
	SELECT u.project_id, u.project_name, u.project_details, u.user_id,
	       ps.stage_sys_name, u.date_created
	  FROM projects.catalog_projects c
	  JOIN projects.user_projects u ON u.project_id = c.project_id
	  JOIN projects.user_project_stages ups ON ups.project_id = u.project_id
	  JOIN projects.project_stages ps ON ps.stage_id = ups.stage_id
	  JOIN dbo.users usr ON usr.user_id = u.user_id
	  LEFT JOIN moderation.projects m ON m.project_id = u.project_id
	  LEFT JOIN subscriptions.user_subscriptions s ON s.object_id = usr.subscription_id
	 WHERE u.is_public
	   AND NOT EXISTS (
	       SELECT 1 FROM projects.archived_projects a
	        WHERE a.project_id = u.project_id)
	   AND (m.moderation_status_id NOT IN ? OR m.moderation_status_id IS NULL)`

const catalogOrder = ` ORDER BY u.date_created DESC, s.object_id DESC NULLS LAST`

// catalogBlockedStatuses are the moderation outcomes that keep a
// project off the public catalog.
var catalogBlockedStatuses = []model.ModerationStatus{
	model.ModerationStatusPending,
	model.ModerationStatusRejected,
}

func (r *catalogRepo) List(ctx context.Context, filters CatalogFilters) ([]CatalogProjectOutput, error) {
	query := catalogBaseQuery
	args := []interface{}{catalogBlockedStatuses}

	if len(filters.StageSysNames) > 0 {
		query += ` AND ps.stage_sys_name IN ?`
		args = append(args, filters.StageSysNames)
	}
	if filters.AnyVacancies {
		query += ` AND EXISTS (
			SELECT 1 FROM projects.project_vacancies pv
			 WHERE pv.project_id = u.project_id)`
	}
	query += catalogOrder

	var out []CatalogProjectOutput
	return out, r.db.WithContext(ctx).Raw(query, args...).Scan(&out).Error
}

func (r *catalogRepo) Search(ctx context.Context, searchText string) ([]CatalogProjectOutput, error) {
	query := catalogBaseQuery +
		` AND (u.project_name ILIKE ? OR u.project_details ILIKE ?)` +
		catalogOrder

	pattern := "%" + searchText + "%"
	var out []CatalogProjectOutput
	return out, r.db.WithContext(ctx).Raw(query, catalogBlockedStatuses, pattern, pattern).Scan(&out).Error
}

func (r *catalogRepo) Page(ctx context.Context, page, pageSize int) ([]CatalogProjectOutput, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM (` + catalogBaseQuery + `) q`
	if err := r.db.WithContext(ctx).Raw(countQuery, catalogBlockedStatuses).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	query := catalogBaseQuery + catalogOrder + ` LIMIT ? OFFSET ?`
	var out []CatalogProjectOutput
	err := r.db.WithContext(ctx).
		Raw(query, catalogBlockedStatuses, pageSize, (page-1)*pageSize).
		Scan(&out).Error
	return out, total, err
}
