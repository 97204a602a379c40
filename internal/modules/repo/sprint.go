package repo

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

type SprintRepo interface {
	ListByProject(ctx context.Context, projectID int64) ([]model.Sprint, error)
	Get(ctx context.Context, projectSprintID, projectID int64) (*model.Sprint, error)
	// HasActiveSprint reports whether another sprint of the project is
	// already in work.
	HasActiveSprint(ctx context.Context, projectID int64) (bool, error)
	CountSprintTasks(ctx context.Context, projectSprintID, projectID int64) (int64, error)
	// Run flips the sprint status to InWork. The gate preconditions
	// are checked by the service, not here.
	Run(ctx context.Context, projectSprintID, projectID int64) error
	UpdateName(ctx context.Context, projectSprintID, projectID int64, name string) error
	UpdateDetails(ctx context.Context, projectSprintID, projectID int64, details string) error
	UpsertExecutor(ctx context.Context, projectSprintID, projectID, executorID int64) error
	UpsertWatchers(ctx context.Context, projectSprintID, projectID int64, watcherIDs []int64) error
}

type sprintRepo struct{ db *gorm.DB }

func NewSprintRepo(db *gorm.DB) SprintRepo {
	return &sprintRepo{db: db}
}

func (r *sprintRepo) ListByProject(ctx context.Context, projectID int64) ([]model.Sprint, error) {
	var out []model.Sprint
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("project_sprint_id").
		Find(&out).Error
	return out, err
}

func (r *sprintRepo) Get(ctx context.Context, projectSprintID, projectID int64) (*model.Sprint, error) {
	var sprint model.Sprint
	err := r.db.WithContext(ctx).
		Where("project_sprint_id = ? AND project_id = ?", projectSprintID, projectID).
		First(&sprint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

func (r *sprintRepo) HasActiveSprint(ctx context.Context, projectID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Sprint{}).
		Where("project_id = ? AND sprint_status_id = ?", projectID, model.SprintStatusInWork).
		Count(&count).Error
	return count > 0, err
}

func (r *sprintRepo) CountSprintTasks(ctx context.Context, projectSprintID, projectID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SprintTask{}).
		Where("project_sprint_id = ? AND project_id = ?", projectSprintID, projectID).
		Count(&count).Error
	return count, err
}

func (r *sprintRepo) Run(ctx context.Context, projectSprintID, projectID int64) error {
	res := r.db.WithContext(ctx).Model(&model.Sprint{}).
		Where("project_sprint_id = ? AND project_id = ?", projectSprintID, projectID).
		Update("sprint_status_id", model.SprintStatusInWork)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sprintRepo) UpdateName(ctx context.Context, projectSprintID, projectID int64, name string) error {
	return r.updateField(ctx, projectSprintID, projectID, "sprint_name", name)
}

func (r *sprintRepo) UpdateDetails(ctx context.Context, projectSprintID, projectID int64, details string) error {
	return r.updateField(ctx, projectSprintID, projectID, "sprint_details", details)
}

func (r *sprintRepo) UpsertExecutor(ctx context.Context, projectSprintID, projectID, executorID int64) error {
	return r.updateField(ctx, projectSprintID, projectID, "executor_id", executorID)
}

func (r *sprintRepo) UpsertWatchers(ctx context.Context, projectSprintID, projectID int64, watcherIDs []int64) error {
	return r.updateField(ctx, projectSprintID, projectID, "watcher_ids", toJSONSlice(watcherIDs))
}

func (r *sprintRepo) updateField(ctx context.Context, projectSprintID, projectID int64, column string, value interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Sprint{}).
		Where("project_sprint_id = ? AND project_id = ?", projectSprintID, projectID).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
