package repo

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func toJSONSlice(v []int64) datatypes.JSONSlice[int64] {
	return datatypes.NewJSONSlice(v)
}

type TaskRepo interface {
	// Create assigns the next per-project task number inside the
	// creating transaction.
	Create(ctx context.Context, task *model.ProjectTask) error
	GetByNumber(ctx context.Context, projectID, taskNumber int64) (*model.ProjectTask, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.ProjectTask, error)
	UpdateStatus(ctx context.Context, projectID, taskNumber, statusID int64) error
	UpdateExecutor(ctx context.Context, projectID, taskNumber int64, executorID *int64) error
	UpdateWatchers(ctx context.Context, projectID, taskNumber int64, watcherIDs []int64) error
	UpdateTags(ctx context.Context, projectID, taskNumber int64, tagIDs []int64) error
}

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, task *model.ProjectTask) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxNumber int64
		err := tx.Model(&model.ProjectTask{}).
			Where("project_id = ?", task.ProjectID).
			Select("COALESCE(MAX(task_number), 0)").
			Scan(&maxNumber).Error
		if err != nil {
			return err
		}
		task.TaskNumber = maxNumber + 1

		return tx.Create(task).Error
	})
}

func (r *taskRepo) GetByNumber(ctx context.Context, projectID, taskNumber int64) (*model.ProjectTask, error) {
	var task model.ProjectTask
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND task_number = ?", projectID, taskNumber).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepo) ListByProject(ctx context.Context, projectID int64) ([]model.ProjectTask, error) {
	var tasks []model.ProjectTask
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("task_number").
		Find(&tasks).Error
	return tasks, err
}

func (r *taskRepo) UpdateStatus(ctx context.Context, projectID, taskNumber, statusID int64) error {
	return r.updateField(ctx, projectID, taskNumber, "task_status_id", statusID)
}

func (r *taskRepo) UpdateExecutor(ctx context.Context, projectID, taskNumber int64, executorID *int64) error {
	return r.updateField(ctx, projectID, taskNumber, "executor_id", executorID)
}

func (r *taskRepo) UpdateWatchers(ctx context.Context, projectID, taskNumber int64, watcherIDs []int64) error {
	return r.updateField(ctx, projectID, taskNumber, "watcher_ids", toJSONSlice(watcherIDs))
}

func (r *taskRepo) UpdateTags(ctx context.Context, projectID, taskNumber int64, tagIDs []int64) error {
	return r.updateField(ctx, projectID, taskNumber, "tag_ids", toJSONSlice(tagIDs))
}

func (r *taskRepo) updateField(ctx context.Context, projectID, taskNumber int64, column string, value interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.ProjectTask{}).
		Where("project_id = ? AND task_number = ?", projectID, taskNumber).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
