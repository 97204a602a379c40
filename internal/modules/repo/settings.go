package repo

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepo interface {
	GetMoveNotCompletedTasks(ctx context.Context, projectID int64) (*model.MoveNotCompletedTasksSetting, error)
	UpsertMoveNotCompletedTasks(ctx context.Context, projectID int64, isMove bool) error
	GetSprintDuration(ctx context.Context, projectID int64) (*model.SprintDurationSetting, error)
	UpsertSprintDuration(ctx context.Context, projectID int64, durationDays int) error
	GetViewStrategy(ctx context.Context, projectID, userID int64) (*model.UserViewStrategy, error)
	UpsertViewStrategy(ctx context.Context, projectID, userID int64, strategy string) error
}

type settingsRepo struct{ db *gorm.DB }

func NewSettingsRepo(db *gorm.DB) SettingsRepo {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) GetMoveNotCompletedTasks(ctx context.Context, projectID int64) (*model.MoveNotCompletedTasksSetting, error) {
	var setting model.MoveNotCompletedTasksSetting
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingsRepo) UpsertMoveNotCompletedTasks(ctx context.Context, projectID int64, isMove bool) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_move"}),
	}).Create(&model.MoveNotCompletedTasksSetting{
		ProjectID: projectID,
		IsMove:    isMove,
	}).Error
}

func (r *settingsRepo) GetSprintDuration(ctx context.Context, projectID int64) (*model.SprintDurationSetting, error) {
	var setting model.SprintDurationSetting
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingsRepo) UpsertSprintDuration(ctx context.Context, projectID int64, durationDays int) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"duration_days"}),
	}).Create(&model.SprintDurationSetting{
		ProjectID:    projectID,
		DurationDays: durationDays,
	}).Error
}

func (r *settingsRepo) GetViewStrategy(ctx context.Context, projectID, userID int64) (*model.UserViewStrategy, error) {
	var strategy model.UserViewStrategy
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&strategy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &strategy, nil
}

func (r *settingsRepo) UpsertViewStrategy(ctx context.Context, projectID, userID int64, strategy string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"strategy"}),
	}).Create(&model.UserViewStrategy{
		ProjectID: projectID,
		UserID:    userID,
		Strategy:  strategy,
	}).Error
}
