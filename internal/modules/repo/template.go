package repo

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

type TemplateRepo interface {
	// GetProjectTemplateID resolves the template a project's board is
	// configured with.
	GetProjectTemplateID(ctx context.Context, projectID int64) (int64, error)
	// ListSelectableStatuses returns the statuses a task can be created
	// in, resolved through the project's template.
	ListSelectableStatuses(ctx context.Context, templateID int64) ([]model.TaskStatus, error)
	CreateUserStatus(ctx context.Context, status *model.TaskStatus) error
	CreateUserTag(ctx context.Context, tag *model.UserTaskTag) error
	ListTags(ctx context.Context, projectID int64) ([]model.UserTaskTag, error)
}

type templateRepo struct{ db *gorm.DB }

func NewTemplateRepo(db *gorm.DB) TemplateRepo {
	return &templateRepo{db: db}
}

func (r *templateRepo) GetProjectTemplateID(ctx context.Context, projectID int64) (int64, error) {
	var link model.ProjectTemplate
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return link.TemplateID, nil
}

func (r *templateRepo) ListSelectableStatuses(ctx context.Context, templateID int64) ([]model.TaskStatus, error) {
	var out []model.TaskStatus
	err := r.db.WithContext(ctx).
		Where("template_id = ?", templateID).
		Order("position").
		Find(&out).Error
	return out, err
}

func (r *templateRepo) CreateUserStatus(ctx context.Context, status *model.TaskStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *templateRepo) CreateUserTag(ctx context.Context, tag *model.UserTaskTag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos int
		err := tx.Model(&model.UserTaskTag{}).
			Where("project_id = ?", tag.ProjectID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPos).Error
		if err != nil {
			return err
		}
		tag.Position = maxPos + 1

		return tx.Create(tag).Error
	})
}

func (r *templateRepo) ListTags(ctx context.Context, projectID int64) ([]model.UserTaskTag, error) {
	var out []model.UserTaskTag
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position").
		Find(&out).Error
	return out, err
}
