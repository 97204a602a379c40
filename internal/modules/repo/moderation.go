package repo

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

type ModerationRepo interface {
	ListPending(ctx context.Context) ([]model.UserProject, error)
	GetByProjectID(ctx context.Context, projectID int64) (*model.ModerationProject, error)
	// Approve flips the status to approved and publishes the catalog
	// row in one transaction.
	Approve(ctx context.Context, projectID int64) error
	Reject(ctx context.Context, projectID int64) error
}

type moderationRepo struct{ db *gorm.DB }

func NewModerationRepo(db *gorm.DB) ModerationRepo {
	return &moderationRepo{db: db}
}

func (r *moderationRepo) ListPending(ctx context.Context) ([]model.UserProject, error) {
	var out []model.UserProject
	err := r.db.WithContext(ctx).
		Joins("JOIN moderation.projects m ON m.project_id = user_projects.project_id").
		Where("m.moderation_status_id = ?", model.ModerationStatusPending).
		Order("m.date_moderation").
		Find(&out).Error
	return out, err
}

func (r *moderationRepo) GetByProjectID(ctx context.Context, projectID int64) (*model.ModerationProject, error) {
	var row model.ModerationProject
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *moderationRepo) Approve(ctx context.Context, projectID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.ModerationProject{}).
			Where("project_id = ?", projectID).
			Update("moderation_status_id", model.ModerationStatusApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		if err := tx.Model(&model.ProjectStatus{}).
			Where("project_id = ?", projectID).
			Updates(map[string]interface{}{
				"project_status_sys_name": model.ModerationStatusApproved.SysName(),
				"project_status_name":     "Approved",
			}).Error; err != nil {
			return err
		}

		// Publish to the catalog; approving twice must not duplicate
		// the row.
		var existing model.CatalogProject
		err := tx.Where("project_id = ?", projectID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&model.CatalogProject{ProjectID: projectID}).Error
		}
		return err
	})
}

func (r *moderationRepo) Reject(ctx context.Context, projectID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.ModerationProject{}).
			Where("project_id = ?", projectID).
			Update("moderation_status_id", model.ModerationStatusRejected)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		if err := tx.Model(&model.ProjectStatus{}).
			Where("project_id = ?", projectID).
			Updates(map[string]interface{}{
				"project_status_sys_name": model.ModerationStatusRejected.SysName(),
				"project_status_name":     "Rejected",
			}).Error; err != nil {
			return err
		}

		// A rejected project leaves the catalog.
		return tx.Where("project_id = ?", projectID).Delete(&model.CatalogProject{}).Error
	})
}
