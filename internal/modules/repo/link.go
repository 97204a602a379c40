package repo

import (
	"context"
	"fmt"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

type LinkRepo interface {
	// Create writes both rows of the mirrored pair in one transaction.
	Create(ctx context.Context, kind model.LinkType, projectID, fromTask, otherTask int64) error
	// Remove deletes both directions of the pair, also in one
	// transaction.
	Remove(ctx context.Context, kind model.LinkType, projectID, fromTask, otherTask int64) error
	ListByTask(ctx context.Context, projectID, taskID int64, kind model.LinkType) ([]model.TaskLink, error)
	// ListBlocking returns the links that block the given task.
	ListBlocking(ctx context.Context, projectID, taskID int64) ([]model.TaskLink, error)
}

type linkRepo struct{ db *gorm.DB }

func NewLinkRepo(db *gorm.DB) LinkRepo {
	return &linkRepo{db: db}
}

func (r *linkRepo) Create(ctx context.Context, kind model.LinkType, projectID, fromTask, otherTask int64) error {
	pair, err := model.BuildLinkPair(kind, projectID, fromTask, otherTask)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range pair {
			if err := tx.Create(&pair[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *linkRepo) Remove(ctx context.Context, kind model.LinkType, projectID, fromTask, otherTask int64) error {
	pair, err := model.BuildLinkPair(kind, projectID, fromTask, otherTask)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range pair {
			row := pair[i]
			q := tx.Where(
				"project_id = ? AND from_task_id = ? AND link_type = ? AND is_blocked = ?",
				row.ProjectID, row.FromTaskID, row.LinkType, row.IsBlocked,
			)
			switch {
			case row.ToTaskID != nil:
				q = q.Where("to_task_id = ?", *row.ToTaskID)
			case row.ParentID != nil:
				q = q.Where("parent_id = ?", *row.ParentID)
			case row.ChildID != nil:
				q = q.Where("child_id = ?", *row.ChildID)
			case row.BlockedTaskID != nil:
				q = q.Where("blocked_task_id = ?", *row.BlockedTaskID)
			default:
				return fmt.Errorf("link row without counterpart column")
			}
			if err := q.Delete(&model.TaskLink{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *linkRepo) ListByTask(ctx context.Context, projectID, taskID int64, kind model.LinkType) ([]model.TaskLink, error) {
	var out []model.TaskLink
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND from_task_id = ? AND link_type = ?", projectID, taskID, kind).
		Find(&out).Error
	return out, err
}

func (r *linkRepo) ListBlocking(ctx context.Context, projectID, taskID int64) ([]model.TaskLink, error) {
	var out []model.TaskLink
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND blocked_task_id = ? AND is_blocked", projectID, taskID).
		Find(&out).Error
	return out, err
}
