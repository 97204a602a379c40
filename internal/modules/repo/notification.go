package repo

import (
	"context"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *model.Notification) error
	ListUnshown(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkShown(ctx context.Context, notificationID, userID int64) error
}

type notificationRepo struct{ db *gorm.DB }

func NewNotificationRepo(db *gorm.DB) NotificationRepo {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) ListUnshown(ctx context.Context, userID int64) ([]model.Notification, error) {
	var out []model.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND NOT is_shown", userID).
		Order("date_created DESC").
		Find(&out).Error
	return out, err
}

func (r *notificationRepo) MarkShown(ctx context.Context, notificationID, userID int64) error {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		Update("is_shown", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
