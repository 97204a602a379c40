package service

import (
	"context"

	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
)

type NotificationService interface {
	ListUnshown(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkShown(ctx context.Context, notificationID, userID int64) error
}

type notificationService struct{ r repo.NotificationRepo }

func NewNotificationService(r repo.NotificationRepo) NotificationService {
	return &notificationService{r: r}
}

func (s *notificationService) ListUnshown(ctx context.Context, userID int64) ([]model.Notification, error) {
	return s.r.ListUnshown(ctx, userID)
}

func (s *notificationService) MarkShown(ctx context.Context, notificationID, userID int64) error {
	return s.r.MarkShown(ctx, notificationID, userID)
}
