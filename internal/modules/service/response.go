package service

import (
	"context"
	"fmt"

	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/notify"
	"go.uber.org/zap"
)

type ResponseService interface {
	// Write records a response and notifies the project owner. A second
	// response from the same user is repo.ErrDuplicateResponse.
	Write(ctx context.Context, projectID, userID int64, vacancyID *int64) (*model.ProjectResponse, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.ProjectResponse, error)
}

type responseService struct {
	r        repo.ResponseRepo
	projects repo.ProjectRepo
	n        repo.NotificationRepo
	hub      *notify.Hub
	log      *zap.Logger
}

func NewResponseService(r repo.ResponseRepo, projects repo.ProjectRepo, n repo.NotificationRepo, hub *notify.Hub, log *zap.Logger) ResponseService {
	return &responseService{r: r, projects: projects, n: n, hub: hub, log: log}
}

func (s *responseService) Write(ctx context.Context, projectID, userID int64, vacancyID *int64) (*model.ProjectResponse, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	response, err := s.r.Write(ctx, projectID, userID, vacancyID)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("New response to project %q", project.ProjectName)
	if err := s.n.Create(ctx, &model.Notification{
		ProjectID:        &projectID,
		UserID:           project.UserID,
		NotificationType: "ProjectResponse",
		NotificationText: text,
	}); err != nil {
		s.log.Sugar().Errorw("response notification failed", "projectId", projectID, "err", err)
	}
	s.hub.Push(project.UserID, notify.Event{Type: "ProjectResponse", Payload: response})

	return response, nil
}

func (s *responseService) ListByProject(ctx context.Context, projectID int64) ([]model.ProjectResponse, error) {
	return s.r.ListByProject(ctx, projectID)
}
