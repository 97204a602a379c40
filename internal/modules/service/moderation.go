package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/wirelance/wirelance/internal/config"
	"github.com/wirelance/wirelance/internal/infra/queue"
	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/notify"
	"go.uber.org/zap"
)

type ModerationService interface {
	ListPending(ctx context.Context) ([]model.UserProject, error)
	Approve(ctx context.Context, projectID int64) error
	Reject(ctx context.Context, projectID int64) error
}

// moderationEvent is the MQ payload for moderation outcomes consumed
// by offline channels (mailer, activity feed).
type moderationEvent struct {
	ProjectID   int64  `json:"project_id"`
	ProjectName string `json:"project_name"`
	OwnerID     int64  `json:"owner_id"`
	Outcome     string `json:"outcome"`
}

type moderationService struct {
	r        repo.ModerationRepo
	projects repo.ProjectRepo
	n        repo.NotificationRepo
	pub      *queue.Publisher
	hub      *notify.Hub
	rdb      *redis.Client
	mq       config.MQCfg
	log      *zap.Logger
}

func NewModerationService(
	r repo.ModerationRepo,
	projects repo.ProjectRepo,
	n repo.NotificationRepo,
	pub *queue.Publisher,
	hub *notify.Hub,
	rdb *redis.Client,
	mq config.MQCfg,
	log *zap.Logger,
) ModerationService {
	return &moderationService{
		r: r, projects: projects, n: n,
		pub: pub, hub: hub, rdb: rdb, mq: mq, log: log,
	}
}

func (s *moderationService) ListPending(ctx context.Context) ([]model.UserProject, error) {
	return s.r.ListPending(ctx)
}

func (s *moderationService) Approve(ctx context.Context, projectID int64) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if err := s.r.Approve(ctx, projectID); err != nil {
		return err
	}

	s.afterOutcome(ctx, project, "Approved",
		s.mq.RoutingKey.ProjectApproved,
		fmt.Sprintf("Project %q passed moderation and is published in the catalog", project.ProjectName))
	return nil
}

func (s *moderationService) Reject(ctx context.Context, projectID int64) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if err := s.r.Reject(ctx, projectID); err != nil {
		return err
	}

	s.afterOutcome(ctx, project, "Rejected",
		s.mq.RoutingKey.ProjectRejected,
		fmt.Sprintf("Project %q was rejected by moderation", project.ProjectName))
	return nil
}

// afterOutcome fans the decision out: persisted notification, live
// push, MQ event, catalog cache drop. All best-effort; the status
// change is already committed.
func (s *moderationService) afterOutcome(ctx context.Context, project *model.UserProject, outcome, routingKey, text string) {
	if err := s.n.Create(ctx, &model.Notification{
		ProjectID:        &project.ProjectID,
		UserID:           project.UserID,
		NotificationType: "ProjectModeration" + outcome,
		NotificationText: text,
	}); err != nil {
		s.log.Sugar().Errorw("moderation notification failed",
			"projectId", project.ProjectID, "err", err)
	}

	s.hub.Push(project.UserID, notify.Event{
		Type: "ProjectModeration" + outcome,
		Payload: map[string]interface{}{
			"project_id":   project.ProjectID,
			"project_name": project.ProjectName,
		},
	})

	if err := s.pub.PublishJSON(ctx, s.mq.ExchangeName.Moderation, routingKey, moderationEvent{
		ProjectID:   project.ProjectID,
		ProjectName: project.ProjectName,
		OwnerID:     project.UserID,
		Outcome:     outcome,
	}); err != nil {
		s.log.Sugar().Errorw("moderation event publish failed",
			"projectId", project.ProjectID, "err", err)
	}

	InvalidateCatalog(ctx, s.rdb, s.log)
}
