package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wirelance/wirelance/internal/config"
	"github.com/wirelance/wirelance/internal/infra/httpclient"
	"github.com/wirelance/wirelance/internal/infra/queue"
	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/notify"
	"go.uber.org/zap"
)

// StartOutcome tags the result of a sprint start attempt.
type StartOutcome string

const (
	SprintStarted StartOutcome = "Started"
	SprintBlocked StartOutcome = "Blocked"
)

// StartResult is what StartSprint returns. A blocked start is a normal
// result carrying the first failed precondition, not an error.
type StartResult struct {
	Outcome StartOutcome `json:"outcome"`
	Reason  string       `json:"reason,omitempty"`
}

type SprintService interface {
	ListByProject(ctx context.Context, projectID int64) ([]model.Sprint, error)
	Get(ctx context.Context, projectSprintID, projectID int64) (*model.Sprint, error)
	// StartSprint evaluates the start preconditions in order and flips
	// the sprint to InWork when all pass. The first failure is reported
	// via the ops channel and the live push, and returned as a Blocked
	// result without an error.
	StartSprint(ctx context.Context, projectSprintID, projectID, userID int64) (*StartResult, error)
	UpdateName(ctx context.Context, projectSprintID, projectID int64, name string) error
	UpdateDetails(ctx context.Context, projectSprintID, projectID int64, details string) error
	UpsertExecutor(ctx context.Context, projectSprintID, projectID, executorID int64) error
	UpsertWatchers(ctx context.Context, projectSprintID, projectID int64, watcherIDs []int64) error
}

// sprintEvent is the MQ payload for sprint workflow outcomes.
type sprintEvent struct {
	ProjectID       int64  `json:"project_id"`
	ProjectSprintID int64  `json:"project_sprint_id"`
	SprintName      string `json:"sprint_name"`
	Outcome         string `json:"outcome"`
	Reason          string `json:"reason,omitempty"`
}

type sprintService struct {
	r   repo.SprintRepo
	pub *queue.Publisher
	hub *notify.Hub
	ops *httpclient.OpsClient
	mq  config.MQCfg
	log *zap.Logger
}

func NewSprintService(r repo.SprintRepo, pub *queue.Publisher, hub *notify.Hub, ops *httpclient.OpsClient, mq config.MQCfg, log *zap.Logger) SprintService {
	return &sprintService{r: r, pub: pub, hub: hub, ops: ops, mq: mq, log: log}
}

func (s *sprintService) ListByProject(ctx context.Context, projectID int64) ([]model.Sprint, error) {
	return s.r.ListByProject(ctx, projectID)
}

func (s *sprintService) Get(ctx context.Context, projectSprintID, projectID int64) (*model.Sprint, error) {
	return s.r.Get(ctx, projectSprintID, projectID)
}

func (s *sprintService) StartSprint(ctx context.Context, projectSprintID, projectID, userID int64) (*StartResult, error) {
	sprint, err := s.r.Get(ctx, projectSprintID, projectID)
	if err != nil {
		return nil, err
	}

	if reason, err := s.checkStart(ctx, sprint); err != nil {
		return nil, err
	} else if reason != "" {
		s.reportBlocked(ctx, sprint, userID, reason)
		return &StartResult{Outcome: SprintBlocked, Reason: reason}, nil
	}

	if err := s.r.Run(ctx, projectSprintID, projectID); err != nil {
		return nil, err
	}
	s.reportStarted(ctx, sprint, userID)
	return &StartResult{Outcome: SprintStarted}, nil
}

// checkStart evaluates the preconditions in order and returns the
// first failure reason, or "" when the sprint may start.
func (s *sprintService) checkStart(ctx context.Context, sprint *model.Sprint) (string, error) {
	if sprint.SprintStatusID != model.SprintStatusInWork {
		active, err := s.r.HasActiveSprint(ctx, sprint.ProjectID)
		if err != nil {
			return "", err
		}
		if active {
			return "another sprint of the project is already in work", nil
		}
	}

	if sprint.DateStart == nil || sprint.DateEnd == nil {
		return "sprint start and end dates are not set", nil
	}

	if sprint.DateEnd.Before(time.Now()) {
		return "sprint end date is in the past", nil
	}

	switch sprint.SprintStatusID {
	case model.SprintStatusInWork, model.SprintStatusCompleted, model.SprintStatusClosed:
		return fmt.Sprintf("sprint is already %s", sprint.SprintStatusID), nil
	}

	count, err := s.r.CountSprintTasks(ctx, sprint.ProjectSprintID, sprint.ProjectID)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "sprint has no tasks", nil
	}

	return "", nil
}

func (s *sprintService) reportBlocked(ctx context.Context, sprint *model.Sprint, userID int64, reason string) {
	s.log.Sugar().Warnw("sprint start blocked",
		"projectId", sprint.ProjectID,
		"projectSprintId", sprint.ProjectSprintID,
		"reason", reason)

	s.ops.SendWarning(ctx, "sprint.start",
		fmt.Sprintf("sprint %d of project %d blocked: %s",
			sprint.ProjectSprintID, sprint.ProjectID, reason))

	if s.hub.IsConnected(userID) {
		s.hub.Push(userID, notify.Event{
			Type: "SprintStartBlocked",
			Payload: map[string]interface{}{
				"project_sprint_id": sprint.ProjectSprintID,
				"sprint_name":       sprint.SprintName,
				"reason":            reason,
			},
		})
	}

	if err := s.pub.PublishJSON(ctx, s.mq.ExchangeName.Sprint, s.mq.RoutingKey.SprintBlocked, sprintEvent{
		ProjectID:       sprint.ProjectID,
		ProjectSprintID: sprint.ProjectSprintID,
		SprintName:      sprint.SprintName,
		Outcome:         string(SprintBlocked),
		Reason:          reason,
	}); err != nil {
		s.log.Sugar().Errorw("sprint event publish failed",
			"projectId", sprint.ProjectID, "err", err)
	}
}

func (s *sprintService) reportStarted(ctx context.Context, sprint *model.Sprint, userID int64) {
	if s.hub.IsConnected(userID) {
		s.hub.Push(userID, notify.Event{
			Type: "SprintStarted",
			Payload: map[string]interface{}{
				"project_sprint_id": sprint.ProjectSprintID,
				"sprint_name":       sprint.SprintName,
			},
		})
	}

	if err := s.pub.PublishJSON(ctx, s.mq.ExchangeName.Sprint, s.mq.RoutingKey.SprintStarted, sprintEvent{
		ProjectID:       sprint.ProjectID,
		ProjectSprintID: sprint.ProjectSprintID,
		SprintName:      sprint.SprintName,
		Outcome:         string(SprintStarted),
	}); err != nil {
		s.log.Sugar().Errorw("sprint event publish failed",
			"projectId", sprint.ProjectID, "err", err)
	}
}

func (s *sprintService) UpdateName(ctx context.Context, projectSprintID, projectID int64, name string) error {
	return s.r.UpdateName(ctx, projectSprintID, projectID, name)
}

func (s *sprintService) UpdateDetails(ctx context.Context, projectSprintID, projectID int64, details string) error {
	return s.r.UpdateDetails(ctx, projectSprintID, projectID, details)
}

func (s *sprintService) UpsertExecutor(ctx context.Context, projectSprintID, projectID, executorID int64) error {
	return s.r.UpsertExecutor(ctx, projectSprintID, projectID, executorID)
}

func (s *sprintService) UpsertWatchers(ctx context.Context, projectSprintID, projectID int64, watcherIDs []int64) error {
	return s.r.UpsertWatchers(ctx, projectSprintID, projectID, watcherIDs)
}
