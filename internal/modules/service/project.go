package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/wirelance/wirelance/internal/infra/httpclient"
	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/notify"
	"go.uber.org/zap"
)

// ErrProjectNameTaken is returned when the owner already has a project
// with the requested name.
var ErrProjectNameTaken = errors.New("project name already taken")

type ProjectService interface {
	Create(ctx context.Context, in repo.CreateProjectInput) (*model.UserProject, error)
	Update(ctx context.Context, in repo.UpdateProjectInput) (*model.UserProject, error)
	Get(ctx context.Context, projectID int64) (*ProjectOutput, error)
	SetVisibility(ctx context.Context, projectID int64, isPublic bool) error
	Archive(ctx context.Context, projectID, userID int64) error
	Unarchive(ctx context.Context, projectID int64) (bool, error)
	Remove(ctx context.Context, projectID, userID int64) (*repo.RemoveProjectResult, error)
	ListStages(ctx context.Context) ([]model.ProjectStage, error)
}

// ProjectOutput is a project with its resolved stage.
type ProjectOutput struct {
	Project *model.UserProject  `json:"project"`
	Stage   *model.ProjectStage `json:"stage"`
}

type projectService struct {
	r   repo.ProjectRepo
	n   repo.NotificationRepo
	rdb *redis.Client
	hub *notify.Hub
	ops *httpclient.OpsClient
	log *zap.Logger
}

func NewProjectService(r repo.ProjectRepo, n repo.NotificationRepo, rdb *redis.Client, hub *notify.Hub, ops *httpclient.OpsClient, log *zap.Logger) ProjectService {
	return &projectService{r: r, n: n, rdb: rdb, hub: hub, ops: ops, log: log}
}

func (s *projectService) Create(ctx context.Context, in repo.CreateProjectInput) (*model.UserProject, error) {
	if in.ProjectName == "" {
		return nil, errors.New("project name is empty")
	}

	taken, err := s.r.CheckProjectName(ctx, in.ProjectName, in.UserID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrProjectNameTaken
	}

	return s.r.Create(ctx, in)
}

func (s *projectService) Update(ctx context.Context, in repo.UpdateProjectInput) (*model.UserProject, error) {
	if in.ProjectName == "" {
		return nil, errors.New("project name is empty")
	}
	return s.r.Update(ctx, in)
}

func (s *projectService) Get(ctx context.Context, projectID int64) (*ProjectOutput, error) {
	project, err := s.r.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	stage, err := s.r.GetStage(ctx, projectID)
	if err != nil {
		// A project without a stage row is inconsistent state; log with
		// identifiers before surfacing.
		s.log.Sugar().Errorw("project stage missing", "projectId", projectID, "err", err)
		return nil, err
	}
	return &ProjectOutput{Project: project, Stage: stage}, nil
}

func (s *projectService) SetVisibility(ctx context.Context, projectID int64, isPublic bool) error {
	return s.r.UpdateVisible(ctx, projectID, isPublic)
}

func (s *projectService) Archive(ctx context.Context, projectID, userID int64) error {
	return s.r.Archive(ctx, projectID, userID)
}

func (s *projectService) Unarchive(ctx context.Context, projectID int64) (bool, error) {
	return s.r.Unarchive(ctx, projectID)
}

// Remove runs the delete cascade and notifies the owner about the
// outcome. The notification is best-effort: the cascade is already
// committed when it is written.
func (s *projectService) Remove(ctx context.Context, projectID, userID int64) (*repo.RemoveProjectResult, error) {
	result, err := s.r.Remove(ctx, projectID, userID)
	if err != nil {
		s.ops.SendError(ctx, "project.remove", err)
		return nil, err
	}

	text := fmt.Sprintf("Project %q was deleted", result.ProjectName)
	if len(result.RemovedVacancies) > 0 {
		text = fmt.Sprintf("Project %q and %d vacancies were deleted",
			result.ProjectName, len(result.RemovedVacancies))
	}
	if err := s.n.Create(ctx, &model.Notification{
		UserID:           userID,
		NotificationType: "ProjectDeleted",
		NotificationText: text,
	}); err != nil {
		s.log.Sugar().Errorw("delete notification failed", "projectId", projectID, "err", err)
	}
	s.hub.Push(userID, notify.Event{Type: "ProjectDeleted", Payload: result})

	return result, nil
}

const stageListKey = "projects:stages"

// ListStages serves the stage reference list from Redis. The list
// changes only on deploys, so a long TTL is fine.
func (s *projectService) ListStages(ctx context.Context) ([]model.ProjectStage, error) {
	if cached, err := s.rdb.Get(ctx, stageListKey).Bytes(); err == nil {
		var out []model.ProjectStage
		if err := sonic.Unmarshal(cached, &out); err == nil {
			return out, nil
		}
	}

	out, err := s.r.ListStages(ctx)
	if err != nil {
		return nil, err
	}

	if body, err := sonic.Marshal(out); err == nil {
		if err := s.rdb.Set(ctx, stageListKey, body, time.Hour).Err(); err != nil {
			s.log.Sugar().Warnw("stage cache write failed", "err", err)
		}
	}
	return out, nil
}
