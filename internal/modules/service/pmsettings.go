package service

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/infra/httpclient"
	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"go.uber.org/zap"
)

// CreateUserTagInput carries a new user task tag.
type CreateUserTagInput struct {
	ProjectID      int64
	TagName        string
	TagDescription string
	AuthorID       int64
}

// CreateUserStatusInput carries a new user task status bound to an
// association type.
type CreateUserStatusInput struct {
	ProjectID       int64
	StatusName      string
	StatusSysName   string
	AssociationType string
	AuthorID        int64
}

type PMSettingsService interface {
	CreateUserTag(ctx context.Context, in CreateUserTagInput) (*model.UserTaskTag, error)
	ListTags(ctx context.Context, projectID int64) ([]model.UserTaskTag, error)
	// ListSelectableStatuses resolves the statuses a task can be created
	// in through the project's template.
	ListSelectableStatuses(ctx context.Context, projectID int64) ([]model.TaskStatus, error)
	CreateUserStatus(ctx context.Context, in CreateUserStatusInput) (*model.TaskStatus, error)

	GetScrumSettings(ctx context.Context, projectID, userID int64) (*ScrumSettingsOutput, error)
	UpdateSprintDuration(ctx context.Context, projectID int64, durationDays int) error
	UpdateMoveNotCompletedTasks(ctx context.Context, projectID int64, isMove bool) error
	UpdateViewStrategy(ctx context.Context, projectID, userID int64, strategy string) error
}

// ScrumSettingsOutput bundles the scrum settings of a project for one
// user. Absent rows come back as defaults.
type ScrumSettingsOutput struct {
	SprintDurationDays int    `json:"sprint_duration_days"`
	MoveNotCompleted   bool   `json:"move_not_completed"`
	ViewStrategy       string `json:"view_strategy"`
}

// associationTypes a user status may bind to.
var associationTypes = map[string]struct{}{
	"Task":  {},
	"Epic":  {},
	"Story": {},
}

type pmSettingsService struct {
	templates repo.TemplateRepo
	settings  repo.SettingsRepo
	ops       *httpclient.OpsClient
	log       *zap.Logger
}

func NewPMSettingsService(templates repo.TemplateRepo, settings repo.SettingsRepo, ops *httpclient.OpsClient, log *zap.Logger) PMSettingsService {
	return &pmSettingsService{templates: templates, settings: settings, ops: ops, log: log}
}

// reportValidation aggregates field errors into one compound error,
// logs it and mirrors it to the ops channel. No partial write happens.
func (s *pmSettingsService) reportValidation(ctx context.Context, source string, fieldErrs []error) error {
	err := errors.Join(fieldErrs...)
	s.log.Sugar().Errorw("validation failed", "source", source, "err", err)
	s.ops.SendError(ctx, source, err)
	return err
}

func (s *pmSettingsService) CreateUserTag(ctx context.Context, in CreateUserTagInput) (*model.UserTaskTag, error) {
	var fieldErrs []error
	if in.ProjectID <= 0 {
		fieldErrs = append(fieldErrs, errors.New("project id is not set"))
	}
	if in.TagName == "" {
		fieldErrs = append(fieldErrs, errors.New("tag name is empty"))
	}
	if in.AuthorID <= 0 {
		fieldErrs = append(fieldErrs, errors.New("author id is not set"))
	}
	if len(fieldErrs) > 0 {
		return nil, s.reportValidation(ctx, "pm-settings.user-tag", fieldErrs)
	}

	tag := &model.UserTaskTag{
		ProjectID:      in.ProjectID,
		TagName:        in.TagName,
		TagDescription: in.TagDescription,
		AuthorID:       in.AuthorID,
	}
	if err := s.templates.CreateUserTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *pmSettingsService) ListTags(ctx context.Context, projectID int64) ([]model.UserTaskTag, error) {
	return s.templates.ListTags(ctx, projectID)
}

func (s *pmSettingsService) ListSelectableStatuses(ctx context.Context, projectID int64) ([]model.TaskStatus, error) {
	templateID, err := s.templates.GetProjectTemplateID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.templates.ListSelectableStatuses(ctx, templateID)
}

func (s *pmSettingsService) CreateUserStatus(ctx context.Context, in CreateUserStatusInput) (*model.TaskStatus, error) {
	var fieldErrs []error
	if in.ProjectID <= 0 {
		fieldErrs = append(fieldErrs, errors.New("project id is not set"))
	}
	if in.StatusName == "" {
		fieldErrs = append(fieldErrs, errors.New("status name is empty"))
	}
	if in.StatusSysName == "" {
		fieldErrs = append(fieldErrs, errors.New("status system name is empty"))
	}
	if _, ok := associationTypes[in.AssociationType]; !ok {
		fieldErrs = append(fieldErrs, errors.New("unknown association type"))
	}
	if in.AuthorID <= 0 {
		fieldErrs = append(fieldErrs, errors.New("author id is not set"))
	}
	if len(fieldErrs) > 0 {
		return nil, s.reportValidation(ctx, "pm-settings.user-task-status", fieldErrs)
	}

	templateID, err := s.templates.GetProjectTemplateID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	status := &model.TaskStatus{
		TemplateID:      templateID,
		StatusName:      in.StatusName,
		StatusSysName:   in.StatusSysName,
		AssociationType: in.AssociationType,
		AuthorID:        in.AuthorID,
	}
	if err := s.templates.CreateUserStatus(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

func (s *pmSettingsService) GetScrumSettings(ctx context.Context, projectID, userID int64) (*ScrumSettingsOutput, error) {
	out := &ScrumSettingsOutput{
		SprintDurationDays: 14,
		MoveNotCompleted:   true,
		ViewStrategy:       "kanban",
	}

	duration, err := s.settings.GetSprintDuration(ctx, projectID)
	switch {
	case err == nil:
		out.SprintDurationDays = duration.DurationDays
	case !errors.Is(err, repo.ErrNotFound):
		return nil, err
	}

	move, err := s.settings.GetMoveNotCompletedTasks(ctx, projectID)
	switch {
	case err == nil:
		out.MoveNotCompleted = move.IsMove
	case !errors.Is(err, repo.ErrNotFound):
		return nil, err
	}

	strategy, err := s.settings.GetViewStrategy(ctx, projectID, userID)
	switch {
	case err == nil:
		out.ViewStrategy = strategy.Strategy
	case !errors.Is(err, repo.ErrNotFound):
		return nil, err
	}

	return out, nil
}

func (s *pmSettingsService) UpdateSprintDuration(ctx context.Context, projectID int64, durationDays int) error {
	if durationDays < 1 || durationDays > 60 {
		return s.reportValidation(ctx, "pm-settings.sprint-duration",
			[]error{errors.New("sprint duration must be between 1 and 60 days")})
	}
	return s.settings.UpsertSprintDuration(ctx, projectID, durationDays)
}

func (s *pmSettingsService) UpdateMoveNotCompletedTasks(ctx context.Context, projectID int64, isMove bool) error {
	return s.settings.UpsertMoveNotCompletedTasks(ctx, projectID, isMove)
}

func (s *pmSettingsService) UpdateViewStrategy(ctx context.Context, projectID, userID int64, strategy string) error {
	if strategy != "kanban" && strategy != "scrum" {
		return s.reportValidation(ctx, "pm-settings.view-strategy",
			[]error{errors.New("view strategy must be kanban or scrum")})
	}
	return s.settings.UpsertViewStrategy(ctx, projectID, userID, strategy)
}
