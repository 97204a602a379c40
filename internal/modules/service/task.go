package service

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
)

type TaskService interface {
	Create(ctx context.Context, task *model.ProjectTask) (*model.ProjectTask, error)
	GetByNumber(ctx context.Context, projectID, taskNumber int64) (*model.ProjectTask, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.ProjectTask, error)
	UpdateStatus(ctx context.Context, projectID, taskNumber, statusID int64) error
	UpdateExecutor(ctx context.Context, projectID, taskNumber int64, executorID *int64) error
	UpdateWatchers(ctx context.Context, projectID, taskNumber int64, watcherIDs []int64) error
	UpdateTags(ctx context.Context, projectID, taskNumber int64, tagIDs []int64) error

	CreateLink(ctx context.Context, kind model.LinkType, projectID, fromTask, otherTask int64) error
	RemoveLink(ctx context.Context, kind model.LinkType, projectID, fromTask, otherTask int64) error
	ListLinks(ctx context.Context, projectID, taskID int64, kind model.LinkType) ([]model.TaskLink, error)
	ListBlocking(ctx context.Context, projectID, taskID int64) ([]model.TaskLink, error)
}

type taskService struct {
	r     repo.TaskRepo
	links repo.LinkRepo
}

func NewTaskService(r repo.TaskRepo, links repo.LinkRepo) TaskService {
	return &taskService{r: r, links: links}
}

func (s *taskService) Create(ctx context.Context, task *model.ProjectTask) (*model.ProjectTask, error) {
	if task.Name == "" {
		return nil, errors.New("task name is empty")
	}
	if err := s.r.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByNumber(ctx context.Context, projectID, taskNumber int64) (*model.ProjectTask, error) {
	return s.r.GetByNumber(ctx, projectID, taskNumber)
}

func (s *taskService) ListByProject(ctx context.Context, projectID int64) ([]model.ProjectTask, error) {
	return s.r.ListByProject(ctx, projectID)
}

func (s *taskService) UpdateStatus(ctx context.Context, projectID, taskNumber, statusID int64) error {
	return s.r.UpdateStatus(ctx, projectID, taskNumber, statusID)
}

func (s *taskService) UpdateExecutor(ctx context.Context, projectID, taskNumber int64, executorID *int64) error {
	return s.r.UpdateExecutor(ctx, projectID, taskNumber, executorID)
}

func (s *taskService) UpdateWatchers(ctx context.Context, projectID, taskNumber int64, watcherIDs []int64) error {
	return s.r.UpdateWatchers(ctx, projectID, taskNumber, watcherIDs)
}

func (s *taskService) UpdateTags(ctx context.Context, projectID, taskNumber int64, tagIDs []int64) error {
	return s.r.UpdateTags(ctx, projectID, taskNumber, tagIDs)
}

func (s *taskService) CreateLink(ctx context.Context, kind model.LinkType, projectID, fromTask, otherTask int64) error {
	if fromTask == otherTask {
		return errors.New("task cannot be linked to itself")
	}
	return s.links.Create(ctx, kind, projectID, fromTask, otherTask)
}

func (s *taskService) RemoveLink(ctx context.Context, kind model.LinkType, projectID, fromTask, otherTask int64) error {
	return s.links.Remove(ctx, kind, projectID, fromTask, otherTask)
}

func (s *taskService) ListLinks(ctx context.Context, projectID, taskID int64, kind model.LinkType) ([]model.TaskLink, error) {
	return s.links.ListByTask(ctx, projectID, taskID, kind)
}

func (s *taskService) ListBlocking(ctx context.Context, projectID, taskID int64) ([]model.TaskLink, error) {
	return s.links.ListBlocking(ctx, projectID, taskID)
}
