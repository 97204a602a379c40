package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wirelance/wirelance/internal/modules/model"
	"go.uber.org/zap"
)

// MockSprintRepo is a mock implementation of repo.SprintRepo
type MockSprintRepo struct {
	mock.Mock
}

func (m *MockSprintRepo) ListByProject(ctx context.Context, projectID int64) ([]model.Sprint, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sprint), args.Error(1)
}

func (m *MockSprintRepo) Get(ctx context.Context, projectSprintID, projectID int64) (*model.Sprint, error) {
	args := m.Called(ctx, projectSprintID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sprint), args.Error(1)
}

func (m *MockSprintRepo) HasActiveSprint(ctx context.Context, projectID int64) (bool, error) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSprintRepo) CountSprintTasks(ctx context.Context, projectSprintID, projectID int64) (int64, error) {
	args := m.Called(ctx, projectSprintID, projectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSprintRepo) Run(ctx context.Context, projectSprintID, projectID int64) error {
	args := m.Called(ctx, projectSprintID, projectID)
	return args.Error(0)
}

func (m *MockSprintRepo) UpdateName(ctx context.Context, projectSprintID, projectID int64, name string) error {
	args := m.Called(ctx, projectSprintID, projectID, name)
	return args.Error(0)
}

func (m *MockSprintRepo) UpdateDetails(ctx context.Context, projectSprintID, projectID int64, details string) error {
	args := m.Called(ctx, projectSprintID, projectID, details)
	return args.Error(0)
}

func (m *MockSprintRepo) UpsertExecutor(ctx context.Context, projectSprintID, projectID, executorID int64) error {
	args := m.Called(ctx, projectSprintID, projectID, executorID)
	return args.Error(0)
}

func (m *MockSprintRepo) UpsertWatchers(ctx context.Context, projectSprintID, projectID int64, watcherIDs []int64) error {
	args := m.Called(ctx, projectSprintID, projectID, watcherIDs)
	return args.Error(0)
}

func startableSprint() *model.Sprint {
	start := time.Now().Add(time.Hour)
	end := time.Now().Add(14 * 24 * time.Hour)
	return &model.Sprint{
		ProjectSprintID: 3,
		ProjectID:       100,
		SprintName:      "Sprint 3",
		DateStart:       &start,
		DateEnd:         &end,
		SprintStatusID:  model.SprintStatusNotStarted,
	}
}

func TestSprintService_CheckStart(t *testing.T) {
	pastEnd := time.Now().Add(-time.Hour)

	tests := []struct {
		name           string
		mutate         func(*model.Sprint)
		setup          func(*MockSprintRepo)
		expectedReason string
	}{
		{
			name: "all preconditions pass",
			setup: func(repo *MockSprintRepo) {
				repo.On("HasActiveSprint", mock.Anything, int64(100)).Return(false, nil)
				repo.On("CountSprintTasks", mock.Anything, int64(3), int64(100)).Return(int64(5), nil)
			},
			expectedReason: "",
		},
		{
			name: "another sprint already in work",
			setup: func(repo *MockSprintRepo) {
				repo.On("HasActiveSprint", mock.Anything, int64(100)).Return(true, nil)
			},
			expectedReason: "another sprint of the project is already in work",
		},
		{
			name:   "dates not set",
			mutate: func(s *model.Sprint) { s.DateStart = nil },
			setup: func(repo *MockSprintRepo) {
				repo.On("HasActiveSprint", mock.Anything, int64(100)).Return(false, nil)
			},
			expectedReason: "sprint start and end dates are not set",
		},
		{
			name:   "end date in the past",
			mutate: func(s *model.Sprint) { s.DateEnd = &pastEnd },
			setup: func(repo *MockSprintRepo) {
				repo.On("HasActiveSprint", mock.Anything, int64(100)).Return(false, nil)
			},
			expectedReason: "sprint end date is in the past",
		},
		{
			name:   "sprint already in work reports status, not the active gate",
			mutate: func(s *model.Sprint) { s.SprintStatusID = model.SprintStatusInWork },
			setup: func(repo *MockSprintRepo) {
				// HasActiveSprint must not be consulted for the sprint's own
				// InWork status, the status gate owns that reason.
			},
			expectedReason: "sprint is already InWork",
		},
		{
			name:   "sprint completed",
			mutate: func(s *model.Sprint) { s.SprintStatusID = model.SprintStatusCompleted },
			setup: func(repo *MockSprintRepo) {
				repo.On("HasActiveSprint", mock.Anything, int64(100)).Return(false, nil)
			},
			expectedReason: "sprint is already Completed",
		},
		{
			name:   "sprint closed",
			mutate: func(s *model.Sprint) { s.SprintStatusID = model.SprintStatusClosed },
			setup: func(repo *MockSprintRepo) {
				repo.On("HasActiveSprint", mock.Anything, int64(100)).Return(false, nil)
			},
			expectedReason: "sprint is already Closed",
		},
		{
			name: "no tasks in sprint",
			setup: func(repo *MockSprintRepo) {
				repo.On("HasActiveSprint", mock.Anything, int64(100)).Return(false, nil)
				repo.On("CountSprintTasks", mock.Anything, int64(3), int64(100)).Return(int64(0), nil)
			},
			expectedReason: "sprint has no tasks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockSprintRepo{}
			tt.setup(mockRepo)

			sprint := startableSprint()
			if tt.mutate != nil {
				tt.mutate(sprint)
			}

			s := &sprintService{r: mockRepo, log: zap.NewNop()}
			reason, err := s.checkStart(context.Background(), sprint)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedReason, reason)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSprintService_CheckStart_FirstFailureWins(t *testing.T) {
	// Several gates fail at once, only the earliest is reported.
	mockRepo := &MockSprintRepo{}
	mockRepo.On("HasActiveSprint", mock.Anything, int64(100)).Return(true, nil)

	sprint := startableSprint()
	sprint.DateStart = nil
	sprint.DateEnd = nil

	s := &sprintService{r: mockRepo, log: zap.NewNop()}
	reason, err := s.checkStart(context.Background(), sprint)

	require.NoError(t, err)
	assert.Equal(t, "another sprint of the project is already in work", reason)
	mockRepo.AssertExpectations(t)
}

func TestSprintService_CheckStart_RepoError(t *testing.T) {
	mockRepo := &MockSprintRepo{}
	mockRepo.On("HasActiveSprint", mock.Anything, int64(100)).Return(false, errors.New("db down"))

	s := &sprintService{r: mockRepo, log: zap.NewNop()}
	reason, err := s.checkStart(context.Background(), startableSprint())

	assert.Error(t, err)
	assert.Empty(t, reason)
	mockRepo.AssertExpectations(t)
}

func TestSprintService_StartSprint_GetError(t *testing.T) {
	mockRepo := &MockSprintRepo{}
	mockRepo.On("Get", mock.Anything, int64(3), int64(100)).Return(nil, errors.New("not found"))

	s := &sprintService{r: mockRepo, log: zap.NewNop()}
	result, err := s.StartSprint(context.Background(), 3, 100, 1)

	assert.Error(t, err)
	assert.Nil(t, result)
	mockRepo.AssertExpectations(t)
}
