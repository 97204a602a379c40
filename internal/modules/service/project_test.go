package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wirelance/wirelance/internal/infra/httpclient"
	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/notify"
	"go.uber.org/zap"
)

// MockProjectRepo is a mock implementation of repo.ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, in repo.CreateProjectInput) (*model.UserProject, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProject), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, in repo.UpdateProjectInput) (*model.UserProject, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProject), args.Error(1)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, projectID int64) (*model.UserProject, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProject), args.Error(1)
}

func (m *MockProjectRepo) GetStage(ctx context.Context, projectID int64) (*model.ProjectStage, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectStage), args.Error(1)
}

func (m *MockProjectRepo) CheckProjectName(ctx context.Context, projectName string, userID int64) (bool, error) {
	args := m.Called(ctx, projectName, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepo) UpdateVisible(ctx context.Context, projectID int64, isPublic bool) error {
	args := m.Called(ctx, projectID, isPublic)
	return args.Error(0)
}

func (m *MockProjectRepo) Archive(ctx context.Context, projectID, userID int64) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

func (m *MockProjectRepo) Unarchive(ctx context.Context, projectID int64) (bool, error) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepo) Remove(ctx context.Context, projectID, userID int64) (*repo.RemoveProjectResult, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.RemoveProjectResult), args.Error(1)
}

func (m *MockProjectRepo) GetTeam(ctx context.Context, projectID int64) (*model.ProjectTeam, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectTeam), args.Error(1)
}

func (m *MockProjectRepo) ListStages(ctx context.Context) ([]model.ProjectStage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectStage), args.Error(1)
}

// MockNotificationRepo is a mock implementation of repo.NotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *model.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepo) ListUnshown(ctx context.Context, userID int64) ([]model.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationRepo) MarkShown(ctx context.Context, notificationID, userID int64) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

func newTestProjectService(r *MockProjectRepo, n *MockNotificationRepo) ProjectService {
	log := zap.NewNop()
	// No redis in unit tests; the stage list path is not exercised here.
	return NewProjectService(r, n, nil, notify.NewHub(log), &httpclient.OpsClient{Logger: log}, log)
}

func TestProjectService_Create(t *testing.T) {
	input := repo.CreateProjectInput{
		ProjectName:    "Marketplace redesign",
		ProjectDetails: "Rework the storefront",
		UserID:         7,
		StageID:        1,
	}

	tests := []struct {
		name        string
		input       repo.CreateProjectInput
		setup       func(*MockProjectRepo)
		expectError bool
		errorIs     error
	}{
		{
			name:  "successful creation",
			input: input,
			setup: func(r *MockProjectRepo) {
				r.On("CheckProjectName", mock.Anything, input.ProjectName, input.UserID).Return(false, nil)
				r.On("Create", mock.Anything, input).Return(&model.UserProject{ProjectID: 1, ProjectName: input.ProjectName}, nil)
			},
		},
		{
			name:  "name already taken",
			input: input,
			setup: func(r *MockProjectRepo) {
				r.On("CheckProjectName", mock.Anything, input.ProjectName, input.UserID).Return(true, nil)
			},
			expectError: true,
			errorIs:     ErrProjectNameTaken,
		},
		{
			name:        "empty name rejected before any query",
			input:       repo.CreateProjectInput{UserID: 7},
			setup:       func(r *MockProjectRepo) {},
			expectError: true,
		},
		{
			name:  "name check error",
			input: input,
			setup: func(r *MockProjectRepo) {
				r.On("CheckProjectName", mock.Anything, input.ProjectName, input.UserID).Return(false, errors.New("db down"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockProjectRepo{}
			tt.setup(mockRepo)

			service := newTestProjectService(mockRepo, &MockNotificationRepo{})
			project, err := service.Create(context.Background(), tt.input)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, project)
				if tt.errorIs != nil {
					assert.ErrorIs(t, err, tt.errorIs)
				}
			} else {
				assert.NoError(t, err)
				require.NotNil(t, project)
				assert.Equal(t, tt.input.ProjectName, project.ProjectName)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Remove(t *testing.T) {
	result := &repo.RemoveProjectResult{
		Success:          true,
		ProjectName:      "Marketplace redesign",
		RemovedVacancies: []string{"Go developer", "Designer"},
	}

	tests := []struct {
		name        string
		setup       func(*MockProjectRepo, *MockNotificationRepo)
		expectError bool
	}{
		{
			name: "cascade succeeds and owner is notified",
			setup: func(r *MockProjectRepo, n *MockNotificationRepo) {
				r.On("Remove", mock.Anything, int64(1), int64(7)).Return(result, nil)
				n.On("Create", mock.Anything, mock.MatchedBy(func(note *model.Notification) bool {
					return note.UserID == 7 && note.NotificationType == "ProjectDeleted"
				})).Return(nil)
			},
		},
		{
			name: "cascade failure returns error without notification",
			setup: func(r *MockProjectRepo, n *MockNotificationRepo) {
				r.On("Remove", mock.Anything, int64(1), int64(7)).Return(nil, errors.New("step failed"))
			},
			expectError: true,
		},
		{
			name: "notification failure does not fail the removal",
			setup: func(r *MockProjectRepo, n *MockNotificationRepo) {
				r.On("Remove", mock.Anything, int64(1), int64(7)).Return(result, nil)
				n.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockProjectRepo{}
			mockNotifications := &MockNotificationRepo{}
			tt.setup(mockRepo, mockNotifications)

			service := newTestProjectService(mockRepo, mockNotifications)
			out, err := service.Remove(context.Background(), 1, 7)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, out)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, out)
				assert.True(t, out.Success)
				assert.Equal(t, result.ProjectName, out.ProjectName)
			}

			mockRepo.AssertExpectations(t)
			mockNotifications.AssertExpectations(t)
		})
	}
}

func TestProjectService_Get(t *testing.T) {
	project := &model.UserProject{ProjectID: 1, ProjectName: "Marketplace redesign"}
	stage := &model.ProjectStage{StageID: 2, StageSysName: "Development"}

	t.Run("project with stage", func(t *testing.T) {
		mockRepo := &MockProjectRepo{}
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(project, nil)
		mockRepo.On("GetStage", mock.Anything, int64(1)).Return(stage, nil)

		service := newTestProjectService(mockRepo, &MockNotificationRepo{})
		out, err := service.Get(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, project, out.Project)
		assert.Equal(t, stage, out.Stage)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing stage row surfaces", func(t *testing.T) {
		mockRepo := &MockProjectRepo{}
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(project, nil)
		mockRepo.On("GetStage", mock.Anything, int64(1)).Return(nil, repo.ErrStageMissing)

		service := newTestProjectService(mockRepo, &MockNotificationRepo{})
		out, err := service.Get(context.Background(), 1)

		assert.ErrorIs(t, err, repo.ErrStageMissing)
		assert.Nil(t, out)
		mockRepo.AssertExpectations(t)
	})
}
