package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wirelance/wirelance/internal/infra/httpclient"
	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"go.uber.org/zap"
)

// MockTemplateRepo is a mock implementation of repo.TemplateRepo
type MockTemplateRepo struct {
	mock.Mock
}

func (m *MockTemplateRepo) GetProjectTemplateID(ctx context.Context, projectID int64) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTemplateRepo) ListSelectableStatuses(ctx context.Context, templateID int64) ([]model.TaskStatus, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TaskStatus), args.Error(1)
}

func (m *MockTemplateRepo) CreateUserStatus(ctx context.Context, status *model.TaskStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockTemplateRepo) CreateUserTag(ctx context.Context, tag *model.UserTaskTag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTemplateRepo) ListTags(ctx context.Context, projectID int64) ([]model.UserTaskTag, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserTaskTag), args.Error(1)
}

// MockSettingsRepo is a mock implementation of repo.SettingsRepo
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) GetMoveNotCompletedTasks(ctx context.Context, projectID int64) (*model.MoveNotCompletedTasksSetting, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MoveNotCompletedTasksSetting), args.Error(1)
}

func (m *MockSettingsRepo) UpsertMoveNotCompletedTasks(ctx context.Context, projectID int64, isMove bool) error {
	args := m.Called(ctx, projectID, isMove)
	return args.Error(0)
}

func (m *MockSettingsRepo) GetSprintDuration(ctx context.Context, projectID int64) (*model.SprintDurationSetting, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SprintDurationSetting), args.Error(1)
}

func (m *MockSettingsRepo) UpsertSprintDuration(ctx context.Context, projectID int64, durationDays int) error {
	args := m.Called(ctx, projectID, durationDays)
	return args.Error(0)
}

func (m *MockSettingsRepo) GetViewStrategy(ctx context.Context, projectID, userID int64) (*model.UserViewStrategy, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserViewStrategy), args.Error(1)
}

func (m *MockSettingsRepo) UpsertViewStrategy(ctx context.Context, projectID, userID int64, strategy string) error {
	args := m.Called(ctx, projectID, userID, strategy)
	return args.Error(0)
}

func newTestPMSettingsService(templates *MockTemplateRepo, settings *MockSettingsRepo) PMSettingsService {
	log := zap.NewNop()
	return NewPMSettingsService(templates, settings, &httpclient.OpsClient{Logger: log}, log)
}

func TestPMSettingsService_CreateUserTag_Validation(t *testing.T) {
	tests := []struct {
		name           string
		input          CreateUserTagInput
		expectedErrors []string
	}{
		{
			name:           "missing project id",
			input:          CreateUserTagInput{TagName: "backend", AuthorID: 7},
			expectedErrors: []string{"project id is not set"},
		},
		{
			name:           "missing tag name",
			input:          CreateUserTagInput{ProjectID: 1, AuthorID: 7},
			expectedErrors: []string{"tag name is empty"},
		},
		{
			name:  "all fields missing are reported together",
			input: CreateUserTagInput{},
			expectedErrors: []string{
				"project id is not set",
				"tag name is empty",
				"author id is not set",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			templates := &MockTemplateRepo{}
			service := newTestPMSettingsService(templates, &MockSettingsRepo{})

			tag, err := service.CreateUserTag(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, tag)
			for _, msg := range tt.expectedErrors {
				assert.Contains(t, err.Error(), msg)
			}
			// No write may happen on validation failure.
			templates.AssertNotCalled(t, "CreateUserTag", mock.Anything, mock.Anything)
		})
	}
}

func TestPMSettingsService_CreateUserTag(t *testing.T) {
	templates := &MockTemplateRepo{}
	templates.On("CreateUserTag", mock.Anything, mock.MatchedBy(func(tag *model.UserTaskTag) bool {
		return tag.ProjectID == 1 && tag.TagName == "backend" && tag.AuthorID == 7
	})).Return(nil)

	service := newTestPMSettingsService(templates, &MockSettingsRepo{})
	tag, err := service.CreateUserTag(context.Background(), CreateUserTagInput{
		ProjectID: 1,
		TagName:   "backend",
		AuthorID:  7,
	})

	require.NoError(t, err)
	assert.Equal(t, "backend", tag.TagName)
	templates.AssertExpectations(t)
}

func TestPMSettingsService_CreateUserStatus_AssociationType(t *testing.T) {
	tests := []struct {
		name        string
		association string
		expectError bool
	}{
		{name: "task", association: "Task"},
		{name: "epic", association: "Epic"},
		{name: "story", association: "Story"},
		{name: "unknown", association: "Milestone", expectError: true},
		{name: "empty", association: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			templates := &MockTemplateRepo{}
			if !tt.expectError {
				templates.On("GetProjectTemplateID", mock.Anything, int64(1)).Return(int64(5), nil)
				templates.On("CreateUserStatus", mock.Anything, mock.MatchedBy(func(status *model.TaskStatus) bool {
					return status.TemplateID == 5 && status.AssociationType == tt.association
				})).Return(nil)
			}

			service := newTestPMSettingsService(templates, &MockSettingsRepo{})
			status, err := service.CreateUserStatus(context.Background(), CreateUserStatusInput{
				ProjectID:       1,
				StatusName:      "In Review",
				StatusSysName:   "InReview",
				AssociationType: tt.association,
				AuthorID:        7,
			})

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unknown association type")
				assert.Nil(t, status)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, status)
				assert.Equal(t, int64(5), status.TemplateID)
			}
			templates.AssertExpectations(t)
		})
	}
}

func TestPMSettingsService_GetScrumSettings_Defaults(t *testing.T) {
	settings := &MockSettingsRepo{}
	settings.On("GetSprintDuration", mock.Anything, int64(1)).Return(nil, repo.ErrNotFound)
	settings.On("GetMoveNotCompletedTasks", mock.Anything, int64(1)).Return(nil, repo.ErrNotFound)
	settings.On("GetViewStrategy", mock.Anything, int64(1), int64(7)).Return(nil, repo.ErrNotFound)

	service := newTestPMSettingsService(&MockTemplateRepo{}, settings)
	out, err := service.GetScrumSettings(context.Background(), 1, 7)

	require.NoError(t, err)
	assert.Equal(t, 14, out.SprintDurationDays)
	assert.True(t, out.MoveNotCompleted)
	assert.Equal(t, "kanban", out.ViewStrategy)
	settings.AssertExpectations(t)
}

func TestPMSettingsService_GetScrumSettings_StoredValues(t *testing.T) {
	settings := &MockSettingsRepo{}
	settings.On("GetSprintDuration", mock.Anything, int64(1)).Return(&model.SprintDurationSetting{DurationDays: 21}, nil)
	settings.On("GetMoveNotCompletedTasks", mock.Anything, int64(1)).Return(&model.MoveNotCompletedTasksSetting{IsMove: false}, nil)
	settings.On("GetViewStrategy", mock.Anything, int64(1), int64(7)).Return(&model.UserViewStrategy{Strategy: "scrum"}, nil)

	service := newTestPMSettingsService(&MockTemplateRepo{}, settings)
	out, err := service.GetScrumSettings(context.Background(), 1, 7)

	require.NoError(t, err)
	assert.Equal(t, 21, out.SprintDurationDays)
	assert.False(t, out.MoveNotCompleted)
	assert.Equal(t, "scrum", out.ViewStrategy)
	settings.AssertExpectations(t)
}

func TestPMSettingsService_UpdateSprintDuration(t *testing.T) {
	tests := []struct {
		name        string
		days        int
		expectError bool
	}{
		{name: "lower bound", days: 1},
		{name: "upper bound", days: 60},
		{name: "typical", days: 14},
		{name: "zero", days: 0, expectError: true},
		{name: "negative", days: -5, expectError: true},
		{name: "too long", days: 61, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &MockSettingsRepo{}
			if !tt.expectError {
				settings.On("UpsertSprintDuration", mock.Anything, int64(1), tt.days).Return(nil)
			}

			service := newTestPMSettingsService(&MockTemplateRepo{}, settings)
			err := service.UpdateSprintDuration(context.Background(), 1, tt.days)

			if tt.expectError {
				assert.Error(t, err)
				settings.AssertNotCalled(t, "UpsertSprintDuration", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			settings.AssertExpectations(t)
		})
	}
}

func TestPMSettingsService_UpdateViewStrategy(t *testing.T) {
	tests := []struct {
		name        string
		strategy    string
		expectError bool
	}{
		{name: "kanban", strategy: "kanban"},
		{name: "scrum", strategy: "scrum"},
		{name: "unknown", strategy: "gantt", expectError: true},
		{name: "empty", strategy: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &MockSettingsRepo{}
			if !tt.expectError {
				settings.On("UpsertViewStrategy", mock.Anything, int64(1), int64(7), tt.strategy).Return(nil)
			}

			service := newTestPMSettingsService(&MockTemplateRepo{}, settings)
			err := service.UpdateViewStrategy(context.Background(), 1, 7, tt.strategy)

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "view strategy must be kanban or scrum")
			} else {
				assert.NoError(t, err)
			}
			settings.AssertExpectations(t)
		})
	}
}
