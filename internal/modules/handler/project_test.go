package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wirelance/wirelance/internal/middleware"
	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/modules/service"
)

// MockProjectService is a mock implementation of service.ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, in repo.CreateProjectInput) (*model.UserProject, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProject), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, in repo.UpdateProjectInput) (*model.UserProject, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProject), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, projectID int64) (*service.ProjectOutput, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectOutput), args.Error(1)
}

func (m *MockProjectService) SetVisibility(ctx context.Context, projectID int64, isPublic bool) error {
	args := m.Called(ctx, projectID, isPublic)
	return args.Error(0)
}

func (m *MockProjectService) Archive(ctx context.Context, projectID, userID int64) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

func (m *MockProjectService) Unarchive(ctx context.Context, projectID int64) (bool, error) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectService) Remove(ctx context.Context, projectID, userID int64) (*repo.RemoveProjectResult, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.RemoveProjectResult), args.Error(1)
}

func (m *MockProjectService) ListStages(ctx context.Context) ([]model.ProjectStage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectStage), args.Error(1)
}

func setupProjectRouter(h *ProjectHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Stand-in for the auth middleware: a fixed caller id.
	r.Use(func(c *gin.Context) { c.Set(middleware.CtxUserID, int64(7)) })

	r.POST("/projects", h.CreateProject)
	r.GET("/projects/:project_id", h.GetProject)
	r.DELETE("/projects/:project_id", h.DeleteProject)
	return r
}

func TestProjectHandler_CreateProject(t *testing.T) {
	body := CreateProjectReq{
		ProjectName:    "Marketplace redesign",
		ProjectDetails: "Rework the storefront",
		StageID:        1,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name:        "successful creation",
			requestBody: body,
			setup: func(svc *MockProjectService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(in repo.CreateProjectInput) bool {
					return in.ProjectName == body.ProjectName && in.UserID == 7
				})).Return(&model.UserProject{ProjectID: 1, ProjectName: body.ProjectName}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "duplicate name",
			requestBody: body,
			setup: func(svc *MockProjectService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrProjectNameTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing required fields",
			requestBody:    map[string]interface{}{"project_name": "x"},
			setup:          func(svc *MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "service layer error",
			requestBody: body,
			setup: func(svc *MockProjectService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockProjectService{}
			tt.setup(mockService)

			router := setupProjectRouter(NewProjectHandler(mockService))

			raw, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/projects", bytes.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_GetProject(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name: "project found",
			path: "/projects/1",
			setup: func(svc *MockProjectService) {
				svc.On("Get", mock.Anything, int64(1)).Return(&service.ProjectOutput{
					Project: &model.UserProject{ProjectID: 1},
					Stage:   &model.ProjectStage{StageID: 2},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "project missing",
			path: "/projects/99",
			setup: func(svc *MockProjectService) {
				svc.On("Get", mock.Anything, int64(99)).Return(nil, repo.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "bad id",
			path:           "/projects/abc",
			setup:          func(svc *MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockProjectService{}
			tt.setup(mockService)

			router := setupProjectRouter(NewProjectHandler(mockService))

			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name: "cascade succeeds",
			setup: func(svc *MockProjectService) {
				svc.On("Remove", mock.Anything, int64(1), int64(7)).Return(&repo.RemoveProjectResult{
					Success:     true,
					ProjectName: "Marketplace redesign",
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "project missing",
			setup: func(svc *MockProjectService) {
				svc.On("Remove", mock.Anything, int64(1), int64(7)).Return(nil, repo.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockProjectService{}
			tt.setup(mockService)

			router := setupProjectRouter(NewProjectHandler(mockService))

			req := httptest.NewRequest("DELETE", "/projects/1", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
