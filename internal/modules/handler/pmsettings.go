package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wirelance/wirelance/internal/middleware"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/modules/serializer"
	"github.com/wirelance/wirelance/internal/modules/service"
)

type PMSettingsHandler struct {
	svc service.PMSettingsService
}

func NewPMSettingsHandler(s service.PMSettingsService) *PMSettingsHandler {
	return &PMSettingsHandler{svc: s}
}

type CreateUserTagReq struct {
	ProjectID      int64  `json:"project_id" binding:"required,min=1"`
	TagName        string `json:"tag_name" binding:"required"`
	TagDescription string `json:"tag_description"`
}

// CreateUserTag godoc
//
//	@Summary		Create task tag
//	@Tags			pm-settings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateUserTagReq	true	"CreateUserTag payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.UserTaskTag}
//	@Router			/project-managment-settings/user-tag [post]
func (h *PMSettingsHandler) CreateUserTag(c *gin.Context) {
	req := CreateUserTagReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	tag, err := h.svc.CreateUserTag(c.Request.Context(), service.CreateUserTagInput{
		ProjectID:      req.ProjectID,
		TagName:        req.TagName,
		TagDescription: req.TagDescription,
		AuthorID:       userID,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: tag})
}

// ListSelectableStatuses godoc
//
//	@Summary		Selectable create-task statuses
//	@Description	Statuses a task may be created in, resolved through the project's template
//	@Tags			pm-settings
//	@Produce		json
//	@Param			projectId	query	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.TaskStatus}
//	@Router			/project-managment-settings/select-create-task-statuses [get]
func (h *PMSettingsHandler) ListSelectableStatuses(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Query("projectId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.ListSelectableStatuses(c.Request.Context(), projectID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project template not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: out})
	}
}

type CreateUserStatusReq struct {
	ProjectID       int64  `json:"project_id" binding:"required,min=1"`
	StatusName      string `json:"status_name" binding:"required"`
	StatusSysName   string `json:"status_sys_name" binding:"required"`
	AssociationType string `json:"association_type" binding:"required"`
}

// CreateUserStatus godoc
//
//	@Summary		Create task status
//	@Description	Create a status bound to an association type on top of the template's built-in set
//	@Tags			pm-settings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateUserStatusReq	true	"CreateUserStatus payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.TaskStatus}
//	@Router			/project-managment-settings/user-task-status [post]
func (h *PMSettingsHandler) CreateUserStatus(c *gin.Context) {
	req := CreateUserStatusReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	status, err := h.svc.CreateUserStatus(c.Request.Context(), service.CreateUserStatusInput{
		ProjectID:       req.ProjectID,
		StatusName:      req.StatusName,
		StatusSysName:   req.StatusSysName,
		AssociationType: req.AssociationType,
		AuthorID:        userID,
	})
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project template not found", err))
	case err != nil:
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: status})
	}
}

// ListTags godoc
//
//	@Summary		List task tags
//	@Tags			pm-settings
//	@Produce		json
//	@Param			projectId	query	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.UserTaskTag}
//	@Router			/project-managment-settings/user-tags [get]
func (h *PMSettingsHandler) ListTags(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Query("projectId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.ListTags(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetScrumSettings godoc
//
//	@Summary		Get scrum settings
//	@Tags			pm-settings
//	@Produce		json
//	@Param			projectId	query	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ScrumSettingsOutput}
//	@Router			/project-managment-settings/scrum [get]
func (h *PMSettingsHandler) GetScrumSettings(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Query("projectId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	out, err := h.svc.GetScrumSettings(c.Request.Context(), projectID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

type UpdateSprintDurationReq struct {
	ProjectID    int64 `json:"project_id" binding:"required,min=1"`
	DurationDays int   `json:"duration_days" binding:"required"`
}

// UpdateSprintDuration godoc
//
//	@Summary		Set sprint duration
//	@Tags			pm-settings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.UpdateSprintDurationReq	true	"UpdateSprintDuration payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/project-managment-settings/sprint-duration [put]
func (h *PMSettingsHandler) UpdateSprintDuration(c *gin.Context) {
	req := UpdateSprintDurationReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.UpdateSprintDuration(c.Request.Context(), req.ProjectID, req.DurationDays); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

type UpdateMoveNotCompletedReq struct {
	ProjectID int64 `json:"project_id" binding:"required,min=1"`
	IsMove    *bool `json:"is_move" binding:"required"`
}

// UpdateMoveNotCompletedTasks godoc
//
//	@Summary		Set move-not-completed-tasks
//	@Tags			pm-settings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.UpdateMoveNotCompletedReq	true	"UpdateMoveNotCompletedTasks payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/project-managment-settings/move-not-completed-tasks [put]
func (h *PMSettingsHandler) UpdateMoveNotCompletedTasks(c *gin.Context) {
	req := UpdateMoveNotCompletedReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.UpdateMoveNotCompletedTasks(c.Request.Context(), req.ProjectID, *req.IsMove); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

type UpdateViewStrategyReq struct {
	ProjectID int64  `json:"project_id" binding:"required,min=1"`
	Strategy  string `json:"strategy" binding:"required"`
}

// UpdateViewStrategy godoc
//
//	@Summary		Set board view strategy
//	@Tags			pm-settings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.UpdateViewStrategyReq	true	"UpdateViewStrategy payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/project-managment-settings/view-strategy [put]
func (h *PMSettingsHandler) UpdateViewStrategy(c *gin.Context) {
	req := UpdateViewStrategyReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	if err := h.svc.UpdateViewStrategy(c.Request.Context(), req.ProjectID, userID, req.Strategy); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
