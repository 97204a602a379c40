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

type SprintHandler struct {
	svc service.SprintService
}

func NewSprintHandler(s service.SprintService) *SprintHandler {
	return &SprintHandler{svc: s}
}

func sprintIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("sprint_id"), 10, 64)
}

// ListSprints godoc
//
//	@Summary		List project sprints
//	@Tags			sprint
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Sprint}
//	@Router			/projects/{project_id}/sprints [get]
func (h *SprintHandler) ListSprints(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetSprint godoc
//
//	@Summary		Get sprint
//	@Tags			sprint
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Param			sprint_id	path	integer	true	"Project sprint ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Sprint}
//	@Router			/projects/{project_id}/sprints/{sprint_id} [get]
func (h *SprintHandler) GetSprint(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	sprintID, err := sprintIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Get(c.Request.Context(), sprintID, projectID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("sprint not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: out})
	}
}

// StartSprint godoc
//
//	@Summary		Start sprint
//	@Description	Evaluate the start preconditions in order; a blocked start is a 200 with a Blocked payload, not an error
//	@Tags			sprint
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Param			sprint_id	path	integer	true	"Project sprint ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.StartResult}
//	@Router			/projects/{project_id}/sprints/{sprint_id}/start [post]
func (h *SprintHandler) StartSprint(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	sprintID, err := sprintIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	result, err := h.svc.StartSprint(c.Request.Context(), sprintID, projectID, userID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("sprint not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: result})
	}
}

type UpdateSprintNameReq struct {
	Name string `json:"name" binding:"required"`
}

// UpdateSprintName godoc
//
//	@Summary		Rename sprint
//	@Tags			sprint
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer						true	"Project ID"
//	@Param			sprint_id	path	integer						true	"Project sprint ID"
//	@Param			payload		body	handler.UpdateSprintNameReq	true	"UpdateSprintName payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/sprints/{sprint_id}/name [put]
func (h *SprintHandler) UpdateSprintName(c *gin.Context) {
	projectID, sprintID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	req := UpdateSprintNameReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	h.writeUpdateResult(c, h.svc.UpdateName(c.Request.Context(), sprintID, projectID, req.Name))
}

type UpdateSprintDetailsReq struct {
	Details string `json:"details"`
}

// UpdateSprintDetails godoc
//
//	@Summary		Update sprint details
//	@Tags			sprint
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer							true	"Project ID"
//	@Param			sprint_id	path	integer							true	"Project sprint ID"
//	@Param			payload		body	handler.UpdateSprintDetailsReq	true	"UpdateSprintDetails payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/sprints/{sprint_id}/details [put]
func (h *SprintHandler) UpdateSprintDetails(c *gin.Context) {
	projectID, sprintID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	req := UpdateSprintDetailsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	h.writeUpdateResult(c, h.svc.UpdateDetails(c.Request.Context(), sprintID, projectID, req.Details))
}

type UpsertSprintExecutorReq struct {
	ExecutorID int64 `json:"executor_id" binding:"required,min=1"`
}

// UpsertSprintExecutor godoc
//
//	@Summary		Set sprint executor
//	@Tags			sprint
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer							true	"Project ID"
//	@Param			sprint_id	path	integer							true	"Project sprint ID"
//	@Param			payload		body	handler.UpsertSprintExecutorReq	true	"UpsertSprintExecutor payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/sprints/{sprint_id}/executor [put]
func (h *SprintHandler) UpsertSprintExecutor(c *gin.Context) {
	projectID, sprintID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	req := UpsertSprintExecutorReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	h.writeUpdateResult(c, h.svc.UpsertExecutor(c.Request.Context(), sprintID, projectID, req.ExecutorID))
}

type UpsertSprintWatchersReq struct {
	WatcherIDs []int64 `json:"watcher_ids" binding:"required"`
}

// UpsertSprintWatchers godoc
//
//	@Summary		Replace sprint watchers
//	@Tags			sprint
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer							true	"Project ID"
//	@Param			sprint_id	path	integer							true	"Project sprint ID"
//	@Param			payload		body	handler.UpsertSprintWatchersReq	true	"UpsertSprintWatchers payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/sprints/{sprint_id}/watchers [put]
func (h *SprintHandler) UpsertSprintWatchers(c *gin.Context) {
	projectID, sprintID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	req := UpsertSprintWatchersReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	h.writeUpdateResult(c, h.svc.UpsertWatchers(c.Request.Context(), sprintID, projectID, req.WatcherIDs))
}

func (h *SprintHandler) pathIDs(c *gin.Context) (projectID, sprintID int64, ok bool) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return 0, 0, false
	}
	sprintID, err = sprintIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return 0, 0, false
	}
	return projectID, sprintID, true
}

func (h *SprintHandler) writeUpdateResult(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("sprint not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{})
	}
}
