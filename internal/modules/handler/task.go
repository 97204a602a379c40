package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wirelance/wirelance/internal/middleware"
	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/modules/serializer"
	"github.com/wirelance/wirelance/internal/modules/service"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{svc: s}
}

func taskNumberParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("task_number"), 10, 64)
}

type CreateTaskReq struct {
	Name       string  `json:"name" binding:"required"`
	Details    string  `json:"details"`
	StatusID   int64   `json:"status_id" binding:"required,min=1"`
	TypeID     int64   `json:"type_id" binding:"required,min=1"`
	PriorityID *int64  `json:"priority_id"`
	ExecutorID *int64  `json:"executor_id"`
	WatcherIDs []int64 `json:"watcher_ids"`
	TagIDs     []int64 `json:"tag_ids"`
}

// CreateTask godoc
//
//	@Summary		Create task
//	@Description	Task number is sequential per project, assigned in the creating transaction
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer					true	"Project ID"
//	@Param			payload		body	handler.CreateTaskReq	true	"CreateTask payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.ProjectTask}
//	@Router			/projects/{project_id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := CreateTaskReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	task := &model.ProjectTask{
		ProjectID:    projectID,
		Name:         req.Name,
		Details:      req.Details,
		TaskStatusID: req.StatusID,
		TaskTypeID:   req.TypeID,
		PriorityID:   req.PriorityID,
		AuthorID:     userID,
		ExecutorID:   req.ExecutorID,
	}
	if req.WatcherIDs != nil {
		task.WatcherIDs = req.WatcherIDs
	}
	if req.TagIDs != nil {
		task.TagIDs = req.TagIDs
	}

	out, err := h.svc.Create(c.Request.Context(), task)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// GetTask godoc
//
//	@Summary		Get task by number
//	@Tags			task
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Param			task_number	path	integer	true	"Per-project task number"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ProjectTask}
//	@Router			/projects/{project_id}/tasks/{task_number} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	taskNumber, err := taskNumberParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.GetByNumber(c.Request.Context(), projectID, taskNumber)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("task not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: out})
	}
}

// ListTasks godoc
//
//	@Summary		List project tasks
//	@Tags			task
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.ProjectTask}
//	@Router			/projects/{project_id}/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
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

type UpdateTaskStatusReq struct {
	StatusID int64 `json:"status_id" binding:"required,min=1"`
}

// UpdateTaskStatus godoc
//
//	@Summary		Change task status
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer						true	"Project ID"
//	@Param			task_number	path	integer						true	"Per-project task number"
//	@Param			payload		body	handler.UpdateTaskStatusReq	true	"UpdateTaskStatus payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/tasks/{task_number}/status [put]
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	taskNumber, err := taskNumberParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := UpdateTaskStatusReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err = h.svc.UpdateStatus(c.Request.Context(), projectID, taskNumber, req.StatusID)
	h.writeUpdateResult(c, err)
}

type UpdateTaskExecutorReq struct {
	ExecutorID *int64 `json:"executor_id"`
}

// UpdateTaskExecutor godoc
//
//	@Summary		Change task executor
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer							true	"Project ID"
//	@Param			task_number	path	integer							true	"Per-project task number"
//	@Param			payload		body	handler.UpdateTaskExecutorReq	true	"UpdateTaskExecutor payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/tasks/{task_number}/executor [put]
func (h *TaskHandler) UpdateTaskExecutor(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	taskNumber, err := taskNumberParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := UpdateTaskExecutorReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err = h.svc.UpdateExecutor(c.Request.Context(), projectID, taskNumber, req.ExecutorID)
	h.writeUpdateResult(c, err)
}

type UpdateTaskWatchersReq struct {
	WatcherIDs []int64 `json:"watcher_ids" binding:"required"`
}

// UpdateTaskWatchers godoc
//
//	@Summary		Replace task watchers
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer							true	"Project ID"
//	@Param			task_number	path	integer							true	"Per-project task number"
//	@Param			payload		body	handler.UpdateTaskWatchersReq	true	"UpdateTaskWatchers payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/tasks/{task_number}/watchers [put]
func (h *TaskHandler) UpdateTaskWatchers(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	taskNumber, err := taskNumberParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := UpdateTaskWatchersReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err = h.svc.UpdateWatchers(c.Request.Context(), projectID, taskNumber, req.WatcherIDs)
	h.writeUpdateResult(c, err)
}

type UpdateTaskTagsReq struct {
	TagIDs []int64 `json:"tag_ids" binding:"required"`
}

// UpdateTaskTags godoc
//
//	@Summary		Replace task tags
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer						true	"Project ID"
//	@Param			task_number	path	integer						true	"Per-project task number"
//	@Param			payload		body	handler.UpdateTaskTagsReq	true	"UpdateTaskTags payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/tasks/{task_number}/tags [put]
func (h *TaskHandler) UpdateTaskTags(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	taskNumber, err := taskNumberParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := UpdateTaskTagsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err = h.svc.UpdateTags(c.Request.Context(), projectID, taskNumber, req.TagIDs)
	h.writeUpdateResult(c, err)
}

func (h *TaskHandler) writeUpdateResult(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("task not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{})
	}
}

type TaskLinkReq struct {
	LinkType   string `json:"link_type" binding:"required"`
	FromTaskID int64  `json:"from_task_id" binding:"required,min=1"`
	ToTaskID   int64  `json:"to_task_id" binding:"required,min=1"`
}

// CreateTaskLink godoc
//
//	@Summary		Link tasks
//	@Description	Create a mirrored link pair; both directions are written in one transaction
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer				true	"Project ID"
//	@Param			payload		body	handler.TaskLinkReq	true	"TaskLink payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response
//	@Router			/projects/{project_id}/task-links [post]
func (h *TaskHandler) CreateTaskLink(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := TaskLinkReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	kind, err := model.ParseLinkType(req.LinkType)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.CreateLink(c.Request.Context(), kind, projectID, req.FromTaskID, req.ToTaskID); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{})
}

// RemoveTaskLink godoc
//
//	@Summary		Unlink tasks
//	@Description	Delete both directions of the mirrored pair in one transaction
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer				true	"Project ID"
//	@Param			payload		body	handler.TaskLinkReq	true	"TaskLink payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/task-links [delete]
func (h *TaskHandler) RemoveTaskLink(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := TaskLinkReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	kind, err := model.ParseLinkType(req.LinkType)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.RemoveLink(c.Request.Context(), kind, projectID, req.FromTaskID, req.ToTaskID); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// ListTaskLinks godoc
//
//	@Summary		List task links
//	@Tags			task
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Param			task_number	path	integer	true	"Task ID"
//	@Param			link_type	query	string	true	"Link kind: Link, Parent, Child or Depend"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.TaskLink}
//	@Router			/projects/{project_id}/tasks/{task_number}/links [get]
func (h *TaskHandler) ListTaskLinks(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	taskID, err := taskNumberParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	kind, err := model.ParseLinkType(c.Query("link_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.ListLinks(c.Request.Context(), projectID, taskID, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// ListBlockingLinks godoc
//
//	@Summary		List links blocking a task
//	@Tags			task
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Param			task_number	path	integer	true	"Task ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.TaskLink}
//	@Router			/projects/{project_id}/tasks/{task_number}/blocking [get]
func (h *TaskHandler) ListBlockingLinks(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	taskID, err := taskNumberParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.ListBlocking(c.Request.Context(), projectID, taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
