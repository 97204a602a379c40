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

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

func projectIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("project_id"), 10, 64)
}

type CreateProjectReq struct {
	ProjectName    string `json:"project_name" binding:"required"`
	ProjectDetails string `json:"project_details" binding:"required"`
	Conditions     string `json:"conditions"`
	Demands        string `json:"demands"`
	StageID        int    `json:"stage_id" binding:"required,min=1"`
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a project; it enters the catalog after moderation approval
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProjectReq	true	"CreateProject payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.UserProject}
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	project, err := h.svc.Create(c.Request.Context(), repo.CreateProjectInput{
		ProjectName:    req.ProjectName,
		ProjectDetails: req.ProjectDetails,
		UserID:         userID,
		Conditions:     req.Conditions,
		Demands:        req.Demands,
		StageID:        req.StageID,
	})
	if errors.Is(err, service.ErrProjectNameTaken) {
		c.JSON(http.StatusConflict, serializer.ConflictErr("project name already taken", err))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: project})
}

type UpdateProjectReq struct {
	ProjectName    string `json:"project_name" binding:"required"`
	ProjectDetails string `json:"project_details" binding:"required"`
	Conditions     string `json:"conditions"`
	Demands        string `json:"demands"`
	StageID        int    `json:"stage_id" binding:"required,min=1"`
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Update mutable fields; the project re-enters moderation
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer						true	"Project ID"
//	@Param			payload		body	handler.UpdateProjectReq	true	"UpdateProject payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.UserProject}
//	@Router			/projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := UpdateProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	project, err := h.svc.Update(c.Request.Context(), repo.UpdateProjectInput{
		ProjectID:      projectID,
		UserID:         userID,
		ProjectName:    req.ProjectName,
		ProjectDetails: req.ProjectDetails,
		Conditions:     req.Conditions,
		Demands:        req.Demands,
		StageID:        req.StageID,
	})
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
	case errors.Is(err, repo.ErrStageMissing):
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "project stage missing", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: project})
	}
}

// GetProject godoc
//
//	@Summary		Get project
//	@Description	Get a project with its resolved stage
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ProjectOutput}
//	@Router			/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Get(c.Request.Context(), projectID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
	case errors.Is(err, repo.ErrStageMissing):
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "project stage missing", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: out})
	}
}

type SetVisibilityReq struct {
	IsPublic *bool `json:"is_public" binding:"required"`
}

// SetVisibility godoc
//
//	@Summary		Toggle project visibility
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer						true	"Project ID"
//	@Param			payload		body	handler.SetVisibilityReq	true	"SetVisibility payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/visibility [put]
func (h *ProjectHandler) SetVisibility(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := SetVisibilityReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.SetVisibility(c.Request.Context(), projectID, *req.IsPublic); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// ArchiveProject godoc
//
//	@Summary		Archive project
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/archive [post]
func (h *ProjectHandler) ArchiveProject(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	if err := h.svc.Archive(c.Request.Context(), projectID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// UnarchiveProject godoc
//
//	@Summary		Unarchive project
//	@Description	Remove the archive marker; the project re-enters moderation. Absent marker is reported, not an error.
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/unarchive [post]
func (h *ProjectHandler) UnarchiveProject(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	removed, err := h.svc.Unarchive(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	if !removed {
		c.JSON(http.StatusOK, serializer.Response{Msg: "project was not archived"})
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Run the full delete cascade; all dependent rows go in one transaction
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=repo.RemoveProjectResult}
//	@Router			/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	result, err := h.svc.Remove(c.Request.Context(), projectID, userID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: result})
	}
}

// ListStages godoc
//
//	@Summary		List project stages
//	@Tags			project
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.ProjectStage}
//	@Router			/projects/stages [get]
func (h *ProjectHandler) ListStages(c *gin.Context) {
	stages, err := h.svc.ListStages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: stages})
}
