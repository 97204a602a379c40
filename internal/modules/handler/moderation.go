package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/modules/serializer"
	"github.com/wirelance/wirelance/internal/modules/service"
)

type ModerationHandler struct {
	svc service.ModerationService
}

func NewModerationHandler(s service.ModerationService) *ModerationHandler {
	return &ModerationHandler{svc: s}
}

// ListPending godoc
//
//	@Summary		List projects awaiting moderation
//	@Tags			moderation
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.UserProject}
//	@Router			/moderation/projects [get]
func (h *ModerationHandler) ListPending(c *gin.Context) {
	out, err := h.svc.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// ApproveProject godoc
//
//	@Summary		Approve project
//	@Description	Flip moderation status to approved and publish the catalog row
//	@Tags			moderation
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/moderation/projects/{project_id}/approve [post]
func (h *ModerationHandler) ApproveProject(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err = h.svc.Approve(c.Request.Context(), projectID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{})
	}
}

// RejectProject godoc
//
//	@Summary		Reject project
//	@Description	Flip moderation status to rejected and pull the catalog row
//	@Tags			moderation
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/moderation/projects/{project_id}/reject [post]
func (h *ModerationHandler) RejectProject(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err = h.svc.Reject(c.Request.Context(), projectID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{})
	}
}
