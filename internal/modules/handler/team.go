package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/modules/serializer"
	"github.com/wirelance/wirelance/internal/modules/service"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(s service.TeamService) *TeamHandler {
	return &TeamHandler{svc: s}
}

// GetTeam godoc
//
//	@Summary		Get project team
//	@Tags			team
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.TeamOutput}
//	@Router			/projects/{project_id}/team [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Get(c.Request.Context(), projectID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("team not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: out})
	}
}

type InviteMemberReq struct {
	UserID    int64   `json:"user_id" binding:"required,min=1"`
	VacancyID *int64  `json:"vacancy_id"`
	Role      *string `json:"role"`
}

// InviteMember godoc
//
//	@Summary		Invite team member
//	@Tags			team
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer					true	"Project ID"
//	@Param			payload		body	handler.InviteMemberReq	true	"InviteMember payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.ProjectTeamMember}
//	@Router			/projects/{project_id}/team/members [post]
func (h *TeamHandler) InviteMember(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := InviteMemberReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	member, err := h.svc.Invite(c.Request.Context(), projectID, req.UserID, req.VacancyID, req.Role)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusCreated, serializer.Response{Data: member})
	}
}

// RemoveMember godoc
//
//	@Summary		Remove team member
//	@Tags			team
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Param			user_id		path	integer	true	"User ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/team/members/{user_id} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	removed, err := h.svc.RemoveMember(c.Request.Context(), projectID, userID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("team not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	case !removed:
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("user is not a team member", nil))
	default:
		c.JSON(http.StatusOK, serializer.Response{})
	}
}
