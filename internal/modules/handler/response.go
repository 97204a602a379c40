package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wirelance/wirelance/internal/middleware"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/modules/serializer"
	"github.com/wirelance/wirelance/internal/modules/service"
)

type ResponseHandler struct {
	svc service.ResponseService
}

func NewResponseHandler(s service.ResponseService) *ResponseHandler {
	return &ResponseHandler{svc: s}
}

type WriteResponseReq struct {
	VacancyID *int64 `json:"vacancy_id"`
}

// WriteResponse godoc
//
//	@Summary		Respond to project
//	@Description	Record the caller's interest; one response per (user, project)
//	@Tags			response
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer						true	"Project ID"
//	@Param			payload		body	handler.WriteResponseReq	false	"WriteResponse payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.ProjectResponse}
//	@Router			/projects/{project_id}/responses [post]
func (h *ResponseHandler) WriteResponse(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := WriteResponseReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	response, err := h.svc.Write(c.Request.Context(), projectID, userID, req.VacancyID)
	switch {
	case errors.Is(err, repo.ErrDuplicateResponse):
		c.JSON(http.StatusConflict, serializer.ConflictErr("response already exists", err))
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusCreated, serializer.Response{Data: response})
	}
}

// ListResponses godoc
//
//	@Summary		List project responses
//	@Tags			response
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.ProjectResponse}
//	@Router			/projects/{project_id}/responses [get]
func (h *ResponseHandler) ListResponses(c *gin.Context) {
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
