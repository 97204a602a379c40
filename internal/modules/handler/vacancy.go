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

type VacancyHandler struct {
	svc service.VacancyService
}

func NewVacancyHandler(s service.VacancyService) *VacancyHandler {
	return &VacancyHandler{svc: s}
}

type AttachVacancyReq struct {
	VacancyID int64 `json:"vacancy_id" binding:"required,min=1"`
}

// AttachVacancy godoc
//
//	@Summary		Attach vacancy to project
//	@Tags			vacancy
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer						true	"Project ID"
//	@Param			payload		body	handler.AttachVacancyReq	true	"AttachVacancy payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response
//	@Router			/projects/{project_id}/vacancies [post]
func (h *VacancyHandler) AttachVacancy(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := AttachVacancyReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err = h.svc.Attach(c.Request.Context(), projectID, req.VacancyID)
	switch {
	case errors.Is(err, repo.ErrDuplicateVacancy):
		c.JSON(http.StatusConflict, serializer.ConflictErr("vacancy already attached", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusCreated, serializer.Response{})
	}
}

// DetachVacancy godoc
//
//	@Summary		Detach vacancy from project
//	@Tags			vacancy
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Param			vacancy_id	path	integer	true	"Vacancy ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/vacancies/{vacancy_id} [delete]
func (h *VacancyHandler) DetachVacancy(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	vacancyID, err := strconv.ParseInt(c.Param("vacancy_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	removed, err := h.svc.Detach(c.Request.Context(), projectID, vacancyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("vacancy is not attached", nil))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// ListProjectVacancies godoc
//
//	@Summary		List project vacancies
//	@Tags			vacancy
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.ProjectVacancy}
//	@Router			/projects/{project_id}/vacancies [get]
func (h *VacancyHandler) ListProjectVacancies(c *gin.Context) {
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

// ListAttachable godoc
//
//	@Summary		List attachable vacancies
//	@Description	Owner vacancies eligible for attaching: not under moderation, not rejected, not already attached
//	@Tags			vacancy
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.UserVacancy}
//	@Router			/projects/{project_id}/vacancies/available [get]
func (h *VacancyHandler) ListAttachable(c *gin.Context) {
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

	out, err := h.svc.ListAttachable(c.Request.Context(), projectID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
