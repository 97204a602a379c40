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

type ResumeHandler struct {
	svc service.ResumeService
}

func NewResumeHandler(s service.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: s}
}

// ListResumes godoc
//
//	@Summary		List resumes
//	@Tags			resume
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Resume}
//	@Router			/resumes [get]
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// SearchResumes godoc
//
//	@Summary		Search resumes
//	@Tags			resume
//	@Produce		json
//	@Param			searchText	query	string	true	"Search over name and job"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Resume}
//	@Router			/resumes/search [get]
func (h *ResumeHandler) SearchResumes(c *gin.Context) {
	out, err := h.svc.Search(c.Request.Context(), c.Query("searchText"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// ResumesPage godoc
//
//	@Summary		Resume page
//	@Tags			resume
//	@Produce		json
//	@Param			page		path	integer	true	"Page number (1-based)"
//	@Param			page_size	query	integer	false	"Page size, default 20"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ResumePageOutput}
//	@Router			/resumes/pagination/{page} [get]
func (h *ResumeHandler) ResumesPage(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	out, err := h.svc.Page(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetResume godoc
//
//	@Summary		Get resume
//	@Tags			resume
//	@Produce		json
//	@Param			resume_id	path	integer	true	"Resume ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Resume}
//	@Router			/resumes/{resume_id} [get]
func (h *ResumeHandler) GetResume(c *gin.Context) {
	resumeID, err := strconv.ParseInt(c.Param("resume_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.GetByID(c.Request.Context(), resumeID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("resume not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: out})
	}
}
