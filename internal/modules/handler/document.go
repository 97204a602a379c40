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

type DocumentHandler struct {
	svc service.DocumentService
}

func NewDocumentHandler(s service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: s}
}

// UploadDocument godoc
//
//	@Summary		Upload project document
//	@Tags			document
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			project_id	path		integer	true	"Project ID"
//	@Param			file		formData	file	true	"Document file"
//	@Param			task_id		formData	integer	false	"Attach to task"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.ProjectDocument}
//	@Router			/projects/{project_id}/documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
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

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("file is required", err))
		return
	}

	var taskID *int64
	if raw := c.PostForm("task_id"); raw != "" {
		id, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("", perr))
			return
		}
		taskID = &id
	}

	doc, err := h.svc.Upload(c.Request.Context(), projectID, taskID, userID, fh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "upload failed", err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: doc})
}

// ListDocuments godoc
//
//	@Summary		List project documents
//	@Tags			document
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Param			task_id		query	integer	false	"Filter by task"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.ProjectDocument}
//	@Router			/projects/{project_id}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if raw := c.Query("task_id"); raw != "" {
		taskID, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("", perr))
			return
		}
		out, err := h.svc.ListByTask(c.Request.Context(), projectID, taskID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}
		c.JSON(http.StatusOK, serializer.Response{Data: out})
		return
	}

	out, err := h.svc.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// DownloadDocument godoc
//
//	@Summary		Presigned download URL
//	@Tags			document
//	@Produce		json
//	@Param			document_id	path	integer	true	"Document ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=string}
//	@Router			/documents/{document_id}/download [get]
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	documentID, err := strconv.ParseInt(c.Param("document_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	url, err := h.svc.DownloadURL(c.Request.Context(), documentID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("document not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "presign failed", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: url})
	}
}

// DeleteDocument godoc
//
//	@Summary		Delete document
//	@Tags			document
//	@Produce		json
//	@Param			document_id	path	integer	true	"Document ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/documents/{document_id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	documentID, err := strconv.ParseInt(c.Param("document_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err = h.svc.Remove(c.Request.Context(), documentID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("document not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "delete failed", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{})
	}
}
