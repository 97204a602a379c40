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

type WikiHandler struct {
	svc service.WikiService
}

func NewWikiHandler(s service.WikiService) *WikiHandler {
	return &WikiHandler{svc: s}
}

func pageIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("page_id"), 10, 64)
}

// GetWikiTree godoc
//
//	@Summary		Get project wiki
//	@Description	Whole wiki tree with folders and pages; created lazily on first access
//	@Tags			wiki
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.WikiTreeOutput}
//	@Router			/projects/{project_id}/wiki [get]
func (h *WikiHandler) GetWikiTree(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.GetTree(c.Request.Context(), projectID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: out})
	}
}

type CreateWikiFolderReq struct {
	FolderName     string `json:"folder_name" binding:"required"`
	ParentFolderID *int64 `json:"parent_folder_id"`
}

// CreateWikiFolder godoc
//
//	@Summary		Create wiki folder
//	@Tags			wiki
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer						true	"Project ID"
//	@Param			payload		body	handler.CreateWikiFolderReq	true	"CreateWikiFolder payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.WikiFolder}
//	@Router			/projects/{project_id}/wiki/folders [post]
func (h *WikiHandler) CreateWikiFolder(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := CreateWikiFolderReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	folder, err := h.svc.CreateFolder(c.Request.Context(), projectID, req.FolderName, req.ParentFolderID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("wiki tree not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusCreated, serializer.Response{Data: folder})
	}
}

type CreateWikiPageReq struct {
	PageName string `json:"page_name" binding:"required"`
	FolderID *int64 `json:"folder_id"`
}

// CreateWikiPage godoc
//
//	@Summary		Create wiki page
//	@Tags			wiki
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	integer						true	"Project ID"
//	@Param			payload		body	handler.CreateWikiPageReq	true	"CreateWikiPage payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.WikiPage}
//	@Router			/projects/{project_id}/wiki/pages [post]
func (h *WikiHandler) CreateWikiPage(c *gin.Context) {
	projectID, err := projectIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := CreateWikiPageReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	page, err := h.svc.CreatePage(c.Request.Context(), projectID, req.FolderID, req.PageName)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("wiki tree not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusCreated, serializer.Response{Data: page})
	}
}

// GetWikiPage godoc
//
//	@Summary		Get wiki page
//	@Tags			wiki
//	@Produce		json
//	@Param			page_id	path	integer	true	"Page ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.WikiPage}
//	@Router			/wiki/pages/{page_id} [get]
func (h *WikiHandler) GetWikiPage(c *gin.Context) {
	pageID, err := pageIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	page, err := h.svc.GetPage(c.Request.Context(), pageID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("page not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: page})
	}
}

type UpdateWikiPageReq struct {
	PageName *string `json:"page_name"`
	PageText *string `json:"page_text"`
}

// UpdateWikiPage godoc
//
//	@Summary		Update wiki page
//	@Tags			wiki
//	@Accept			json
//	@Produce		json
//	@Param			page_id	path	integer						true	"Page ID"
//	@Param			payload	body	handler.UpdateWikiPageReq	true	"UpdateWikiPage payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/wiki/pages/{page_id} [put]
func (h *WikiHandler) UpdateWikiPage(c *gin.Context) {
	pageID, err := pageIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := UpdateWikiPageReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	ctx := c.Request.Context()
	if req.PageName != nil {
		if err := h.svc.UpdatePageName(ctx, pageID, *req.PageName); err != nil {
			h.writePageError(c, err)
			return
		}
	}
	if req.PageText != nil {
		if err := h.svc.UpdatePageText(ctx, pageID, *req.PageText); err != nil {
			h.writePageError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// DeleteWikiPage godoc
//
//	@Summary		Delete wiki page
//	@Tags			wiki
//	@Produce		json
//	@Param			page_id	path	integer	true	"Page ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/wiki/pages/{page_id} [delete]
func (h *WikiHandler) DeleteWikiPage(c *gin.Context) {
	pageID, err := pageIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.RemovePage(c.Request.Context(), pageID); err != nil {
		h.writePageError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

func (h *WikiHandler) writePageError(c *gin.Context, err error) {
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("page not found", err))
		return
	}
	c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
}
