package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/modules/serializer"
	"github.com/wirelance/wirelance/internal/modules/service"
)

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: s}
}

type ListCatalogReq struct {
	Stages       []string `form:"stage" json:"stages"`
	AnyVacancies bool     `form:"any_vacancies,default=false" json:"any_vacancies"`
}

// ListCatalog godoc
//
//	@Summary		List catalog
//	@Description	Public, non-archived, moderation-approved projects
//	@Tags			catalog
//	@Produce		json
//	@Param			stage			query	[]string	false	"Stage sys-name filter"
//	@Param			any_vacancies	query	boolean		false	"Only projects with vacancies"
//	@Success		200	{object}	serializer.Response{data=[]repo.CatalogProjectOutput}
//	@Router			/catalog/projects [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	req := ListCatalogReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.List(c.Request.Context(), repo.CatalogFilters{
		StageSysNames: req.Stages,
		AnyVacancies:  req.AnyVacancies,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// SearchCatalog godoc
//
//	@Summary		Search catalog
//	@Tags			catalog
//	@Produce		json
//	@Param			searchText	query	string	true	"Free-text search over name and details"
//	@Success		200	{object}	serializer.Response{data=[]repo.CatalogProjectOutput}
//	@Router			/catalog/projects/search [get]
func (h *CatalogHandler) SearchCatalog(c *gin.Context) {
	out, err := h.svc.Search(c.Request.Context(), c.Query("searchText"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// CatalogPage godoc
//
//	@Summary		Catalog page
//	@Tags			catalog
//	@Produce		json
//	@Param			page		path	integer	true	"Page number (1-based)"
//	@Param			page_size	query	integer	false	"Page size, default 20"
//	@Success		200	{object}	serializer.Response{data=service.CatalogPageOutput}
//	@Router			/catalog/projects/pagination/{page} [get]
func (h *CatalogHandler) CatalogPage(c *gin.Context) {
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
