package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brainbridge/catalog-gateway/internal/models"
	"github.com/brainbridge/catalog-gateway/internal/service"
	appErrors "github.com/brainbridge/catalog-gateway/pkg/errors"
	"github.com/brainbridge/catalog-gateway/pkg/response"
)

type catalogViewService interface {
	Create(ctx context.Context, source service.Source, token string) (models.ViewSnapshot, error)
	Get(id string) (models.ViewSnapshot, error)
	SetSearch(id, query string) (models.ViewSnapshot, error)
	SetCategory(id, category string) (models.ViewSnapshot, error)
	ToggleFilter(id string, group models.FilterGroup, key string) (models.ViewSnapshot, error)
	ClearFilters(id string) (models.ViewSnapshot, error)
	SetPage(id string, page int) (models.ViewSnapshot, error)
	NextPage(id string) (models.ViewSnapshot, error)
	PrevPage(id string) (models.ViewSnapshot, error)
	ToggleBookmark(ctx context.Context, id, courseID, requestToken string) (models.ViewSnapshot, error)
	DismissNotification(id string) (models.ViewSnapshot, error)
	Delete(id string) error
}

// CreateViewRequest selects the listing a new view renders.
type CreateViewRequest struct {
	Source string `json:"source"`
}

// SearchRequest updates the free-text query of a view.
type SearchRequest struct {
	Query string `json:"query"`
}

// CategoryRequest activates a category tab.
type CategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// FilterToggleRequest flips one filter flag.
type FilterToggleRequest struct {
	Group string `json:"group" binding:"required"`
	Key   string `json:"key" binding:"required"`
}

// PageRequest moves the pagination cursor.
type PageRequest struct {
	Page int `json:"page" binding:"required"`
}

// ViewHandler exposes catalog view sessions over HTTP.
type ViewHandler struct {
	service catalogViewService
}

// NewViewHandler constructs a view handler.
func NewViewHandler(svc catalogViewService) *ViewHandler {
	return &ViewHandler{service: svc}
}

// Create godoc
// @Summary Create a catalog view session
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body CreateViewRequest false "View options"
// @Success 201 {object} response.Envelope
// @Router /catalog/views [post]
func (h *ViewHandler) Create(c *gin.Context) {
	var req CreateViewRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if req.Source == "" {
		req.Source = string(service.SourceAll)
	}

	snapshot, err := h.service.Create(c.Request.Context(), service.Source(req.Source), tokenFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, snapshot)
}

// Get godoc
// @Summary Get the current snapshot of a view
// @Tags Catalog
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Envelope
// @Router /catalog/views/{id} [get]
func (h *ViewHandler) Get(c *gin.Context) {
	snapshot, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snapshot)
}

// Search godoc
// @Summary Update the search query
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param payload body SearchRequest true "Search query"
// @Success 200 {object} response.Envelope
// @Router /catalog/views/{id}/search [post]
func (h *ViewHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	snapshot, err := h.service.SetSearch(c.Param("id"), req.Query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snapshot)
}

// Category godoc
// @Summary Activate a category tab
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param payload body CategoryRequest true "Category"
// @Success 200 {object} response.Envelope
// @Router /catalog/views/{id}/category [post]
func (h *ViewHandler) Category(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	snapshot, err := h.service.SetCategory(c.Param("id"), req.Category)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snapshot)
}

// ToggleFilter godoc
// @Summary Toggle one filter flag
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param payload body FilterToggleRequest true "Filter flag"
// @Success 200 {object} response.Envelope
// @Router /catalog/views/{id}/filters [post]
func (h *ViewHandler) ToggleFilter(c *gin.Context) {
	var req FilterToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	snapshot, err := h.service.ToggleFilter(c.Param("id"), models.FilterGroup(req.Group), req.Key)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snapshot)
}

// ClearFilters godoc
// @Summary Reset all filter flags
// @Tags Catalog
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Envelope
// @Router /catalog/views/{id}/filters [delete]
func (h *ViewHandler) ClearFilters(c *gin.Context) {
	snapshot, err := h.service.ClearFilters(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snapshot)
}

// SetPage godoc
// @Summary Move the pagination cursor
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param payload body PageRequest true "Page number"
// @Success 200 {object} response.Envelope
// @Router /catalog/views/{id}/page [post]
func (h *ViewHandler) SetPage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	snapshot, err := h.service.SetPage(c.Param("id"), req.Page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snapshot)
}

// NextPage godoc
// @Summary Advance to the next page
// @Tags Catalog
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Envelope
// @Router /catalog/views/{id}/page/next [post]
func (h *ViewHandler) NextPage(c *gin.Context) {
	snapshot, err := h.service.NextPage(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snapshot)
}

// PrevPage godoc
// @Summary Move to the previous page
// @Tags Catalog
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Envelope
// @Router /catalog/views/{id}/page/previous [post]
func (h *ViewHandler) PrevPage(c *gin.Context) {
	snapshot, err := h.service.PrevPage(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snapshot)
}

// ToggleBookmark godoc
// @Summary Toggle a bookmark for a course
// @Tags Bookmarks
// @Produce json
// @Param id path string true "View ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /catalog/views/{id}/bookmarks/{courseId} [post]
func (h *ViewHandler) ToggleBookmark(c *gin.Context) {
	snapshot, err := h.service.ToggleBookmark(c.Request.Context(), c.Param("id"), c.Param("courseId"), tokenFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snapshot)
}

// DismissNotification godoc
// @Summary Dismiss the active notification
// @Tags Catalog
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Envelope
// @Router /catalog/views/{id}/notification [delete]
func (h *ViewHandler) DismissNotification(c *gin.Context) {
	snapshot, err := h.service.DismissNotification(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snapshot)
}

// Delete godoc
// @Summary Discard a view session
// @Tags Catalog
// @Produce json
// @Param id path string true "View ID"
// @Success 204
// @Router /catalog/views/{id} [delete]
func (h *ViewHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
