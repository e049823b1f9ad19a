package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainbridge/catalog-gateway/internal/middleware"
	"github.com/brainbridge/catalog-gateway/internal/models"
	"github.com/brainbridge/catalog-gateway/internal/service"
	appErrors "github.com/brainbridge/catalog-gateway/pkg/errors"
	"github.com/brainbridge/catalog-gateway/pkg/response"
)

type mockViewService struct {
	snapshot models.ViewSnapshot
	err      error

	createdSource service.Source
	createdToken  string
	searched      string
	category      string
	toggledGroup  models.FilterGroup
	toggledKey    string
	page          int
	toggledCourse string
	toggleToken   string
	deleted       string
}

func (m *mockViewService) Create(ctx context.Context, source service.Source, token string) (models.ViewSnapshot, error) {
	m.createdSource = source
	m.createdToken = token
	return m.snapshot, m.err
}

func (m *mockViewService) Get(id string) (models.ViewSnapshot, error) {
	return m.snapshot, m.err
}

func (m *mockViewService) SetSearch(id, query string) (models.ViewSnapshot, error) {
	m.searched = query
	return m.snapshot, m.err
}

func (m *mockViewService) SetCategory(id, category string) (models.ViewSnapshot, error) {
	m.category = category
	return m.snapshot, m.err
}

func (m *mockViewService) ToggleFilter(id string, group models.FilterGroup, key string) (models.ViewSnapshot, error) {
	m.toggledGroup = group
	m.toggledKey = key
	return m.snapshot, m.err
}

func (m *mockViewService) ClearFilters(id string) (models.ViewSnapshot, error) {
	return m.snapshot, m.err
}

func (m *mockViewService) SetPage(id string, page int) (models.ViewSnapshot, error) {
	m.page = page
	return m.snapshot, m.err
}

func (m *mockViewService) NextPage(id string) (models.ViewSnapshot, error) {
	return m.snapshot, m.err
}

func (m *mockViewService) PrevPage(id string) (models.ViewSnapshot, error) {
	return m.snapshot, m.err
}

func (m *mockViewService) ToggleBookmark(ctx context.Context, id, courseID, requestToken string) (models.ViewSnapshot, error) {
	m.toggledCourse = courseID
	m.toggleToken = requestToken
	return m.snapshot, m.err
}

func (m *mockViewService) DismissNotification(id string) (models.ViewSnapshot, error) {
	return m.snapshot, m.err
}

func (m *mockViewService) Delete(id string) error {
	m.deleted = id
	return m.err
}

func newViewRouter(svc *mockViewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewViewHandler(svc)
	r := gin.New()
	r.Use(middleware.BearerToken())
	r.POST("/catalog/views", h.Create)
	r.GET("/catalog/views/:id", h.Get)
	r.DELETE("/catalog/views/:id", h.Delete)
	r.POST("/catalog/views/:id/search", h.Search)
	r.POST("/catalog/views/:id/category", h.Category)
	r.POST("/catalog/views/:id/filters", h.ToggleFilter)
	r.DELETE("/catalog/views/:id/filters", h.ClearFilters)
	r.POST("/catalog/views/:id/page", h.SetPage)
	r.POST("/catalog/views/:id/page/next", h.NextPage)
	r.POST("/catalog/views/:id/page/previous", h.PrevPage)
	r.POST("/catalog/views/:id/bookmarks/:courseId", h.ToggleBookmark)
	r.DELETE("/catalog/views/:id/notification", h.DismissNotification)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestViewHandlerCreate(t *testing.T) {
	svc := &mockViewService{snapshot: models.ViewSnapshot{ID: "v1", Source: "all"}}
	router := newViewRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/catalog/views", map[string]string{"source": "trending"},
		map[string]string{"Authorization": "Bearer token-1"})

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, service.SourceTrending, svc.createdSource)
	assert.Equal(t, "token-1", svc.createdToken)
}

func TestViewHandlerCreateEmptyBodyDefaultsToAll(t *testing.T) {
	svc := &mockViewService{snapshot: models.ViewSnapshot{ID: "v1"}}
	router := newViewRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/catalog/views", nil, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, service.SourceAll, svc.createdSource)
	assert.Empty(t, svc.createdToken)
}

func TestViewHandlerGetNotFound(t *testing.T) {
	svc := &mockViewService{err: appErrors.Clone(appErrors.ErrNotFound, "view not found")}
	router := newViewRouter(svc)

	rec := doJSON(t, router, http.MethodGet, "/catalog/views/missing", nil, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "view not found", env.Message)
}

func TestViewHandlerSearch(t *testing.T) {
	svc := &mockViewService{}
	router := newViewRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/catalog/views/v1/search", map[string]string{"query": "golang"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "golang", svc.searched)
}

func TestViewHandlerCategoryRequiresPayload(t *testing.T) {
	svc := &mockViewService{}
	router := newViewRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/catalog/views/v1/category", map[string]string{}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.category)
}

func TestViewHandlerToggleFilter(t *testing.T) {
	svc := &mockViewService{}
	router := newViewRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/catalog/views/v1/filters",
		map[string]string{"group": "rating", "key": "high"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.FilterRating, svc.toggledGroup)
	assert.Equal(t, "high", svc.toggledKey)
}

func TestViewHandlerSetPage(t *testing.T) {
	svc := &mockViewService{}
	router := newViewRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/catalog/views/v1/page", map[string]int{"page": 3}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.page)
}

func TestViewHandlerToggleBookmarkForwardsToken(t *testing.T) {
	svc := &mockViewService{}
	router := newViewRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/catalog/views/v1/bookmarks/c9", nil,
		map[string]string{"Authorization": "Bearer fresh"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c9", svc.toggledCourse)
	assert.Equal(t, "fresh", svc.toggleToken)
}

func TestViewHandlerDelete(t *testing.T) {
	svc := &mockViewService{}
	router := newViewRouter(svc)

	rec := doJSON(t, router, http.MethodDelete, "/catalog/views/v1", nil, nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "v1", svc.deleted)
}
