package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brainbridge/catalog-gateway/internal/dto"
	"github.com/brainbridge/catalog-gateway/internal/models"
	appErrors "github.com/brainbridge/catalog-gateway/pkg/errors"
)

type mockCatalogUpstream struct {
	courses      []dto.CoursePayload
	popular      []dto.CoursePayload
	listErr      error
	listCalls    int
	popularCalls int
}

func (m *mockCatalogUpstream) ListCourses(ctx context.Context, token string) ([]dto.CoursePayload, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.courses, nil
}

func (m *mockCatalogUpstream) ListPopular(ctx context.Context, token string) ([]dto.CoursePayload, error) {
	m.popularCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.popular, nil
}

type memoryCacheRepo struct {
	mu      sync.Mutex
	entries map[string][]models.Course
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	courses, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*(dest.(*[]models.Course)) = courses
	return nil
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string][]models.Course)
	}
	m.entries[key] = value.([]models.Course)
	return nil
}

func (m *memoryCacheRepo) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func disabledCache() *CacheService {
	return NewCacheService(nil, nil, time.Minute, zap.NewNop(), false)
}

func TestCatalogLoadNormalisesCourses(t *testing.T) {
	up := &mockCatalogUpstream{courses: []dto.CoursePayload{
		{LegacyID: "c1", Title: "Go Basics", Category: "Programming", Level: "BEGINNER"},
	}}
	svc := NewCatalogService(up, disabledCache(), time.Minute, zap.NewNop())

	courses, err := svc.Load(context.Background(), SourceAll, "")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "c1", courses[0].ID)
	assert.Equal(t, "programming", courses[0].Category)
	assert.Equal(t, models.LevelBeginner, courses[0].Level)
}

func TestCatalogLoadTrendingHitsPopularEndpoint(t *testing.T) {
	up := &mockCatalogUpstream{popular: []dto.CoursePayload{{ID: "p1"}}}
	svc := NewCatalogService(up, disabledCache(), time.Minute, zap.NewNop())

	courses, err := svc.Load(context.Background(), SourceTrending, "")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "p1", courses[0].ID)
	assert.Equal(t, 1, up.popularCalls)
	assert.Zero(t, up.listCalls)
}

func TestCatalogLoadErrorPassesThrough(t *testing.T) {
	up := &mockCatalogUpstream{listErr: errors.New("timeout")}
	svc := NewCatalogService(up, disabledCache(), time.Minute, zap.NewNop())

	_, err := svc.Load(context.Background(), SourceAll, "")
	require.Error(t, err)
}

func TestCatalogLoadUsesCacheAcrossCalls(t *testing.T) {
	up := &mockCatalogUpstream{courses: []dto.CoursePayload{{ID: "c1", Title: "Cached"}}}
	cache := NewCacheService(&memoryCacheRepo{}, nil, time.Minute, zap.NewNop(), true)
	svc := NewCatalogService(up, cache, time.Minute, zap.NewNop())

	first, err := svc.Load(context.Background(), SourceAll, "")
	require.NoError(t, err)
	second, err := svc.Load(context.Background(), SourceAll, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, up.listCalls, "second load must be served from cache")

	require.NoError(t, svc.Refresh(context.Background(), SourceAll))
	_, err = svc.Load(context.Background(), SourceAll, "")
	require.NoError(t, err)
	assert.Equal(t, 2, up.listCalls, "refresh must drop the cached listing")
}

func TestCategoryOrder(t *testing.T) {
	courses := []models.Course{
		{ID: "1", Category: "programming"},
		{ID: "2", Category: "design"},
		{ID: "3", Category: "programming"},
		{ID: "4", Category: ""},
		{ID: "5", Category: "business"},
	}
	assert.Equal(t, []string{"programming", "design", "business"}, CategoryOrder(courses))
}

func TestSourceValid(t *testing.T) {
	assert.True(t, SourceAll.Valid())
	assert.True(t, SourceTrending.Valid())
	assert.False(t, Source("featured").Valid())
}
