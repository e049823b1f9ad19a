package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/brainbridge/catalog-gateway/internal/dto"
	"github.com/brainbridge/catalog-gateway/internal/models"
)

// Source selects which upstream listing backs a view.
type Source string

const (
	SourceAll      Source = "all"
	SourceTrending Source = "trending"
)

// Valid reports whether the source is a known listing.
func (s Source) Valid() bool {
	return s == SourceAll || s == SourceTrending
}

type catalogUpstream interface {
	ListCourses(ctx context.Context, token string) ([]dto.CoursePayload, error)
	ListPopular(ctx context.Context, token string) ([]dto.CoursePayload, error)
}

// CatalogService loads and normalises course listings from the platform
// API, with an optional Redis-backed cache in front. Listings are public
// data, so cache entries are shared across sessions.
type CatalogService struct {
	upstream catalogUpstream
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewCatalogService constructs a catalog service.
func NewCatalogService(up catalogUpstream, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{upstream: up, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Load fetches the listing for the source and returns canonical courses.
// Upstream failures are returned untranslated; the caller decides the
// session policy per call site.
func (s *CatalogService) Load(ctx context.Context, source Source, token string) ([]models.Course, error) {
	key := "catalog:" + string(source)

	var cached []models.Course
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	var (
		payloads []dto.CoursePayload
		err      error
	)
	if source == SourceTrending {
		payloads, err = s.upstream.ListPopular(ctx, token)
	} else {
		payloads, err = s.upstream.ListCourses(ctx, token)
	}
	if err != nil {
		return nil, err
	}

	courses := dto.NormalizeAll(payloads)

	if err := s.cache.Set(ctx, key, courses, s.cacheTTL); err != nil {
		s.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}

	return courses, nil
}

// Refresh drops the cached listing so the next load hits upstream.
func (s *CatalogService) Refresh(ctx context.Context, source Source) error {
	return s.cache.Invalidate(ctx, "catalog:"+string(source))
}

// CategoryOrder returns the distinct category values present in the
// catalog, in order of first appearance.
func CategoryOrder(courses []models.Course) []string {
	seen := make(map[string]struct{}, len(courses))
	order := make([]string, 0, len(courses))
	for _, course := range courses {
		if course.Category == "" {
			continue
		}
		if _, ok := seen[course.Category]; ok {
			continue
		}
		seen[course.Category] = struct{}{}
		order = append(order, course.Category)
	}
	return order
}
