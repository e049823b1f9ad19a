package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brainbridge/catalog-gateway/internal/models"
	"github.com/brainbridge/catalog-gateway/internal/upstream"
	appErrors "github.com/brainbridge/catalog-gateway/pkg/errors"
)

// View is one catalog browsing session: the fetched course list plus the
// filter, pagination, bookmark and notification state the browser used
// to keep locally. Views are created per mount and swept after idling.
type View struct {
	id     string
	source Source

	mu         sync.Mutex
	lastAccess time.Time
	courses    []models.Course
	loadErr    string
	categories []string
	search     string
	category   string
	filters    models.FilterState
	page       int

	session   *Session
	bookmarks *BookmarkSet
	notifier  *Notifier
}

// ViewServiceConfig bundles the tunables for view behaviour.
type ViewServiceConfig struct {
	PageSize      int
	ViewTTL       time.Duration
	SweepInterval time.Duration
	NotifyTTL     time.Duration
	RedirectDelay time.Duration
}

// ViewService owns the registry of live views and orchestrates catalog
// loading, filtering, pagination and bookmark synchronisation for each.
type ViewService struct {
	catalog       *CatalogService
	bookmarkSvc   *BookmarkService
	metrics       *MetricsService
	pager         Pager
	viewTTL       time.Duration
	sweepInterval time.Duration
	notifyTTL     time.Duration
	redirectDelay time.Duration
	logger        *zap.Logger

	mu    sync.RWMutex
	views map[string]*View
}

// NewViewService constructs a view service.
func NewViewService(catalog *CatalogService, bookmarks *BookmarkService, metrics *MetricsService, cfg ViewServiceConfig, logger *zap.Logger) *ViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 9
	}
	if cfg.ViewTTL <= 0 {
		cfg.ViewTTL = 30 * time.Minute
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = 5 * time.Minute
	}
	if cfg.RedirectDelay <= 0 {
		cfg.RedirectDelay = 2 * time.Second
	}
	return &ViewService{
		catalog:       catalog,
		bookmarkSvc:   bookmarks,
		metrics:       metrics,
		pager:         Pager{PageSize: cfg.PageSize},
		viewTTL:       cfg.ViewTTL,
		sweepInterval: cfg.SweepInterval,
		notifyTTL:     cfg.NotifyTTL,
		redirectDelay: cfg.RedirectDelay,
		logger:        logger,
		views:         make(map[string]*View),
	}
}

// Create builds a view over the requested listing. The catalog load and
// the bookmark load are independent; a failed catalog load still yields
// a usable (empty) view carrying the error text. A 401 on the catalog
// load applies the full session-teardown policy.
func (s *ViewService) Create(ctx context.Context, source Source, token string) (models.ViewSnapshot, error) {
	if !source.Valid() {
		return models.ViewSnapshot{}, appErrors.Clone(appErrors.ErrValidation, "unknown catalog source")
	}

	view := &View{
		id:         uuid.NewString(),
		source:     source,
		lastAccess: time.Now(),
		category:   models.CategoryAll,
		filters:    models.NewFilterState(),
		page:       1,
		session:    NewSession(token),
		bookmarks:  NewBookmarkSet(),
		notifier:   NewNotifier(s.notifyTTL),
	}

	courses, err := s.catalog.Load(ctx, source, token)
	if err != nil {
		if upstream.IsAuth(err) {
			view.session.ScheduleRedirect(HomeRoute, s.redirectDelay)
			view.loadErr = appErrors.ErrSessionExpired.Message
		} else {
			view.loadErr = fallback(upstream.Message(err), msgFetchCourses)
		}
		view.notifier.Error(view.loadErr)
		s.logger.Warn("catalog load failed",
			zap.String("view_id", view.id),
			zap.String("source", string(source)),
			zap.Error(err))
	} else {
		view.courses = courses
		view.categories = CategoryOrder(courses)
	}

	// Bookmark load degrades to a no-op when the session is anonymous,
	// including when the catalog load just tore the session down.
	s.bookmarkSvc.Load(ctx, view.session, view.bookmarks, view.notifier)

	s.mu.Lock()
	s.views[view.id] = view
	count := len(s.views)
	s.mu.Unlock()
	s.metrics.SetActiveViews(count)

	s.logger.Info("view created",
		zap.String("view_id", view.id),
		zap.String("source", string(source)),
		zap.Int("courses", len(view.courses)))

	return s.snapshot(view, false), nil
}

// Get returns the current snapshot of a view.
func (s *ViewService) Get(id string) (models.ViewSnapshot, error) {
	view, err := s.lookup(id)
	if err != nil {
		return models.ViewSnapshot{}, err
	}
	return s.snapshot(view, false), nil
}

// SetSearch updates the free-text query. Any change resets the cursor
// to page 1.
func (s *ViewService) SetSearch(id, query string) (models.ViewSnapshot, error) {
	view, err := s.lookup(id)
	if err != nil {
		return models.ViewSnapshot{}, err
	}

	view.mu.Lock()
	if view.search != query {
		view.search = query
		view.page = 1
	}
	view.mu.Unlock()

	return s.snapshot(view, false), nil
}

// SetCategory activates a category tab.
func (s *ViewService) SetCategory(id, category string) (models.ViewSnapshot, error) {
	view, err := s.lookup(id)
	if err != nil {
		return models.ViewSnapshot{}, err
	}

	view.mu.Lock()
	if category != models.CategoryAll && !contains(view.categories, category) {
		view.mu.Unlock()
		return models.ViewSnapshot{}, appErrors.Clone(appErrors.ErrValidation, "unknown category")
	}
	if view.category != category {
		view.category = category
		view.page = 1
	}
	view.mu.Unlock()

	return s.snapshot(view, false), nil
}

// ToggleFilter flips exactly one filter flag and resets the cursor.
func (s *ViewService) ToggleFilter(id string, group models.FilterGroup, key string) (models.ViewSnapshot, error) {
	view, err := s.lookup(id)
	if err != nil {
		return models.ViewSnapshot{}, err
	}

	view.mu.Lock()
	if err := view.filters.Toggle(group, key); err != nil {
		view.mu.Unlock()
		return models.ViewSnapshot{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	view.page = 1
	view.mu.Unlock()

	return s.snapshot(view, false), nil
}

// ClearFilters resets every flag and the cursor.
func (s *ViewService) ClearFilters(id string) (models.ViewSnapshot, error) {
	view, err := s.lookup(id)
	if err != nil {
		return models.ViewSnapshot{}, err
	}

	view.mu.Lock()
	view.filters.Clear()
	view.page = 1
	view.mu.Unlock()

	return s.snapshot(view, false), nil
}

// SetPage moves the cursor to the page, clamped to the valid range. The
// returned snapshot carries the scroll-to-top marker when the cursor
// moved.
func (s *ViewService) SetPage(id string, page int) (models.ViewSnapshot, error) {
	view, err := s.lookup(id)
	if err != nil {
		return models.ViewSnapshot{}, err
	}

	view.mu.Lock()
	total := s.pager.TotalPages(len(s.filteredLocked(view)))
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	moved := page != view.page
	view.page = page
	view.mu.Unlock()

	return s.snapshot(view, moved), nil
}

// NextPage advances the cursor; a no-op on the last page.
func (s *ViewService) NextPage(id string) (models.ViewSnapshot, error) {
	view, err := s.lookup(id)
	if err != nil {
		return models.ViewSnapshot{}, err
	}

	view.mu.Lock()
	total := s.pager.TotalPages(len(s.filteredLocked(view)))
	moved := view.page < total
	if moved {
		view.page++
	}
	view.mu.Unlock()

	return s.snapshot(view, moved), nil
}

// PrevPage moves the cursor back; a no-op on page 1.
func (s *ViewService) PrevPage(id string) (models.ViewSnapshot, error) {
	view, err := s.lookup(id)
	if err != nil {
		return models.ViewSnapshot{}, err
	}

	view.mu.Lock()
	moved := view.page > 1
	if moved {
		view.page--
	}
	view.mu.Unlock()

	return s.snapshot(view, moved), nil
}

// ToggleBookmark flips the bookmark for the course using the token the
// current request carries, mirroring the original client's fresh read of
// ambient storage on every toggle.
func (s *ViewService) ToggleBookmark(ctx context.Context, id, courseID, requestToken string) (models.ViewSnapshot, error) {
	view, err := s.lookup(id)
	if err != nil {
		return models.ViewSnapshot{}, err
	}

	view.mu.Lock()
	view.session = NewSession(requestToken)
	sess := view.session
	view.mu.Unlock()

	s.bookmarkSvc.Toggle(ctx, sess, view.bookmarks, view.notifier, courseID)

	return s.snapshot(view, false), nil
}

// DismissNotification clears the notification slot.
func (s *ViewService) DismissNotification(id string) (models.ViewSnapshot, error) {
	view, err := s.lookup(id)
	if err != nil {
		return models.ViewSnapshot{}, err
	}
	view.notifier.Dismiss()
	return s.snapshot(view, false), nil
}

// Delete removes a view explicitly.
func (s *ViewService) Delete(id string) error {
	s.mu.Lock()
	_, ok := s.views[id]
	delete(s.views, id)
	count := len(s.views)
	s.mu.Unlock()

	s.metrics.SetActiveViews(count)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "view not found")
	}
	return nil
}

// StartSweeper evicts idle views until the context is cancelled.
func (s *ViewService) StartSweeper(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(time.Now())
			}
		}
	}()
}

func (s *ViewService) sweep(now time.Time) {
	s.mu.Lock()
	evicted := 0
	for id, view := range s.views {
		view.mu.Lock()
		idle := now.Sub(view.lastAccess)
		view.mu.Unlock()
		if idle > s.viewTTL {
			delete(s.views, id)
			evicted++
		}
	}
	count := len(s.views)
	s.mu.Unlock()

	s.metrics.SetActiveViews(count)
	if evicted > 0 {
		s.logger.Info("idle views evicted", zap.Int("count", evicted), zap.Int("remaining", count))
	}
}

func (s *ViewService) lookup(id string) (*View, error) {
	s.mu.RLock()
	view, ok := s.views[id]
	s.mu.RUnlock()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "view not found")
	}

	view.mu.Lock()
	view.lastAccess = time.Now()
	view.mu.Unlock()
	return view, nil
}

// filteredLocked applies search, tab and filter predicates. Callers hold
// view.mu.
func (s *ViewService) filteredLocked(view *View) []models.Course {
	filtered := make([]models.Course, 0, len(view.courses))
	for _, course := range view.courses {
		if MatchesAll(course, view.filters, view.search, view.category) {
			filtered = append(filtered, course)
		}
	}
	return filtered
}

func (s *ViewService) snapshot(view *View, scrolled bool) models.ViewSnapshot {
	view.mu.Lock()
	defer view.mu.Unlock()

	filtered := s.filteredLocked(view)

	// Tab counts ignore the category predicate itself so every tab shows
	// how many courses it would surface under the current search/filters.
	base := make([]models.Course, 0, len(view.courses))
	for _, course := range view.courses {
		if MatchesAll(course, view.filters, view.search, models.CategoryAll) {
			base = append(base, course)
		}
	}

	tabs := make([]models.CategoryTab, 0, len(view.categories)+1)
	tabs = append(tabs, models.CategoryTab{ID: models.CategoryAll, Name: "All Courses", Count: len(base)})
	for _, category := range view.categories {
		count := 0
		for _, course := range base {
			if course.Category == category {
				count++
			}
		}
		tabs = append(tabs, models.CategoryTab{ID: category, Name: capitalize(category), Count: count})
	}

	return models.ViewSnapshot{
		ID:             view.id,
		Source:         string(view.source),
		Error:          view.loadErr,
		Courses:        s.pager.Slice(filtered, view.page),
		Categories:     tabs,
		ActiveCategory: view.category,
		SearchQuery:    view.search,
		Filters:        view.filters.Clone(),
		Page:           s.pager.Info(view.page, len(filtered)),
		Bookmarks:      view.bookmarks.IDs(),
		Notification:   view.notifier.Current(),
		Redirect:       view.session.Redirect(),
		ScrollTop:      scrolled,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
