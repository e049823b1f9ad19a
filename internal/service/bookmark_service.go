package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/brainbridge/catalog-gateway/internal/dto"
	"github.com/brainbridge/catalog-gateway/internal/upstream"
	appErrors "github.com/brainbridge/catalog-gateway/pkg/errors"
)

// BookmarkSet holds the course ids the current student has bookmarked,
// plus the per-id in-flight guard that serialises toggles. Membership
// reflects the last server-confirmed state only.
type BookmarkSet struct {
	mu       sync.Mutex
	order    []string
	member   map[string]struct{}
	inflight map[string]struct{}
}

// NewBookmarkSet returns an empty set.
func NewBookmarkSet() *BookmarkSet {
	return &BookmarkSet{
		member:   make(map[string]struct{}),
		inflight: make(map[string]struct{}),
	}
}

// Replace resets membership to the given ids, preserving their order.
func (b *BookmarkSet) Replace(ids []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order = b.order[:0]
	b.member = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := b.member[id]; ok {
			continue
		}
		b.member[id] = struct{}{}
		b.order = append(b.order, id)
	}
}

// Contains reports membership.
func (b *BookmarkSet) Contains(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.member[id]
	return ok
}

// IDs returns the bookmarked course ids in insertion order.
func (b *BookmarkSet) IDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]string, len(b.order))
	copy(ids, b.order)
	return ids
}

// Clear empties the set. Used on logout and session expiry.
func (b *BookmarkSet) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order = b.order[:0]
	b.member = make(map[string]struct{})
}

func (b *BookmarkSet) add(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.member[id]; ok {
		return
	}
	b.member[id] = struct{}{}
	b.order = append(b.order, id)
}

func (b *BookmarkSet) remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.member[id]; !ok {
		return
	}
	delete(b.member, id)
	for i, existing := range b.order {
		if existing == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// tryBegin claims the in-flight slot for the id. It returns false when a
// toggle for the same id is already running.
func (b *BookmarkSet) tryBegin(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, busy := b.inflight[id]; busy {
		return false
	}
	b.inflight[id] = struct{}{}
	return true
}

func (b *BookmarkSet) end(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.inflight, id)
}

type bookmarkUpstream interface {
	ListBookmarked(ctx context.Context, token string) ([]dto.CoursePayload, error)
	AddBookmark(ctx context.Context, token, courseID string) error
	RemoveBookmark(ctx context.Context, token, courseID string) error
}

// BookmarkService synchronises a view's bookmark set against the
// platform API. Writes are confirmed-only: local membership changes
// after the server acknowledges, never before.
type BookmarkService struct {
	upstream      bookmarkUpstream
	metrics       *MetricsService
	redirectDelay time.Duration
	logger        *zap.Logger
}

// NewBookmarkService constructs a bookmark service.
func NewBookmarkService(up bookmarkUpstream, metrics *MetricsService, redirectDelay time.Duration, logger *zap.Logger) *BookmarkService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if redirectDelay <= 0 {
		redirectDelay = 2 * time.Second
	}
	return &BookmarkService{upstream: up, metrics: metrics, redirectDelay: redirectDelay, logger: logger}
}

// Load populates the set for an authenticated session. Anonymous
// sessions are a silent no-op. An auth rejection clears the token
// silently and leaves the set empty; no redirect on this path.
func (s *BookmarkService) Load(ctx context.Context, sess *Session, set *BookmarkSet, notify *Notifier) {
	if !sess.Authenticated() {
		return
	}

	payloads, err := s.upstream.ListBookmarked(ctx, sess.Token())
	if err != nil {
		if upstream.IsAuth(err) {
			sess.ClearToken()
			set.Clear()
			return
		}
		s.logger.Warn("bookmark load failed", zap.Error(err))
		notify.Error(fallback(upstream.Message(err), msgFetchBookmarks))
		return
	}

	ids := make([]string, 0, len(payloads))
	for _, payload := range payloads {
		ids = append(ids, payload.Normalize().ID)
	}
	set.Replace(ids)
}

// Toggle flips the bookmark for the course. Without a token it performs
// no remote call, emits the login prompt and schedules a redirect. A
// duplicate toggle for an id already in flight is dropped.
func (s *BookmarkService) Toggle(ctx context.Context, sess *Session, set *BookmarkSet, notify *Notifier, courseID string) {
	if !sess.Authenticated() {
		notify.Error(appErrors.ErrLoginRequired.Message)
		sess.ScheduleRedirect(HomeRoute, s.redirectDelay)
		s.metrics.RecordBookmarkToggle("login_required")
		return
	}

	if !set.tryBegin(courseID) {
		s.metrics.RecordBookmarkToggle("suppressed")
		return
	}
	defer set.end(courseID)

	bookmarked := set.Contains(courseID)

	var err error
	if bookmarked {
		err = s.upstream.RemoveBookmark(ctx, sess.Token(), courseID)
	} else {
		err = s.upstream.AddBookmark(ctx, sess.Token(), courseID)
	}
	if err != nil {
		if upstream.IsAuth(err) {
			// Teardown removes the token and redirects; membership stays as
			// last confirmed so the view renders unchanged until navigation.
			sess.ScheduleRedirect(HomeRoute, s.redirectDelay)
			notify.Error(appErrors.ErrSessionExpired.Message)
			s.metrics.RecordBookmarkToggle("session_expired")
			return
		}
		s.logger.Warn("bookmark toggle failed", zap.String("course_id", courseID), zap.Error(err))
		notify.Error(fallback(upstream.Message(err), msgUpdateBookmark))
		s.metrics.RecordBookmarkToggle("error")
		return
	}

	if bookmarked {
		set.remove(courseID)
		notify.Success(msgBookmarkRemoved)
		s.metrics.RecordBookmarkToggle("removed")
	} else {
		set.add(courseID)
		notify.Success(msgBookmarkAdded)
		s.metrics.RecordBookmarkToggle("added")
	}
}
