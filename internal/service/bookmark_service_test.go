package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brainbridge/catalog-gateway/internal/dto"
	"github.com/brainbridge/catalog-gateway/internal/upstream"
	appErrors "github.com/brainbridge/catalog-gateway/pkg/errors"
)

type mockBookmarkUpstream struct {
	mu           sync.Mutex
	bookmarked   []dto.CoursePayload
	listErr      error
	addErr       error
	removeErr    error
	addCalls     []string
	removeCalls  []string
	listCalls    int
	block        chan struct{} // when set, Add blocks until closed
	blockStarted chan struct{}
}

func (m *mockBookmarkUpstream) ListBookmarked(ctx context.Context, token string) ([]dto.CoursePayload, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.bookmarked, nil
}

func (m *mockBookmarkUpstream) AddBookmark(ctx context.Context, token, courseID string) error {
	if m.block != nil {
		m.blockStarted <- struct{}{}
		<-m.block
	}
	m.mu.Lock()
	m.addCalls = append(m.addCalls, courseID)
	m.mu.Unlock()
	return m.addErr
}

func (m *mockBookmarkUpstream) RemoveBookmark(ctx context.Context, token, courseID string) error {
	m.mu.Lock()
	m.removeCalls = append(m.removeCalls, courseID)
	m.mu.Unlock()
	return m.removeErr
}

func newBookmarkFixture(up *mockBookmarkUpstream) (*BookmarkService, *Session, *BookmarkSet, *Notifier) {
	svc := NewBookmarkService(up, NewMetricsService(), 2*time.Second, zap.NewNop())
	return svc, NewSession("token-1"), NewBookmarkSet(), NewNotifier(time.Minute)
}

func TestBookmarkLoadAnonymousIsNoop(t *testing.T) {
	up := &mockBookmarkUpstream{}
	svc, _, set, notify := newBookmarkFixture(up)

	svc.Load(context.Background(), NewSession(""), set, notify)

	assert.Zero(t, up.listCalls)
	assert.Empty(t, set.IDs())
	assert.Nil(t, notify.Current())
}

func TestBookmarkLoadPopulatesSet(t *testing.T) {
	up := &mockBookmarkUpstream{bookmarked: []dto.CoursePayload{
		{LegacyID: "c1"},
		{ID: "c2"},
	}}
	svc, sess, set, notify := newBookmarkFixture(up)

	svc.Load(context.Background(), sess, set, notify)

	assert.Equal(t, []string{"c1", "c2"}, set.IDs())
	assert.Nil(t, notify.Current())
}

func TestBookmarkLoadAuthFailureClearsTokenSilently(t *testing.T) {
	up := &mockBookmarkUpstream{listErr: &upstream.APIError{Status: http.StatusUnauthorized}}
	svc, sess, set, notify := newBookmarkFixture(up)
	set.Replace([]string{"stale"})

	svc.Load(context.Background(), sess, set, notify)

	assert.False(t, sess.Authenticated())
	assert.Empty(t, set.IDs())
	assert.Nil(t, notify.Current(), "auth failure on load must stay silent")
	assert.Nil(t, sess.Redirect(), "no redirect on the load path")
}

func TestBookmarkLoadServerErrorNotifies(t *testing.T) {
	up := &mockBookmarkUpstream{listErr: errors.New("connection reset")}
	svc, sess, set, notify := newBookmarkFixture(up)

	svc.Load(context.Background(), sess, set, notify)

	got := notify.Current()
	require.NotNil(t, got)
	assert.Equal(t, "Error fetching bookmarked courses.", got.Message)
	assert.True(t, sess.Authenticated(), "non-auth failure keeps the token")
}

func TestBookmarkToggleWithoutTokenPromptsLogin(t *testing.T) {
	up := &mockBookmarkUpstream{}
	svc, _, set, notify := newBookmarkFixture(up)
	sess := NewSession("")

	svc.Toggle(context.Background(), sess, set, notify, "c1")

	got := notify.Current()
	require.NotNil(t, got)
	assert.Equal(t, appErrors.ErrLoginRequired.Message, got.Message)
	redirect := sess.Redirect()
	require.NotNil(t, redirect)
	assert.Equal(t, HomeRoute, redirect.To)
	assert.EqualValues(t, 2000, redirect.AfterMs)
	assert.Empty(t, up.addCalls, "no remote call without a token")
}

func TestBookmarkToggleAddAndRemove(t *testing.T) {
	up := &mockBookmarkUpstream{}
	svc, sess, set, notify := newBookmarkFixture(up)

	svc.Toggle(context.Background(), sess, set, notify, "c1")
	require.True(t, set.Contains("c1"))
	assert.Equal(t, []string{"c1"}, up.addCalls)
	assert.Equal(t, "Added to bookmarks", notify.Current().Message)

	svc.Toggle(context.Background(), sess, set, notify, "c1")
	require.False(t, set.Contains("c1"))
	assert.Equal(t, []string{"c1"}, up.removeCalls)
	assert.Equal(t, "Removed from bookmarks", notify.Current().Message)
}

func TestBookmarkToggleConfirmedWriteOnly(t *testing.T) {
	up := &mockBookmarkUpstream{addErr: errors.New("boom")}
	svc, sess, set, notify := newBookmarkFixture(up)

	svc.Toggle(context.Background(), sess, set, notify, "c1")

	assert.False(t, set.Contains("c1"), "membership must not change on a failed write")
	got := notify.Current()
	require.NotNil(t, got)
	assert.Equal(t, "Failed to update bookmark. Please try again.", got.Message)
	assert.True(t, sess.Authenticated())
}

func TestBookmarkToggleServerMessageWins(t *testing.T) {
	up := &mockBookmarkUpstream{addErr: &upstream.APIError{Status: http.StatusServiceUnavailable, Message: "Maintenance"}}
	svc, sess, set, notify := newBookmarkFixture(up)

	svc.Toggle(context.Background(), sess, set, notify, "c1")

	got := notify.Current()
	require.NotNil(t, got)
	assert.Equal(t, "Maintenance", got.Message)
}

func TestBookmarkToggleAuthFailureTearsDownSession(t *testing.T) {
	up := &mockBookmarkUpstream{addErr: &upstream.APIError{Status: http.StatusForbidden}}
	svc, sess, set, notify := newBookmarkFixture(up)
	set.Replace([]string{"other"})

	svc.Toggle(context.Background(), sess, set, notify, "c1")

	assert.False(t, sess.Authenticated())
	require.NotNil(t, sess.Redirect())
	got := notify.Current()
	require.NotNil(t, got)
	assert.Equal(t, appErrors.ErrSessionExpired.Message, got.Message)
	assert.Equal(t, []string{"other"}, set.IDs(), "teardown clears the token, not the confirmed membership")
	assert.False(t, set.Contains("c1"), "the rejected write must not land")
}

func TestBookmarkToggleAuthFailureKeepsMembershipOn401(t *testing.T) {
	up := &mockBookmarkUpstream{addErr: &upstream.APIError{Status: http.StatusUnauthorized}}
	svc, sess, set, notify := newBookmarkFixture(up)
	set.Replace([]string{"other"})

	svc.Toggle(context.Background(), sess, set, notify, "c1")

	assert.Equal(t, []string{"other"}, set.IDs())
	require.NotNil(t, sess.Redirect())
	assert.False(t, sess.Authenticated())
}

func TestBookmarkToggleSuppressesDuplicateInFlight(t *testing.T) {
	up := &mockBookmarkUpstream{
		block:        make(chan struct{}),
		blockStarted: make(chan struct{}, 1),
	}
	svc, sess, set, notify := newBookmarkFixture(up)

	done := make(chan struct{})
	go func() {
		svc.Toggle(context.Background(), sess, set, notify, "c1")
		close(done)
	}()
	<-up.blockStarted

	// Second toggle for the same id while the first is still in flight.
	svc.Toggle(context.Background(), sess, set, notify, "c1")
	close(up.block)
	<-done

	up.mu.Lock()
	defer up.mu.Unlock()
	assert.Len(t, up.addCalls, 1, "duplicate toggle must be dropped")
	assert.True(t, set.Contains("c1"))
}
