package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/brainbridge/catalog-gateway/internal/models"
	"github.com/brainbridge/catalog-gateway/internal/upstream"
	appErrors "github.com/brainbridge/catalog-gateway/pkg/errors"
)

type profileUpstream interface {
	Profile(ctx context.Context, token string) (json.RawMessage, error)
}

// AccountService passes the student profile through from the platform.
// An auth rejection here applies the full session-teardown policy: the
// caller receives the session-expired error plus the redirect to honour
// after the configured delay.
type AccountService struct {
	upstream      profileUpstream
	redirectDelay time.Duration
	logger        *zap.Logger
}

// NewAccountService constructs an account service.
func NewAccountService(up profileUpstream, redirectDelay time.Duration, logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if redirectDelay <= 0 {
		redirectDelay = 2 * time.Second
	}
	return &AccountService{upstream: up, redirectDelay: redirectDelay, logger: logger}
}

// Profile fetches the authenticated student's profile. The redirect is
// non-nil only on auth failure.
func (s *AccountService) Profile(ctx context.Context, token string) (json.RawMessage, *models.Redirect, error) {
	if token == "" {
		return nil, nil, appErrors.Clone(appErrors.ErrUnauthorized, "missing bearer token")
	}

	profile, err := s.upstream.Profile(ctx, token)
	if err != nil {
		if upstream.IsAuth(err) {
			redirect := &models.Redirect{To: HomeRoute, AfterMs: s.redirectDelay.Milliseconds()}
			return nil, redirect, appErrors.Clone(appErrors.ErrSessionExpired, "")
		}
		s.logger.Warn("profile fetch failed", zap.Error(err))
		return nil, nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status,
			fallback(upstream.Message(err), msgFetchProfile))
	}

	return profile, nil, nil
}
