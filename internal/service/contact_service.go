package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/brainbridge/catalog-gateway/internal/dto"
	"github.com/brainbridge/catalog-gateway/internal/upstream"
	appErrors "github.com/brainbridge/catalog-gateway/pkg/errors"
)

const (
	msgContactSent   = "Message sent successfully!"
	msgContactFailed = "Error sending message. Please try again."
	msgContactAuth   = "Authentication failed. Please log in and try again."
)

type contactUpstream interface {
	SubmitContact(ctx context.Context, token string, req dto.ContactRequest) error
}

// ContactService validates and forwards contact-form submissions.
type ContactService struct {
	upstream  contactUpstream
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContactService constructs a contact service.
func NewContactService(up contactUpstream, validate *validator.Validate, logger *zap.Logger) *ContactService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{upstream: up, validator: validate, logger: logger}
}

// Submit forwards the request after validation and returns the
// user-facing confirmation text.
func (s *ContactService) Submit(ctx context.Context, token string, req dto.ContactRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid contact payload")
	}
	if req.Subject == "" {
		req.Subject = req.Type
	}

	if err := s.upstream.SubmitContact(ctx, token, req); err != nil {
		if upstream.IsAuth(err) {
			return "", appErrors.Clone(appErrors.ErrUnauthorized, msgContactAuth)
		}
		s.logger.Warn("contact submission failed", zap.Error(err))
		return "", appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status,
			fallback(upstream.Message(err), msgContactFailed))
	}

	return msgContactSent, nil
}
