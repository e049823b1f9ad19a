package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/brainbridge/catalog-gateway/internal/dto"
	"github.com/brainbridge/catalog-gateway/pkg/config"
)

// Observer receives timing for every upstream call.
type Observer interface {
	ObserveUpstreamRequest(method, path string, status int, duration time.Duration)
}

// Client talks to the remote course-catalog API. Every response uses the
// platform envelope {success, data, message}; a 2xx body with
// success:false is surfaced as an *APIError just like a non-2xx status.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *zap.Logger
	observer Observer
}

// NewClient constructs an upstream client.
func NewClient(cfg config.UpstreamConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// SetObserver attaches a metrics observer.
func (c *Client) SetObserver(observer Observer) {
	c.observer = observer
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// ListCourses fetches the full catalog.
func (c *Client) ListCourses(ctx context.Context, token string) ([]dto.CoursePayload, error) {
	return c.listCourses(ctx, "/courses", token)
}

// ListPopular fetches the trending subset of the catalog.
func (c *Client) ListPopular(ctx context.Context, token string) ([]dto.CoursePayload, error) {
	return c.listCourses(ctx, "/courses/popular", token)
}

// ListBookmarked fetches the courses the authenticated student has
// bookmarked. The caller extracts identifiers.
func (c *Client) ListBookmarked(ctx context.Context, token string) ([]dto.CoursePayload, error) {
	return c.listCourses(ctx, "/students/courses/bookmarked", token)
}

func (c *Client) listCourses(ctx context.Context, path, token string) ([]dto.CoursePayload, error) {
	data, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}

	var payloads []dto.CoursePayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("decode course list %s: %w", path, err)
	}
	return payloads, nil
}

// AddBookmark marks the course as bookmarked for the current student.
func (c *Client) AddBookmark(ctx context.Context, token, courseID string) error {
	path := fmt.Sprintf("/students/courses/%s/bookmark", courseID)
	_, err := c.do(ctx, http.MethodPatch, path, token, map[string]bool{"bookmarked": true})
	return err
}

// RemoveBookmark clears the bookmark for the current student.
func (c *Client) RemoveBookmark(ctx context.Context, token, courseID string) error {
	path := fmt.Sprintf("/students/courses/%s/bookmark", courseID)
	_, err := c.do(ctx, http.MethodDelete, path, token, nil)
	return err
}

// Profile fetches the authenticated student's profile as-is.
func (c *Client) Profile(ctx context.Context, token string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/students/profile", token, nil)
}

// SubmitContact forwards a contact-form submission.
func (c *Client) SubmitContact(ctx context.Context, token string, req dto.ContactRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/contacts", token, req)
	return err
}

func (c *Client) do(ctx context.Context, method, path, token string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		if c.observer != nil {
			c.observer.ObserveUpstreamRequest(method, path, 0, duration)
		}
		return nil, fmt.Errorf("upstream %s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if c.observer != nil {
		c.observer.ObserveUpstreamRequest(method, path, resp.StatusCode, duration)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response %s: %w", path, err)
	}

	var env envelope
	if len(raw) > 0 {
		// A malformed body on an error status is still an error status;
		// only fail decoding on otherwise-successful responses.
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < http.StatusBadRequest {
			return nil, fmt.Errorf("decode upstream response %s: %w", path, err)
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	if !env.Success {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	return env.Data, nil
}
