// Package backend is the HTTP client of the backend-of-record that owns
// streaks and daily task completion.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "mindflow/internal/platform/errors"
	"mindflow/internal/platform/id"
)

const retryDelay = 500 * time.Millisecond

// StatusError reports a non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	ids        id.Generator
	log        *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, ids id.Generator, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		ids:        ids,
		log:        logger.With("adapter", "backend"),
	}
}

// RefreshDay asks the backend to roll the user's day over. The backend treats
// repeated calls on the same day as no-ops, so the call is retried.
func (c *Client) RefreshDay(ctx context.Context, userID string) (RefreshResponse, error) {
	var out RefreshResponse
	path := "/tasks/" + url.PathEscape(userID) + "/refresh-day"
	if err := c.do(ctx, http.MethodPost, path, true, &out); err != nil {
		return RefreshResponse{}, err
	}
	return out, nil
}

func (c *Client) GetTasks(ctx context.Context, userID string) (TasksResponse, error) {
	var out TasksResponse
	path := "/tasks/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, true, &out); err != nil {
		return TasksResponse{}, err
	}
	return out, nil
}

// CompleteTask is not retried: a lost response after a successful write
// must not be replayed.
func (c *Client) CompleteTask(ctx context.Context, userID, taskID string) (CompleteResponse, error) {
	var out CompleteResponse
	path := "/tasks/" + url.PathEscape(userID) + "/complete/" + url.PathEscape(taskID)
	err := c.do(ctx, http.MethodPost, path, false, &out)
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
		return CompleteResponse{}, fmt.Errorf("%w: %s", apperrors.ErrTaskNotFound, taskID)
	}
	if err != nil {
		return CompleteResponse{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, retry bool, out any) error {
	requestID := c.ids.New()
	c.log.DebugContext(ctx, "backend request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
	)

	resp, err := c.send(ctx, method, path, requestID)
	if retry && ctx.Err() == nil && (err != nil || resp.StatusCode >= 500) {
		reason := "network error"
		if err == nil {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
			resp.Body.Close()
		}
		c.log.WarnContext(ctx, "backend retry", slog.String("path", path), slog.String("reason", reason))

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", apperrors.ErrBackendUnavailable, ctx.Err())
		case <-time.After(retryDelay):
		}
		resp, err = c.send(ctx, method, path, requestID)
	}
	if err != nil {
		c.log.ErrorContext(ctx, "backend request failed", slog.String("path", path), slog.Any("error", err))
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrBackendUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("backend: decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path, requestID string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	return c.httpClient.Do(req)
}
