// Package digestapi is the HTTP adapter for the newsletter backend. It turns
// subscribe, unsubscribe and count operations into JSON requests against a
// base URL and normalises failures into the subscription error types.
package digestapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/radxishan/digest/internal/core/logging"
	"github.com/radxishan/digest/internal/core/subscription"
)

const (
	pathSubscribe   = "/api/subscribe"
	pathUnsubscribe = "/api/unsubscribe"
	pathCount       = "/api/subscribers/count"

	headerRequestID = "X-Request-ID"
)

// HTTPDoer is the subset of *http.Client used by the adapter.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the newsletter backend.
type Client struct {
	baseURL string
	http    HTTPDoer
	logger  zerolog.Logger
}

// New creates a Client for baseURL. A nil doer falls back to a client with
// the given timeout (no timeout when zero).
func New(baseURL string, doer HTTPDoer, timeout time.Duration, logger zerolog.Logger) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		logger:  logger,
	}
}

// BaseURL returns the normalised base address requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

type subscribeBody struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

type unsubscribeBody struct {
	Email string `json:"email"`
}

type resultBody struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Email   string `json:"email,omitempty"`
}

type countBody struct {
	Count int `json:"count"`
}

// Subscribe registers email (and an optional name) for the digest. Failures
// are returned as *subscription.SubscriptionError.
func (c *Client) Subscribe(ctx context.Context, email, name string) (subscription.Result, error) {
	body := subscribeBody{Email: email}
	if name != "" {
		body.Name = &name
	}

	var out resultBody
	if err := c.do(ctx, http.MethodPost, pathSubscribe, body, &out); err != nil {
		c.logger.Error().Err(err).Msg("subscription error")
		return subscription.Result{}, &subscription.SubscriptionError{
			Message: messageOr(err, subscription.FallbackSubscribeError),
			Err:     err,
		}
	}

	return subscription.Result{Success: out.Success, Message: out.Message}, nil
}

// Unsubscribe removes email from the digest. Failures are returned as
// *subscription.UnsubscriptionError.
func (c *Client) Unsubscribe(ctx context.Context, email string) (subscription.Result, error) {
	var out resultBody
	if err := c.do(ctx, http.MethodPost, pathUnsubscribe, unsubscribeBody{Email: email}, &out); err != nil {
		c.logger.Error().Err(err).Msg("unsubscribe error")
		return subscription.Result{}, &subscription.UnsubscriptionError{
			Message: messageOr(err, subscription.FallbackUnsubscribeError),
			Err:     err,
		}
	}

	return subscription.Result{Success: out.Success, Message: out.Message}, nil
}

// SubscriberCount returns the number of active subscribers. It never fails:
// any error is logged and reported as 0.
func (c *Client) SubscriberCount(ctx context.Context) int {
	var out countBody
	if err := c.do(ctx, http.MethodGet, pathCount, nil, &out); err != nil {
		c.logger.Warn().Err(err).Msg("error fetching subscriber count")
		return 0
	}
	if out.Count < 0 {
		c.logger.Warn().Int("count", out.Count).Msg("negative subscriber count")
		return 0
	}
	return out.Count
}

// do sends one request and decodes a 2xx JSON body into out. Non-2xx
// responses come back as *StatusError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)

	logger := c.logger.With().
		Str("method", method).
		Str("path", path).
		Logger()

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Debug().Ctx(ctx).Err(err).Msg("close response body")
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	logger.Debug().
		Ctx(ctx).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("digest api request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Detail: parseDetail(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
