package digestapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radxishan/digest/internal/core/logging"
	"github.com/radxishan/digest/internal/core/subscription"
)

type captured struct {
	method string
	path   string
	header http.Header
	body   map[string]any
}

func newTestServer(t *testing.T, status int, response string) (*Client, *captured) {
	t.Helper()

	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.header = r.Header.Clone()

		data, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		if len(data) > 0 {
			assert.NoError(t, json.Unmarshal(data, &got.body))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return New(srv.URL+"/", srv.Client(), 0, zerolog.Nop()), got
}

func TestClient_Subscribe_sends_request(t *testing.T) {
	c, got := newTestServer(t, http.StatusOK, `{"success":true,"message":"Successfully subscribed!","email":"a@b.com"}`)

	res, err := c.Subscribe(context.Background(), "a@b.com", "Ann")

	require.NoError(t, err)
	assert.Equal(t, subscription.Result{Success: true, Message: "Successfully subscribed!"}, res)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/subscribe", got.path)
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.header.Get("Accept"))
	_, err = uuid.Parse(got.header.Get("X-Request-ID"))
	assert.NoError(t, err, "request id should be a uuid")

	assert.Equal(t, map[string]any{"email": "a@b.com", "name": "Ann"}, got.body)
}

func TestClient_Subscribe_empty_name_is_null(t *testing.T) {
	c, got := newTestServer(t, http.StatusOK, `{"success":true}`)

	_, err := c.Subscribe(context.Background(), "a@b.com", "")

	require.NoError(t, err)
	require.Contains(t, got.body, "name")
	assert.Nil(t, got.body["name"])
}

func TestClient_Subscribe_rejection_is_not_an_error(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, `{"success":false,"message":"Already subscribed"}`)

	res, err := c.Subscribe(context.Background(), "a@b.com", "")

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Already subscribed", res.Message)
}

func TestClient_Subscribe_errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		want     string
	}{
		{"detail string", http.StatusInternalServerError, `{"detail":"An error occurred: db down"}`, "An error occurred: db down"},
		{"no detail", http.StatusBadGateway, `{}`, "Failed to subscribe"},
		{"validation list", http.StatusUnprocessableEntity, `{"detail":[{"msg":"bad email"}]}`, "Failed to subscribe"},
		{"html body", http.StatusServiceUnavailable, `<html>down</html>`, "Failed to subscribe"},
		{"undecodable 2xx", http.StatusOK, `not json`, "Failed to subscribe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestServer(t, tt.status, tt.response)

			_, err := c.Subscribe(context.Background(), "a@b.com", "")

			var se *subscription.SubscriptionError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.want, se.Message)
		})
	}
}

func TestClient_Subscribe_status_error_is_wrapped(t *testing.T) {
	c, _ := newTestServer(t, http.StatusInternalServerError, `{"detail":"boom"}`)

	_, err := c.Subscribe(context.Background(), "a@b.com", "")

	var status *StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusInternalServerError, status.StatusCode)
	assert.Equal(t, "boom", status.Detail)
}

func TestClient_Subscribe_network_failure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, nil, 0, zerolog.Nop())
	_, err := c.Subscribe(context.Background(), "a@b.com", "")

	var se *subscription.SubscriptionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, subscription.FallbackSubscribeError, se.Message)
	assert.Error(t, errors.Unwrap(se))
}

func TestClient_Unsubscribe(t *testing.T) {
	c, got := newTestServer(t, http.StatusOK, `{"success":true,"message":"Successfully unsubscribed"}`)

	res, err := c.Unsubscribe(context.Background(), "a@b.com")

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/unsubscribe", got.path)
	assert.Equal(t, map[string]any{"email": "a@b.com"}, got.body)
}

func TestClient_Unsubscribe_errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		want     string
	}{
		{"detail string", http.StatusInternalServerError, `{"detail":"An error occurred: x"}`, "An error occurred: x"},
		{"no detail", http.StatusInternalServerError, ``, "Failed to unsubscribe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestServer(t, tt.status, tt.response)

			_, err := c.Unsubscribe(context.Background(), "a@b.com")

			var ue *subscription.UnsubscriptionError
			require.ErrorAs(t, err, &ue)
			assert.Equal(t, tt.want, ue.Message)
		})
	}
}

func TestClient_SubscriberCount(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		want     int
	}{
		{"count", http.StatusOK, `{"count":42}`, 42},
		{"zero", http.StatusOK, `{"count":0}`, 0},
		{"negative", http.StatusOK, `{"count":-3}`, 0},
		{"server error", http.StatusInternalServerError, `{"detail":"x"}`, 0},
		{"bad body", http.StatusOK, `nope`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, got := newTestServer(t, tt.status, tt.response)

			assert.Equal(t, tt.want, c.SubscriberCount(context.Background()))
			assert.Equal(t, http.MethodGet, got.method)
			assert.Equal(t, "/api/subscribers/count", got.path)
			assert.Nil(t, got.body)
		})
	}
}

func TestClient_SubscriberCount_unreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", nil, 0, zerolog.Nop())
	assert.Equal(t, 0, c.SubscriberCount(context.Background()))
}

func TestClient_cancelled_context(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, `{"success":true}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Subscribe(ctx, "a@b.com", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_trims_trailing_slash(t *testing.T) {
	c := New("http://localhost:8000///", nil, 0, zerolog.Nop())
	assert.Equal(t, "http://localhost:8000", c.BaseURL())
}

func TestStatusError_Error(t *testing.T) {
	assert.Equal(t, "api error: status 500", (&StatusError{StatusCode: 500}).Error())
	assert.True(t, strings.HasSuffix((&StatusError{StatusCode: 400, Detail: "bad"}).Error(), ": bad"))
}

func TestClient_logs_request_id_and_form(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(srv.Close)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel).Hook(logging.ContextHook{})
	c := New(srv.URL, srv.Client(), 0, logger)

	ctx := logging.WithForm(context.Background(), "subscribe")
	_, err := c.Subscribe(ctx, "a@b.com", "")
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, got.Get("X-Request-ID"), entry["request_id"])
	assert.Equal(t, "subscribe", entry["form"])
	assert.Equal(t, "/api/subscribe", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
}
