package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/radxishan/digest/internal/core/config"
	"github.com/radxishan/digest/internal/integration/digestapi"
	"github.com/radxishan/digest/internal/printer"
)

type apiStub struct {
	mu       sync.Mutex
	requests map[string][]map[string]any

	status int
	body   string
}

func (s *apiStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Method == http.MethodPost {
		data, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(data, &payload)
		s.requests[r.URL.Path] = append(s.requests[r.URL.Path], payload)
	} else {
		s.requests[r.URL.Path] = append(s.requests[r.URL.Path], nil)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(s.status)
	_, _ = io.WriteString(w, s.body)
}

func (s *apiStub) calls(path string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path]
}

type harness struct {
	t     *testing.T
	api   *apiStub
	flags *Flags

	out    bytes.Buffer
	errOut bytes.Buffer
}

func newHarness(t *testing.T, status int, body string) *harness {
	t.Helper()

	orig := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = orig })

	api := &apiStub{requests: map[string][]map[string]any{}, status: status, body: body}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.BaseURL = srv.URL

	return &harness{
		t:   t,
		api: api,
		flags: &Flags{
			ConfigPath: "/etc/digest/config.yaml",
			Config:     &cfg,
			Client:     digestapi.New(srv.URL, nil, time.Second, zerolog.Nop()),
		},
	}
}

func (h *harness) run(register func(*cli.Command) *cli.Command, args ...string) error {
	h.t.Helper()

	app := register(&cli.Command{
		Name:      "digest",
		Writer:    &h.out,
		ErrWriter: &h.errOut,
	})

	ctx := printer.NewContext(context.Background(), printer.New(&h.out, &h.errOut))
	return app.Run(ctx, append([]string{"digest"}, args...))
}

func TestSubscribeCmd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := newHarness(t, http.StatusOK, `{"success":true,"message":"ok"}`)

		err := h.run(NewSubscribeCmd(h.flags).Register, "subscribe", "--email", " ann@example.com ", "--name", "Ann")

		require.NoError(t, err)
		calls := h.api.calls("/api/subscribe")
		require.Len(t, calls, 1)
		assert.Equal(t, "ann@example.com", calls[0]["email"])
		assert.Equal(t, "Ann", calls[0]["name"])
		assert.Contains(t, h.out.String(), "Successfully subscribed!")
		assert.Empty(t, h.errOut.String())
	})

	t.Run("rejected", func(t *testing.T) {
		h := newHarness(t, http.StatusOK, `{"success":false,"message":"Email already subscribed"}`)

		err := h.run(NewSubscribeCmd(h.flags).Register, "subscribe", "-e", "ann@example.com")

		require.ErrorIs(t, err, ErrNotCompleted)
		assert.Contains(t, h.errOut.String(), "Email already subscribed")
	})

	t.Run("backend error", func(t *testing.T) {
		h := newHarness(t, http.StatusBadRequest, `{"detail":"Email already subscribed"}`)

		err := h.run(NewSubscribeCmd(h.flags).Register, "subscribe", "-e", "ann@example.com")

		require.ErrorIs(t, err, ErrNotCompleted)
		assert.Contains(t, h.errOut.String(), "Email already subscribed")
	})

	t.Run("invalid email sends nothing", func(t *testing.T) {
		h := newHarness(t, http.StatusOK, `{"success":true}`)

		err := h.run(NewSubscribeCmd(h.flags).Register, "subscribe", "-e", "ann@example")

		require.ErrorIs(t, err, ErrNotCompleted)
		assert.Empty(t, h.api.calls("/api/subscribe"))
		assert.Contains(t, h.errOut.String(), "Please enter a valid email address")
	})

	t.Run("missing email without terminal", func(t *testing.T) {
		h := newHarness(t, http.StatusOK, `{"success":true}`)

		err := h.run(NewSubscribeCmd(h.flags).Register, "subscribe")

		require.ErrorIs(t, err, ErrNotCompleted)
		assert.Empty(t, h.api.calls("/api/subscribe"))
		assert.Contains(t, h.errOut.String(), "Please enter your email address")
	})
}

func TestUnsubscribeCmd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := newHarness(t, http.StatusOK, `{"success":true}`)

		err := h.run(NewUnsubscribeCmd(h.flags).Register, "unsubscribe", "--email", "ann@example.com")

		require.NoError(t, err)
		calls := h.api.calls("/api/unsubscribe")
		require.Len(t, calls, 1)
		assert.Equal(t, "ann@example.com", calls[0]["email"])
		assert.Contains(t, h.out.String(), "Successfully unsubscribed!")
	})

	t.Run("not subscribed", func(t *testing.T) {
		h := newHarness(t, http.StatusNotFound, `{"detail":"Email not found"}`)

		err := h.run(NewUnsubscribeCmd(h.flags).Register, "unsubscribe", "--email", "ann@example.com")

		require.ErrorIs(t, err, ErrNotCompleted)
		assert.Contains(t, h.errOut.String(), "Email not found")
	})

	t.Run("server error without detail", func(t *testing.T) {
		h := newHarness(t, http.StatusInternalServerError, `oops`)

		err := h.run(NewUnsubscribeCmd(h.flags).Register, "unsubscribe", "--email", "ann@example.com")

		require.ErrorIs(t, err, ErrNotCompleted)
		assert.Contains(t, h.errOut.String(), "Failed to unsubscribe")
	})
}

func TestCountCmd(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		h := newHarness(t, http.StatusOK, `{"count":42}`)

		require.NoError(t, h.run(NewCountCmd(h.flags).Register, "count"))
		assert.Equal(t, "42\n", h.out.String())
		assert.Len(t, h.api.calls("/api/subscribers/count"), 1)
	})

	t.Run("json", func(t *testing.T) {
		h := newHarness(t, http.StatusOK, `{"count":42}`)

		require.NoError(t, h.run(NewCountCmd(h.flags).Register, "count", "--json"))
		assert.JSONEq(t, `{"count":42}`, h.out.String())
	})

	t.Run("backend failure counts as zero", func(t *testing.T) {
		h := newHarness(t, http.StatusServiceUnavailable, `{"detail":"down"}`)

		require.NoError(t, h.run(NewCountCmd(h.flags).Register, "count"))
		assert.Equal(t, "0\n", h.out.String())
	})
}

func TestConfigCmd(t *testing.T) {
	h := newHarness(t, http.StatusOK, `{}`)

	require.NoError(t, h.run(NewConfigCmd(h.flags).Register, "config"))

	out := h.out.String()
	assert.Contains(t, out, "base_url: "+h.flags.Config.BaseURL)
	assert.Contains(t, out, "timeout: 15s")
	assert.Contains(t, out, "theme: indigo")
	assert.Contains(t, out, "Configuration is valid (/etc/digest/config.yaml)")
}

func TestConfigCmd_invalid(t *testing.T) {
	h := newHarness(t, http.StatusOK, `{}`)
	h.flags.Config.TUI.Theme = "neon"

	err := h.run(NewConfigCmd(h.flags).Register, "config")

	require.ErrorIs(t, err, ErrNotCompleted)
	assert.Contains(t, h.errOut.String(), "tui.theme")
}

func runApp(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()

	for _, key := range []string{"DIGEST_BASE_URL", "DIGEST_HTTP_TIMEOUT", "DIGEST_THEME", "DIGEST_CONFIG", "DIGEST_LOG_FILE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	dir := t.TempDir()
	var out, errOut bytes.Buffer

	app := NewApp("test")
	app.Writer = &out
	app.ErrWriter = &errOut

	full := append([]string{
		"digest",
		"--log-file", filepath.Join(dir, "digest.log"),
		"--config", filepath.Join(dir, "missing.yaml"),
	}, args...)
	err := app.Run(context.Background(), full)
	return out.String(), errOut.String(), err
}

func TestApp_config_reports_invalid_environment(t *testing.T) {
	out, errOut, err := runApp(t, map[string]string{"DIGEST_THEME": "neon"}, "config")

	require.ErrorIs(t, err, ErrNotCompleted)
	assert.Contains(t, out, "theme: neon")
	assert.Contains(t, errOut, "tui.theme")
}

func TestApp_other_commands_reject_invalid_config(t *testing.T) {
	_, _, err := runApp(t, map[string]string{"DIGEST_THEME": "neon"}, "count")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotCompleted)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "tui.theme")
}
