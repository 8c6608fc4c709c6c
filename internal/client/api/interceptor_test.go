package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsu-cho/sajubook/internal/client/models"
	"github.com/minsu-cho/sajubook/internal/client/session"
	"github.com/minsu-cho/sajubook/internal/logging"
)

// fakeStore is an in-memory session.Store for tests.
type fakeStore struct {
	sess   *session.Session
	getErr error

	setCalls   int
	clearCalls int
	setErr     error
	clearErr   error
}

func (f *fakeStore) Get(ctx context.Context) (*session.Session, error) {
	return f.sess, f.getErr
}

func (f *fakeStore) Set(ctx context.Context, s *session.Session) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.sess = s
	return nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.clearCalls++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.sess = nil
	return nil
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://api.test/counselors", nil)
	require.NoError(t, err)
	return req
}

func TestBearerAuth_AttachesHeaderWhenTokenPresent(t *testing.T) {
	store := &fakeStore{sess: &session.Session{
		AccessToken: "t1",
		User:        &models.User{ID: 1, Role: models.RoleUser},
	}}

	req := newRequest(t)
	BearerAuth(store, discardLogger())(req)

	assert.Equal(t, "Bearer t1", req.Header.Get("Authorization"))
}

func TestBearerAuth_NoSession_LeavesRequestUnmodified(t *testing.T) {
	store := &fakeStore{}

	req := newRequest(t)
	BearerAuth(store, discardLogger())(req)

	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestBearerAuth_StoreError_DegradesToAnonymous(t *testing.T) {
	store := &fakeStore{getErr: errors.New("db locked")}

	req := newRequest(t)
	require.NotPanics(t, func() {
		BearerAuth(store, discardLogger())(req)
	})

	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestRequestID_StampsFreshID(t *testing.T) {
	req := newRequest(t)
	RequestID()(req)

	assert.NotEmpty(t, req.Header.Get("X-Request-Id"))
}

func TestRequestID_KeepsCallerProvidedID(t *testing.T) {
	req := newRequest(t)
	req.Header.Set("X-Request-Id", "caller-id")
	RequestID()(req)

	assert.Equal(t, "caller-id", req.Header.Get("X-Request-Id"))
}

func TestObserveFailures_PreservesBodyForCaller(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":401,"error":"UNAUTHORIZED","message":"login required"}`))
	}))
	t.Cleanup(srv.Close)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := http.DefaultTransport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	ObserveFailures(discardLogger())(resp)

	// The observer consumed and rebuffered the body; the caller still
	// reads the original payload.
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "login required"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestObserveFailures_IgnoresSuccessfulResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := http.DefaultTransport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	ObserveFailures(discardLogger())(resp)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}
