package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsu-cho/sajubook/internal/client/api"
	"github.com/minsu-cho/sajubook/internal/client/models"
	"github.com/minsu-cho/sajubook/internal/client/routing"
	"github.com/minsu-cho/sajubook/internal/client/session"
	"github.com/minsu-cho/sajubook/internal/logging"
)

// ---- fakes ----

type stubStore struct {
	sess *session.Session
}

func (s *stubStore) Get(ctx context.Context) (*session.Session, error) { return s.sess, nil }
func (s *stubStore) Set(ctx context.Context, sess *session.Session) error {
	s.sess = sess
	return nil
}
func (s *stubStore) Clear(ctx context.Context) error {
	s.sess = nil
	return nil
}

type fakeAuth struct {
	user      *models.User
	loginUser *models.User

	loginCalls  int
	logoutCalls int
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.User, error) {
	f.loginCalls++
	f.user = f.loginUser
	return f.loginUser, nil
}

func (f *fakeAuth) Signup(ctx context.Context, req api.SignupRequest) (*models.User, error) {
	return f.user, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logoutCalls++
	f.user = nil
	return nil
}

func (f *fakeAuth) CurrentUser(ctx context.Context) (*models.User, error) {
	return f.user, nil
}

func (f *fakeAuth) IsLoggedIn(ctx context.Context) (bool, error) {
	return f.user != nil, nil
}

func (f *fakeAuth) IsAdmin(ctx context.Context) (bool, error) {
	return f.user.IsAdmin(), nil
}

func (f *fakeAuth) IsCounselor(ctx context.Context) (bool, error) {
	return f.user.IsCounselor(), nil
}

func (f *fakeAuth) Snapshot(ctx context.Context) (routing.Snapshot, error) {
	if f.user == nil {
		return routing.Snapshot{}, nil
	}
	return routing.Snapshot{LoggedIn: true, Role: f.user.Role}, nil
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestApp(t *testing.T, auth *fakeAuth, handler http.Handler) (*App, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	out := &bytes.Buffer{}
	return &App{
		api: api.New(api.Options{
			BaseURL: srv.URL,
			Store:   &stubStore{},
			Logger:  discardLogger(),
		}),
		auth:   auth,
		store:  &stubStore{},
		guard:  routing.NewGuard(),
		log:    discardLogger(),
		reader: bufio.NewReader(strings.NewReader("")),
		out:    out,
	}, out
}

func jsonHandler(t *testing.T, body any) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(body))
	})
}

func stubCredentials(t *testing.T) {
	t.Helper()
	origText, origPassword := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return "minsu@example.com", nil
	}
	getPassword = func(io.Writer) ([]byte, error) { return []byte("pw"), nil }
	t.Cleanup(func() {
		getSimpleText, getPassword = origText, origPassword
	})
}

// ---- tests ----

func TestGo_UnknownPath(t *testing.T) {
	app, out := newTestApp(t, &fakeAuth{}, jsonHandler(t, nil))

	require.NoError(t, app.Go(context.Background(), "/nowhere"))
	assert.Contains(t, out.String(), "No such view")
}

func TestGo_PublicViewWhileAnonymous(t *testing.T) {
	counselors := []models.Counselor{{ID: 1, Name: "Sora Kim", AverageRating: 4.5, ReviewCount: 12}}
	app, out := newTestApp(t, &fakeAuth{}, jsonHandler(t, counselors))

	require.NoError(t, app.Go(context.Background(), "/counselors"))
	assert.Contains(t, out.String(), "Sora Kim")
	assert.NotContains(t, out.String(), "redirecting")
}

func TestGo_AnonymousRedirectedToLogin(t *testing.T) {
	stubCredentials(t)

	auth := &fakeAuth{loginUser: &models.User{ID: 1, Name: "Minsu", Role: models.RoleUser}}
	app, out := newTestApp(t, auth, jsonHandler(t, nil))

	require.NoError(t, app.Go(context.Background(), "/reservations"))
	assert.Contains(t, out.String(), "redirecting to /login")
	// the login view rendered in place of the requested one
	assert.Equal(t, 1, auth.loginCalls)
}

func TestGo_UserRedirectedFromAdminView(t *testing.T) {
	auth := &fakeAuth{user: &models.User{ID: 1, Name: "Minsu", Role: models.RoleUser}}
	app, out := newTestApp(t, auth, jsonHandler(t, nil))

	require.NoError(t, app.Go(context.Background(), "/admin/users"))
	assert.Contains(t, out.String(), "redirecting to /")
	assert.Contains(t, out.String(), "SajuBook")
}

func TestGo_CounselorDashboard(t *testing.T) {
	entries := []models.DashboardEntry{
		{ReservationID: 3, UserName: "Jiwoo Park", ReservationTime: "2026-09-01T10:00:00", Status: "CONFIRMED"},
	}
	auth := &fakeAuth{user: &models.User{ID: 2, Name: "Sora", Role: models.RoleCounselor}}
	app, out := newTestApp(t, auth, jsonHandler(t, entries))

	require.NoError(t, app.Go(context.Background(), "/dashboard"))
	assert.Contains(t, out.String(), "Jiwoo Park")
}

func TestGo_AdminUsersList(t *testing.T) {
	users := []models.User{
		{ID: 1, Name: "Minsu Cho", Email: "minsu@example.com", Role: models.RoleAdmin},
		{ID: 2, Name: "Sora Kim", Email: "sora@example.com", Role: models.RoleCounselor},
	}
	auth := &fakeAuth{user: &users[0]}
	app, out := newTestApp(t, auth, jsonHandler(t, users))

	require.NoError(t, app.Go(context.Background(), "/admin/users"))
	assert.Contains(t, out.String(), "sora@example.com")
	assert.NotContains(t, out.String(), "redirecting")
}

func TestRoutes_MarksReachableViews(t *testing.T) {
	auth := &fakeAuth{user: &models.User{ID: 1, Role: models.RoleUser}}
	app, out := newTestApp(t, auth, jsonHandler(t, nil))

	require.NoError(t, app.Routes(context.Background()))

	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		switch {
		case strings.Contains(line, "/reservations"):
			assert.True(t, strings.HasPrefix(line, "*"), "line %q", line)
		case strings.Contains(line, "/admin/users"):
			assert.True(t, strings.HasPrefix(line, " "), "line %q", line)
		}
	}
}

func TestWhoami(t *testing.T) {
	t.Run("logged out", func(t *testing.T) {
		app, out := newTestApp(t, &fakeAuth{}, jsonHandler(t, nil))
		require.NoError(t, app.Whoami(context.Background()))
		assert.Contains(t, out.String(), "Not logged in")
	})

	t.Run("logged in", func(t *testing.T) {
		auth := &fakeAuth{user: &models.User{ID: 7, Name: "Minsu", Email: "minsu@example.com", Role: models.RoleUser}}
		app, out := newTestApp(t, auth, jsonHandler(t, nil))
		require.NoError(t, app.Whoami(context.Background()))
		assert.Contains(t, out.String(), "minsu@example.com")
		assert.Contains(t, out.String(), "role=USER")
	})
}

func TestLogout_PrintsConfirmation(t *testing.T) {
	auth := &fakeAuth{user: &models.User{ID: 1, Role: models.RoleUser}}
	app, out := newTestApp(t, auth, jsonHandler(t, nil))

	require.NoError(t, app.Logout(context.Background()))
	assert.Contains(t, out.String(), "Logged out")
	assert.Equal(t, 1, auth.logoutCalls)
}
