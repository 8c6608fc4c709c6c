package services

import (
	"context"
	"fmt"

	"github.com/minsu-cho/sajubook/internal/client/api"
	"github.com/minsu-cho/sajubook/internal/client/models"
	"github.com/minsu-cho/sajubook/internal/client/routing"
	"github.com/minsu-cho/sajubook/internal/client/session"
	"github.com/minsu-cho/sajubook/internal/common"
	"github.com/minsu-cho/sajubook/internal/logging"
)

// AuthAPI is the slice of the backend client the auth service needs.
type AuthAPI interface {
	Login(ctx context.Context, creds api.Credentials) (*api.LoginResult, error)
	Signup(ctx context.Context, req api.SignupRequest) (*models.User, error)
	Logout(ctx context.Context) error
}

// AuthService defines session-lifecycle operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the session locally.
//   - Signup: create an account on the server; no session side effect.
//   - Logout: best-effort server notification, unconditional local clear.
//   - CurrentUser / IsLoggedIn / IsAdmin / IsCounselor: read local state only.
//   - Snapshot: session state for route-guard evaluation.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, req api.SignupRequest) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	IsLoggedIn(ctx context.Context) (bool, error)
	IsAdmin(ctx context.Context) (bool, error)
	IsCounselor(ctx context.Context) (bool, error)
	Snapshot(ctx context.Context) (routing.Snapshot, error)
}

// authService is the concrete AuthService backed by a remote API client and
// a local session store.
type authService struct {
	api   AuthAPI
	store session.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and store.
func NewAuthService(client AuthAPI, store session.Store, log logging.Logger) AuthService {
	return &authService{api: client, store: store, log: log}
}

// Login exchanges credentials for a session and persists it. On any failure
// the stored session is left untouched, so a failed re-login does not log
// the user out.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	res, err := a.api.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	if res.AccessToken == "" || res.User == nil {
		return nil, fmt.Errorf("login response missing token or profile: %w", common.ErrorInternal)
	}

	sess := &session.Session{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		User:         res.User,
	}
	if err := a.store.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	a.log.Info(ctx, "logged in", "user_id", res.User.ID, "role", res.User.Role)
	return res.User, nil
}

// Signup creates an account. The new account is not logged in automatically.
func (a *authService) Signup(ctx context.Context, req api.SignupRequest) (*models.User, error) {
	return a.api.Signup(ctx, req)
}

// Logout clears the local session. The server is notified first so it can
// invalidate the token, but a failed or timed-out request does not keep the
// user logged in; the local clear always runs.
func (a *authService) Logout(ctx context.Context) (err error) {
	defer func() {
		if clearErr := a.store.Clear(ctx); clearErr != nil && err == nil {
			err = clearErr
		}
	}()

	if apiErr := a.api.Logout(ctx); apiErr != nil {
		a.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", apiErr)
	}
	return nil
}

// CurrentUser returns the stored profile, or nil when logged out.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	sess, err := a.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !sess.LoggedIn() {
		return nil, nil
	}
	return sess.User, nil
}

// IsLoggedIn reports whether a complete session is stored.
func (a *authService) IsLoggedIn(ctx context.Context) (bool, error) {
	sess, err := a.store.Get(ctx)
	if err != nil {
		return false, err
	}
	return sess.LoggedIn(), nil
}

// IsAdmin reports whether the stored profile has the admin role.
func (a *authService) IsAdmin(ctx context.Context) (bool, error) {
	user, err := a.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// IsCounselor reports whether the stored profile has the counselor role.
func (a *authService) IsCounselor(ctx context.Context) (bool, error) {
	user, err := a.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return user.IsCounselor(), nil
}

// Snapshot captures the session state for route-guard evaluation.
func (a *authService) Snapshot(ctx context.Context) (routing.Snapshot, error) {
	sess, err := a.store.Get(ctx)
	if err != nil {
		return routing.Snapshot{}, err
	}
	if !sess.LoggedIn() {
		return routing.Snapshot{}, nil
	}
	return routing.Snapshot{LoggedIn: true, Role: sess.User.Role}, nil
}
