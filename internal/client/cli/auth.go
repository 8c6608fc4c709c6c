package cli

import (
	"context"
	"fmt"

	"github.com/minsu-cho/sajubook/internal/client/api"
	"github.com/minsu-cho/sajubook/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the session
// is persisted and the prompt picks up the new identity; a failed login
// leaves the previous session intact.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s (%s)\n", user.Name, user.Role)
	return nil
}

// Signup prompts for account details and creates an account. The new
// account is not logged in automatically.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone (optional)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Signup(ctx, api.SignupRequest{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(password),
	})
	if err != nil {
		fmt.Fprintf(a.out, "Signup failed: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Account created for %s. Use 'login' to sign in.\n", user.Email)
	return nil
}

// Logout ends the session. The local session is cleared even when the
// server cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Whoami prints the stored profile, or a logged-out notice.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "#%d %s <%s> role=%s\n", user.ID, user.Name, user.Email, user.Role)
	if exp, ok := a.tokenExpiry(ctx); ok {
		fmt.Fprintf(a.out, "token expires at %s\n", exp)
	}
	return nil
}
