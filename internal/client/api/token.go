package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes the access token without verifying its signature and
// returns the expiry claim, if present. The result is for display only
// (status line, diagnostics); session-state checks depend solely on token
// presence, and the backend remains the authority on validity.
func TokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
