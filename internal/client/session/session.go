package session

import "github.com/minsu-cho/sajubook/internal/client/models"

// Session is the authenticated-identity record for the current device.
// AccessToken and User are always set together; RefreshToken is present
// only if the backend issued one.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *models.User
}

// LoggedIn reports whether the session carries an access token.
func (s *Session) LoggedIn() bool {
	return s != nil && s.AccessToken != ""
}
