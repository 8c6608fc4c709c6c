package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/minsu-cho/sajubook/internal/client/models"
	"github.com/minsu-cho/sajubook/internal/dbx"
)

// Slot keys inside the session table.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUser         = "user"
)

// SQLiteStore persists the session in a local SQLite key-value table.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func getSlot(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func setSlot(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Get loads the stored session. A missing token, a missing profile, or a
// profile that does not decode all read as no session (nil, nil); only
// database failures are reported as errors.
func (s *SQLiteStore) Get(ctx context.Context) (*Session, error) {
	token, err := getSlot(ctx, s.db, keyAccessToken)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, nil
	}

	rawUser, err := getSlot(ctx, s.db, keyUser)
	if err != nil {
		return nil, err
	}
	if len(rawUser) == 0 {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		// Corrupt profile: fail safe to logged out.
		return nil, nil
	}

	refresh, err := getSlot(ctx, s.db, keyRefreshToken)
	if err != nil {
		return nil, err
	}

	return &Session{
		AccessToken:  string(token),
		RefreshToken: string(refresh),
		User:         &user,
	}, nil
}

// Set replaces the stored session. All slots are written in one transaction
// so a reader never observes a token without its profile.
func (s *SQLiteStore) Set(ctx context.Context, sess *Session) error {
	if sess == nil || sess.AccessToken == "" || sess.User == nil {
		return fmt.Errorf("incomplete session: token and user are required")
	}

	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := setSlot(ctx, tx, keyAccessToken, []byte(sess.AccessToken)); err != nil {
			return err
		}
		if err := setSlot(ctx, tx, keyRefreshToken, []byte(sess.RefreshToken)); err != nil {
			return err
		}
		return setSlot(ctx, tx, keyUser, rawUser)
	})
}

// Clear removes every session slot. Clearing an empty store is a no-op.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
