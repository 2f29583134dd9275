package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/rentaltracker/internal/client/models"
	"github.com/dmitrijs2005/rentaltracker/internal/dbx"
)

const (
	// TokenKey is the storage key of the bearer token.
	TokenKey = "auth_token"
	// UserKey is the storage key of the JSON-encoded current user.
	UserKey = "current_user"
)

// SessionStore keeps the bearer token and the last logged-in user.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) repo(db dbx.DBTX) Repository {
	return NewSQLiteRepository(db)
}

// LoadToken returns the stored token, or "" when none is stored.
func (s *SessionStore) LoadToken(ctx context.Context) (string, error) {
	v, err := s.repo(s.db).Get(ctx, TokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *SessionStore) SaveToken(ctx context.Context, token string) error {
	return s.repo(s.db).Set(ctx, TokenKey, []byte(token))
}

// ClearToken removes the token together with the cached user: a user without
// a token is meaningless.
func (s *SessionStore) ClearToken(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Delete(ctx, TokenKey); err != nil {
			return err
		}
		return r.Delete(ctx, UserKey)
	})
}

// SaveUser caches the profile of the authenticated user.
func (s *SessionStore) SaveUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return s.repo(s.db).Delete(ctx, UserKey)
	}
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.repo(s.db).Set(ctx, UserKey, b)
}

// LoadUser returns the cached user, or nil when none is stored.
func (s *SessionStore) LoadUser(ctx context.Context) (*models.User, error) {
	b, err := s.repo(s.db).Get(ctx, UserKey)
	if err != nil || b == nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &u, nil
}
