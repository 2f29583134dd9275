package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/rentaltracker/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

func (c *Client) Register(ctx context.Context, in models.RegisterRequest) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, request{method: http.MethodPost, endpoint: "/auth/register", body: in}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login authenticates and, when the response carries a token, stores it.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, request{method: http.MethodPost, endpoint: "/auth/login", body: creds}, &resp); err != nil {
		return nil, err
	}

	if resp.Token != "" {
		if err := c.SetToken(ctx, resp.Token); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// Logout asks the backend to revoke the session and clears the local token
// whatever the outcome. The remote error, if any, is returned; a failure to
// clear local storage is returned only when the remote call succeeded.
func (c *Client) Logout(ctx context.Context) error {
	remoteErr := c.do(ctx, request{method: http.MethodPost, endpoint: "/auth/logout"}, nil)
	localErr := c.SetToken(ctx, "")
	if remoteErr != nil {
		return remoteErr
	}
	return localErr
}

// TokenExpired reports whether token is a JWT whose exp claim lies before now.
// The signature is not checked. Tokens that are not JWTs, or carry no exp,
// are never reported expired.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.After(now)
}

// IsUnauthorized reports whether err is a backend 401 rejection.
func IsUnauthorized(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Status == http.StatusUnauthorized
}
