package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
)

// The naming collaborator: a display name is assigned once per browser
// session through POST /api/session, carried in a signed cookie, and read
// back before any room or websocket operation. There are no accounts and no
// passwords; the token only vouches that this server issued the name.

var (
	defaultTokenExpiration = time.Hour * 24
	tokenCookieKey         = "name_token"
)

const (
	usernameClaim = "username"
	expClaim      = "exp"
)

type contextKey string

const usernameKey contextKey = "username"

func WithUsername(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, usernameKey, name)
}

func Username(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(usernameKey).(string)
	return name, ok
}

func (s *RoomcastApp) createNameToken(username string, exp time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		usernameClaim: username,
		expClaim:      time.Now().Add(exp).Unix(),
	})

	return token.SignedString(s.signingKey)
}

func (s *RoomcastApp) extractUsernameFromToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.signingKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	username, ok := claims[usernameClaim].(string)
	if !ok || username == "" {
		return "", fmt.Errorf("invalid username claim")
	}

	return username, nil
}

func createNameCookie(tokenString string, exp time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     tokenCookieKey,
		Value:    tokenString,
		Path:     "/",
		Expires:  time.Now().Add(exp),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}
