package session

import (
	"context"
	"net/http"
)

type contextKey string

const tokenKey contextKey = "sessionToken"

// TokenFrom retrieves the session token from the request context.
func TokenFrom(r *http.Request) string {
	if v, ok := r.Context().Value(tokenKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithToken returns a new context carrying the session token.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}
