// Package session issues and reads the anonymous per-browser session
// token that partitions book ownership. The token is an opaque random
// UUID carried in a cookie; possession of the token is the only
// credential, there is no server-side session table.
package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session token.
const CookieName = "sessionId"

// cookieMaxAge is the session cookie lifetime.
const cookieMaxAge = 7 * 24 * time.Hour

// NewToken returns a fresh opaque session token.
func NewToken() string {
	return uuid.NewString()
}

func newCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func tokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
