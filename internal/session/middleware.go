package session

import (
	"net/http"
)

// Ensure guarantees a session token exists for the request. When the
// cookie is absent it mints a new token, sets the outbound cookie, and
// exposes the token to the handler through the request context so the
// same request can already write under it. An existing token is reused
// unchanged. Ensure never rejects a request.
func Ensure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromCookie(r)
		if token == "" {
			token = NewToken()
			http.SetCookie(w, newCookie(token))
		}
		next.ServeHTTP(w, r.WithContext(ContextWithToken(r.Context(), token)))
	})
}

// Require rejects requests without a session cookie before they reach
// the handler. Any non-empty token is accepted at face value; ownership
// scoping in storage is what keeps a guessed token from reading another
// session's books.
func Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromCookie(r)
		if token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithToken(r.Context(), token)))
	})
}
