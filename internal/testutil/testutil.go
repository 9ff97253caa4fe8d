package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"booklist/internal/book"
	"booklist/internal/session"
)

// TestSessionID is a fixed session token for tests.
const TestSessionID = "11111111-2222-4333-8444-555555555555"

// TestBook is a mock book for testing.
var TestBook = book.Book{
	ID:        "aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeeee",
	Title:     "Test Book Title",
	Author:    "Test Author",
	Genre:     "Fiction",
	CreatedAt: time.Now(),
	SessionID: TestSessionID,
}

// NewRequest creates a new HTTP request for testing.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithSession creates a new HTTP request carrying a session cookie.
func NewRequestWithSession(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	return r
}

// RecordResponse records the HTTP response for testing.
type RecordResponse struct {
	Code   int
	Header http.Header
	Raw    string
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Raw:    string(bodyBytes),
		Body:   bodyMap,
	}
}

// SessionCookie returns the sessionId cookie from a recorded response,
// or nil when none was set.
func SessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}
