package main

import (
	"net/http"

	"booklist/internal/book"
	"booklist/internal/session"
)

// registerBookRoutes mounts the book resource. Create only ensures a
// session exists (minting one when absent); every other route requires
// the caller to already hold a session cookie.
func registerBookRoutes(mux *http.ServeMux, h *book.HTTPHandler) {
	mux.Handle("GET /books", session.Require(http.HandlerFunc(h.List)))
	mux.Handle("POST /books", session.Ensure(http.HandlerFunc(h.Create)))
	mux.Handle("GET /books/{id}", session.Require(http.HandlerFunc(h.Get)))
	mux.Handle("PUT /books/{id}", session.Require(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /books/{id}", session.Require(http.HandlerFunc(h.Delete)))
}
