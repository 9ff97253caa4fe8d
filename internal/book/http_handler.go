package book

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"booklist/internal/httpx"
	"booklist/internal/session"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type bookIDParam struct {
	ID string `validate:"required,uuid4"`
}

type createBookRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Genre  string `json:"genre" validate:"required"`
}

type updateBookRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Genre  *string `json:"genre"`
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	token := session.TokenFrom(r)

	books, err := h.service.List(r.Context(), token)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []Book{}
	}

	httpx.JSON(w, http.StatusOK, map[string]any{"books": books})
}

// Get handles GET /books/{id}. A miss resolves to an empty 200 payload
// rather than a 404; a book owned by another session is a miss.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if details := httpx.ValidateStruct(bookIDParam{ID: id}); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book id", details)
		return
	}
	token := session.TokenFrom(r)

	b, err := h.service.Get(r.Context(), id, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSON(w, http.StatusOK, struct{}{})
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{"book": b})
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(input); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	token := session.TokenFrom(r)
	_, err := h.service.Create(r.Context(), token, NewBook{
		Title:  input.Title,
		Author: input.Author,
		Genre:  input.Genre,
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Update handles PUT /books/{id}. The ownership-scoped lookup runs
// before the body is read, so a PUT against a missing book is a 404
// even when the body would not validate.
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if details := httpx.ValidateStruct(bookIDParam{ID: id}); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book id", details)
		return
	}
	token := session.TokenFrom(r)

	current, err := h.service.Get(r.Context(), id, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.PlainError(w, http.StatusNotFound, err.Error())
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	// An empty body is a valid empty patch.
	var input updateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	err = h.service.Update(r.Context(), &current, Patch{
		Title:  input.Title,
		Author: input.Author,
		Genre:  input.Genre,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.PlainError(w, http.StatusNotFound, err.Error())
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.NoContent(w)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if details := httpx.ValidateStruct(bookIDParam{ID: id}); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book id", details)
		return
	}
	token := session.TokenFrom(r)

	current, err := h.service.Get(r.Context(), id, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.PlainError(w, http.StatusNotFound, err.Error())
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	if err := h.service.Delete(r.Context(), &current); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.PlainError(w, http.StatusNotFound, err.Error())
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.NoContent(w)
}
