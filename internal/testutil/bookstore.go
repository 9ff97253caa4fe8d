package testutil

import (
	"context"
	"sync"
	"time"

	"booklist/internal/book"
)

// BookStore is an in-memory book.Repository for tests. It preserves
// insertion order and applies the same session scoping as the real repo.
type BookStore struct {
	mu    sync.Mutex
	order []string
	books map[string]book.Book
}

func NewBookStore() *BookStore {
	return &BookStore{books: make(map[string]book.Book)}
}

func (s *BookStore) List(ctx context.Context, sessionID string) ([]book.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []book.Book
	for _, id := range s.order {
		if b, ok := s.books[id]; ok && b.SessionID == sessionID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BookStore) Get(ctx context.Context, id, sessionID string) (book.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok || b.SessionID != sessionID {
		return book.Book{}, book.ErrNotFound
	}
	return b, nil
}

func (s *BookStore) Create(ctx context.Context, b *book.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	s.books[b.ID] = *b
	s.order = append(s.order, b.ID)
	return nil
}

func (s *BookStore) Update(ctx context.Context, b *book.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.books[b.ID]
	if !ok || stored.SessionID != b.SessionID {
		return book.ErrNotFound
	}
	s.books[b.ID] = *b
	return nil
}

func (s *BookStore) Delete(ctx context.Context, id, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok || b.SessionID != sessionID {
		return book.ErrNotFound
	}
	delete(s.books, id)
	return nil
}
