package book

import (
	"context"

	"github.com/google/uuid"
)

// Service provides session-scoped book operations.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book owned by the session.
func (s *Service) List(ctx context.Context, sessionID string) ([]Book, error) {
	return s.repo.List(ctx, sessionID)
}

// Get returns the book matching id within the session, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id, sessionID string) (Book, error) {
	return s.repo.Get(ctx, id, sessionID)
}

// Create inserts a new book owned by the session and returns it with
// its generated id and creation timestamp.
func (s *Service) Create(ctx context.Context, sessionID string, in NewBook) (Book, error) {
	b := Book{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Author:    in.Author,
		Genre:     in.Genre,
		SessionID: sessionID,
	}
	if err := s.repo.Create(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Update applies a partial update to a previously located book. The
// caller must have fetched b through Get so the mutation only ever
// targets a record the session is allowed to see.
func (s *Service) Update(ctx context.Context, b *Book, p Patch) error {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
	return s.repo.Update(ctx, b)
}

// Delete removes a previously located book.
func (s *Service) Delete(ctx context.Context, b *Book) error {
	return s.repo.Delete(ctx, b.ID, b.SessionID)
}
