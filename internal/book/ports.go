package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks/repository.go -package=mocks

// Repository defines the contract for session-scoped book storage.
// Every operation filters by the owning session token, so a book from
// another session is indistinguishable from a missing one.
type Repository interface {
	List(ctx context.Context, sessionID string) ([]Book, error)
	Get(ctx context.Context, id, sessionID string) (Book, error)
	Create(ctx context.Context, b *Book) error
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id, sessionID string) error
}
