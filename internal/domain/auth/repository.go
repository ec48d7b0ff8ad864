package auth

import "context"

// Repository abstracts account storage. Reads exclude soft-deleted
// rows.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	Create(ctx context.Context, acc *Account) error
	UpdateLastLogin(ctx context.Context, id string) error
}
