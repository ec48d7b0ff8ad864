package database

import "context"

// Transactor runs fn inside a storage transaction. Implementations
// carry the transaction in the returned context so repositories pick it
// up transparently; services stay storage-agnostic and tests can swap
// in a pass-through.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NopTransactor runs fn without a transaction. Used by unit tests and
// single-statement call sites.
type NopTransactor struct{}

func (NopTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
