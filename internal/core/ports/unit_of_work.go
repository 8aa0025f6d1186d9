package ports

import (
	"context"
)

// UnitOfWorkFactory creates one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Client code drives the
// transaction explicitly; aggregates written through its repositories are
// announced only after Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// OrderRepository is bound to the transaction started by Begin, or to the
	// plain connection when no transaction is active.
	OrderRepository() OrderRepository
}
