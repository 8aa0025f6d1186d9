// Package commands contains the operations that change order state.
// Each command is built through a constructor that validates its input, and
// each handler runs the change inside one unit of work.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW is a transaction over order aggregates.
	//
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil { ... }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//   repo := uow.OrderRepository()
	//   // ... read, validate, write
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates a fresh unit of work per attempt.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
