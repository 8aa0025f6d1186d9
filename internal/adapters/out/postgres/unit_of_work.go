// Package postgres provides the GORM-based unit of work for order commands.
//
// A unit of work wraps one database transaction. Repositories obtained from
// it run inside the transaction once Begin has been called, and on the plain
// connection otherwise. Every order written through the unit of work is
// tracked and, once Commit succeeds, announced through the configured
// ports.OrderEventPublisher. Nothing is announced for a rolled back
// transaction.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Instances are not safe for concurrent use; create one per command attempt.
package postgres

import (
	"context"
	"log/slog"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates GormUnitOfWork instances sharing one
// connection pool and one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
		logger:    f.logger,
		tracked:   make([]*order.Order, 0),
	}
}

// GormUnitOfWork coordinates one transaction and the orders changed in it.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
	tracked   []*order.Order
}

// Begin starts the transaction. Calling it again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	uow.tracked = uow.tracked[:0]
	return nil
}

// Commit makes the changes durable and then publishes the tracked orders.
// A publish failure is logged; the commit has already happened and is not
// reported as failed.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.tracked = uow.tracked[:0]
		return err
	}

	uow.publishTracked(ctx)
	return nil
}

// Rollback discards the transaction. After Commit or Rollback there is no
// open transaction and gorm.ErrInvalidTransaction is returned, which lets
// callers defer it unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = uow.tracked[:0]
	return err
}

// OrderRepository returns a repository bound to the open transaction, or to
// the plain connection when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// TrackAggregate records an order written through this unit of work.
func (uow *GormUnitOfWork) TrackAggregate(aggregate *order.Order) {
	uow.tracked = append(uow.tracked, aggregate)
}

func (uow *GormUnitOfWork) publishTracked(ctx context.Context) {
	tracked := uow.tracked
	uow.tracked = make([]*order.Order, 0)

	if uow.publisher == nil {
		return
	}
	for _, aggregate := range tracked {
		if err := uow.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
			uow.logger.WarnContext(ctx, "failed to publish order change",
				"order_id", aggregate.ID().String(),
				"status", aggregate.Status().String(),
				"error", err,
			)
		}
	}
}
