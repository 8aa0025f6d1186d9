package queries

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery lists the orders an actor may see, newest first.
//
// Status and created-at filters are an administrator feature; for every
// other role the scope alone decides what is returned.
//
// Example:
//
//	from := time.Now().Add(-24 * time.Hour)
//	query, err := NewListOrdersQuery(admin, nil, &from, nil)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actor  kernel.Actor
	status *order.Status
	from   *time.Time
	to     *time.Time

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(
	actor kernel.Actor,
	status *order.Status,
	from, to *time.Time,
) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	hasFilters := status != nil || from != nil || to != nil
	if hasFilters && !actor.Is(kernel.RoleAdmin) {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"filters", fmt.Errorf("filtering is only available to %s", kernel.RoleAdmin))
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if from != nil && to != nil && from.After(*to) {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"from", fmt.Errorf("%s is after %s", from.Format(time.RFC3339), to.Format(time.RFC3339)))
	}

	return ListOrdersQuery{
		actor:  actor,
		status: clonePtr(status),
		from:   clonePtr(from),
		to:     clonePtr(to),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() kernel.Actor   { return q.actor }
func (q ListOrdersQuery) Status() *order.Status { return clonePtr(q.status) }
func (q ListOrdersQuery) From() *time.Time      { return clonePtr(q.from) }
func (q ListOrdersQuery) To() *time.Time        { return clonePtr(q.to) }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
