package services

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// StatusMachine authorises and applies status transitions.
// Authorisation is checked before the transition table, so an outsider
// learns nothing about the order's current state.
//
// StatusMachine does not persist anything. The caller stores the order with
// a compare-and-swap on the status it loaded.
//
// Example usage:
//
//	machine, _ := services.NewStatusMachine(services.NewAccessPolicy(), services.DefaultWorkflowConfig(), nil)
//	expected := o.Status()
//	if err := machine.Apply(actor, o, owner, order.Accepted); err != nil {
//	    return err
//	}
//	err = repo.UpdateIfStatus(ctx, o, expected)
type StatusMachine struct {
	policy AccessPolicy
	config WorkflowConfig
	now    func() time.Time
}

// NewStatusMachine builds a machine with the given clock; nil means time.Now.
func NewStatusMachine(policy AccessPolicy, config WorkflowConfig, now func() time.Time) (StatusMachine, error) {
	if err := config.Validate(); err != nil {
		return StatusMachine{}, err
	}
	if now == nil {
		now = time.Now
	}
	return StatusMachine{policy: policy, config: config, now: now}, nil
}

// Apply moves o to target on behalf of actor. restaurantOwner is the owner
// of o's restaurant, or nil if the restaurant cannot be resolved.
//
// Errors:
//   - errs.ErrAccessDenied when the actor has no capacity on the order
//   - errs.ErrInvalidTransition when the actor's table row forbids the move
func (m StatusMachine) Apply(actor kernel.Actor, o *order.Order, restaurantOwner *kernel.UUID, target order.Status) error {
	if err := errors.Join(actor.Validate(), o.Validate()); err != nil {
		return err
	}

	role, ok := m.policy.TransitionCapacity(actor, o, restaurantOwner, target)
	if !ok {
		return errs.NewAccessDeniedError("update status of", "order "+o.ID().String())
	}

	return o.ApplyTransition(role, actor.ID(), target, m.now().UTC(), m.config.DeliveryWindow())
}
