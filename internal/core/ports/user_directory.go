package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// UserProfile is the display data the order service may show for an identity.
type UserProfile struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// UserDirectory resolves identities issued by the account service.
// Unknown identities fail with errs.ErrObjectNotFound.
type UserDirectory interface {
	GetUser(ctx context.Context, id kernel.UUID) (UserProfile, error)
}
