// Package userrepo resolves customer and driver display data from the users
// table shared with the account service.
package userrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.UserDirectory = (*PgxUserDirectory)(nil)

// PgxUserDirectory reads user profiles straight from a pgx pool.
type PgxUserDirectory struct {
	pool *pgxpool.Pool
}

func NewPgxUserDirectory(pool *pgxpool.Pool) *PgxUserDirectory {
	return &PgxUserDirectory{pool: pool}
}

func (d *PgxUserDirectory) GetUser(ctx context.Context, id kernel.UUID) (ports.UserProfile, error) {
	if err := id.Validate(); err != nil {
		return ports.UserProfile{}, err
	}

	profile := ports.UserProfile{ID: id}
	err := d.pool.QueryRow(ctx,
		`SELECT name, phone FROM users WHERE id = $1`,
		id.String(),
	).Scan(&profile.Name, &profile.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ports.UserProfile{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return ports.UserProfile{}, err
	}

	return profile, nil
}
