package ticket

import (
	"context"
	"errors"
)

// ErrNotFound is returned by the repository when no ticket matches the
// given ID.
var ErrNotFound = errors.New("ticket not found")

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, query ListQuery) ([]*Ticket, int64, error)
}
