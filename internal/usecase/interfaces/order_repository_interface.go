package interfaces

import (
	"context"
	"errors"
	"time"

	"tracker_orders/internal/domain/entities"
)

var (
	// ErrOrderVersionConflict is returned by Update when the stored order
	// changed after the caller read it.
	ErrOrderVersionConflict = errors.New("order was modified concurrently")
	// ErrOrderAlreadyExists is returned by Create when the id or the username
	// is already stored.
	ErrOrderAlreadyExists = errors.New("order already exists")
)

// IOrderRepository abstracts order persistence (DynamoDB, Postgres or memory).
//
// Lookups return a zero Order (empty ID) and a nil error when nothing matches.
// Update is a compare-and-swap on UpdatedAt: the write only succeeds when the
// stored record still carries expectedUpdatedAt.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByUsername(ctx context.Context, username string) (entities.Order, error)
	GetByPseudonymousID(ctx context.Context, pseudonymousID string) (entities.Order, error)
	Update(ctx context.Context, o entities.Order, expectedUpdatedAt time.Time) (entities.Order, error)
}
