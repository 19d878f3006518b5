package interfaces

import (
	"context"

	"tracker_orders/internal/domain/entities"
)

// IOrderCache caches orders served by the public tracking lookup, keyed by
// pseudonymous id. A miss is (zero, false, nil). Set never replaces a cached
// order whose UpdatedAt is newer than the one given.
type IOrderCache interface {
	Get(ctx context.Context, pseudonymousID string) (entities.Order, bool, error)
	Set(ctx context.Context, o entities.Order) error
	Invalidate(ctx context.Context, pseudonymousID string) error
}
