package port

import (
	"context"

	"github.com/solumex/exchange-core/internal/core"
)

// Repository is the seam through which orders and trades leave the engine
// and through which still-open orders come back after a restart. The engine
// treats writes as best-effort: a failed save never unwinds a match.
type Repository interface {
	SaveOrder(ctx context.Context, o *core.Order) error
	SaveTrade(ctx context.Context, t *core.Trade) error
	// LoadOpenOrders returns the orders for symbol that should re-enter
	// the live book, oldest first.
	LoadOpenOrders(ctx context.Context, symbol string) ([]*core.Order, error)
}
