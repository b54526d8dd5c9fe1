package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/solumex/exchange-core/internal/core"
	"github.com/solumex/exchange-core/internal/port"
)

// Repo keeps orders and trades in process memory. It is the only adapter
// the engine ships: durable storage is a concern of the surrounding
// service, not of the book core.
type Repo struct {
	mu     sync.Mutex
	orders map[string]*core.Order
	trades map[string][]*core.Trade
}

var _ port.Repository = (*Repo)(nil)

func NewRepo() *Repo {
	return &Repo{
		orders: make(map[string]*core.Order),
		trades: make(map[string][]*core.Trade),
	}
}

func (r *Repo) SaveOrder(ctx context.Context, o *core.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	return nil
}

func (r *Repo) SaveTrade(ctx context.Context, t *core.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trades[t.MakerOrder.ID] = append(r.trades[t.MakerOrder.ID], t)
	r.trades[t.TakerOrder.ID] = append(r.trades[t.TakerOrder.ID], t)
	return nil
}

func (r *Repo) LoadOpenOrders(ctx context.Context, symbol string) ([]*core.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []*core.Order
	for _, o := range r.orders {
		if o.Pair().Symbol() != symbol {
			continue
		}
		switch o.State() {
		case core.StateUnfilled, core.StatePartiallyFilled:
			res = append(res, o)
		}
	}
	// oldest first so resubmission preserves time priority
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})
	return res, nil
}

// TradesForOrder returns every trade the order took part in.
func (r *Repo) TradesForOrder(orderID string) []*core.Trade {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.trades[orderID]
}
