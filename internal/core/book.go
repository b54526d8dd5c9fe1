package core

import (
	"github.com/solumex/exchange-core/internal/domain"
)

// Book is one asset pair's two-sided order book. An order ID is resident in
// at most one of the two trees at any time.
type Book struct {
	Pair domain.AssetPair
	Bids *OrderTree
	Asks *OrderTree
}

func NewBook(pair domain.AssetPair) *Book {
	return &Book{
		Pair: pair,
		Bids: NewOrderTree(domain.Buy),
		Asks: NewOrderTree(domain.Sell),
	}
}

// AddOrder places o on the tree matching its side.
func (b *Book) AddOrder(o *Order) {
	if o.IsBid() {
		b.Bids.AddOrder(o)
	} else {
		b.Asks.AddOrder(o)
	}
}

// GetOrder looks the ID up in both trees.
func (b *Book) GetOrder(id string) (*Order, bool) {
	if o, ok := b.Bids.GetOrder(id); ok {
		return o, true
	}
	return b.Asks.GetOrder(id)
}

// GetOrderTree resolves which tree currently holds o by membership, not by
// the order's side, so it stays right even if side and storage ever
// diverge. Returns nil when o is resident in neither tree.
func (b *Book) GetOrderTree(o *Order) *OrderTree {
	if b.Bids.Contains(o) {
		return b.Bids
	}
	if b.Asks.Contains(o) {
		return b.Asks
	}
	return nil
}

// RemoveOrder drops o from whichever tree holds it.
func (b *Book) RemoveOrder(o *Order) error {
	tree := b.GetOrderTree(o)
	if tree == nil {
		return domain.NewError(domain.ErrCodeOrderNotFound, "order %s is not resident in the %s book", o.ID, b.Pair.Symbol())
	}
	return tree.RemoveOrder(o)
}
