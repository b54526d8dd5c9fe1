package core

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/solumex/exchange-core/internal/domain"
)

// OrderTree holds every price level on one side of a book: a price-sorted
// slice of order lists plus an order-ID index. The sorted slice is the
// single source of price ordering; levels are created on the first order at
// a price and destroyed with the last.
type OrderTree struct {
	Side domain.Side

	levels []*OrderList // ascending by price
	orders map[string]*Order
}

func NewOrderTree(side domain.Side) *OrderTree {
	return &OrderTree{Side: side, orders: make(map[string]*Order)}
}

// searchLevel returns the index of price in the level slice, or the index
// at which a new level for it would be inserted.
func (t *OrderTree) searchLevel(price decimal.Decimal) (int, bool) {
	i := sort.Search(len(t.levels), func(i int) bool {
		return t.levels[i].Price.GreaterThanOrEqual(price)
	})
	if i < len(t.levels) && t.levels[i].Price.Equal(price) {
		return i, true
	}
	return i, false
}

// AddOrder inserts o at its price level, creating the level if needed, and
// registers it in the ID index. An ID already resident in the tree is left
// untouched: re-adding would relink the node and corrupt its level.
func (t *OrderTree) AddOrder(o *Order) {
	if _, ok := t.orders[o.ID]; ok {
		return
	}
	i, found := t.searchLevel(o.Price())
	if !found {
		lvl := NewOrderList(t.Side, o.Price())
		t.levels = append(t.levels, nil)
		copy(t.levels[i+1:], t.levels[i:])
		t.levels[i] = lvl
	}
	t.levels[i].AddOrder(o)
	t.orders[o.ID] = o
}

// RemoveOrder takes o out of its price level, purging the level when it
// empties, and drops o from the ID index. The three removals happen
// together; the only failure point is the membership check up front.
func (t *OrderTree) RemoveOrder(o *Order) error {
	indexed, ok := t.orders[o.ID]
	if !ok || indexed != o {
		return domain.NewError(domain.ErrCodeOrderNotFound, "order %s is not resident in the %s tree", o.ID, string(t.Side))
	}
	i, found := t.searchLevel(o.Price())
	if !found {
		return domain.NewError(domain.ErrCodeOrderNotFound, "no %s price level at %s for order %s", string(t.Side), o.Price(), o.ID)
	}
	lvl := t.levels[i]
	lvl.RemoveOrder(o)
	if lvl.Len() == 0 {
		t.levels = append(t.levels[:i], t.levels[i+1:]...)
	}
	delete(t.orders, o.ID)
	return nil
}

func (t *OrderTree) GetOrder(id string) (*Order, bool) {
	o, ok := t.orders[id]
	return o, ok
}

// Contains reports whether exactly this order is resident in the tree.
func (t *OrderTree) Contains(o *Order) bool {
	indexed, ok := t.orders[o.ID]
	return ok && indexed == o
}

func (t *OrderTree) DoesPriceExist(price decimal.Decimal) bool {
	_, found := t.searchLevel(price)
	return found
}

// GetPriceList returns the level at price, nil when none exists.
func (t *OrderTree) GetPriceList(price decimal.Decimal) *OrderList {
	if i, found := t.searchLevel(price); found {
		return t.levels[i]
	}
	return nil
}

func (t *OrderTree) MinLevel() *OrderList {
	if len(t.levels) == 0 {
		return nil
	}
	return t.levels[0]
}

func (t *OrderTree) MaxLevel() *OrderList {
	if len(t.levels) == 0 {
		return nil
	}
	return t.levels[len(t.levels)-1]
}

// MinPrice and MaxPrice report the extreme resident prices; ok is false on
// an empty tree.
func (t *OrderTree) MinPrice() (decimal.Decimal, bool) {
	if lvl := t.MinLevel(); lvl != nil {
		return lvl.Price, true
	}
	return decimal.Zero, false
}

func (t *OrderTree) MaxPrice() (decimal.Decimal, bool) {
	if lvl := t.MaxLevel(); lvl != nil {
		return lvl.Price, true
	}
	return decimal.Zero, false
}

// Depth is the number of distinct resident price levels.
func (t *OrderTree) Depth() int { return len(t.levels) }

// NumberOfOrders is the count of resident orders across all levels.
func (t *OrderTree) NumberOfOrders() int { return len(t.orders) }

// Volume recomputes the total unfilled quantity across all levels on every
// call; nothing is cached, so it can never go stale.
func (t *OrderTree) Volume() decimal.Decimal {
	vol := decimal.Zero
	for _, lvl := range t.levels {
		vol = vol.Add(lvl.Volume())
	}
	return vol
}

// CanMatch reports whether any level holds a counter-candidate for o.
func (t *OrderTree) CanMatch(o *Order, predicate func(taker, maker *Order) bool) bool {
	for _, lvl := range t.levels {
		if lvl.CanMatch(o, predicate) {
			return true
		}
	}
	return false
}

// Ascend visits levels from the lowest price upward until fn returns false.
func (t *OrderTree) Ascend(fn func(*OrderList) bool) {
	for _, lvl := range t.levels {
		if !fn(lvl) {
			return
		}
	}
}

// Descend visits levels from the highest price downward until fn returns
// false.
func (t *OrderTree) Descend(fn func(*OrderList) bool) {
	for i := len(t.levels) - 1; i >= 0; i-- {
		if !fn(t.levels[i]) {
			return
		}
	}
}
