package core

import (
	"github.com/shopspring/decimal"

	"github.com/solumex/exchange-core/internal/domain"
)

// OrderList is the FIFO queue of resting orders at one price level,
// a doubly-linked list threaded through the orders themselves.
type OrderList struct {
	Side  domain.Side
	Price decimal.Decimal

	head, tail *Order
	length     int
}

func NewOrderList(side domain.Side, price decimal.Decimal) *OrderList {
	return &OrderList{Side: side, Price: price}
}

func (l *OrderList) Len() int     { return l.length }
func (l *OrderList) Head() *Order { return l.head }
func (l *OrderList) Tail() *Order { return l.tail }

// AddOrder appends at the tail, preserving time priority.
func (l *OrderList) AddOrder(o *Order) {
	o.next = nil
	if l.tail == nil {
		o.prev = nil
		l.head = o
		l.tail = o
	} else {
		o.prev = l.tail
		l.tail.next = o
		l.tail = o
	}
	l.length++
}

// RemoveOrder unlinks o in O(1). o must currently be a member of this list;
// that is a precondition, not a checked contract (OrderTree.RemoveOrder is
// the checked entry point).
func (l *OrderList) RemoveOrder(o *Order) {
	switch {
	case o.prev != nil && o.next != nil:
		o.prev.next = o.next
		o.next.prev = o.prev
	case o.next != nil:
		// o was head
		l.head = o.next
		o.next.prev = nil
	case o.prev != nil:
		// o was tail
		l.tail = o.prev
		o.prev.next = nil
	default:
		l.head = nil
		l.tail = nil
	}
	o.prev = nil
	o.next = nil
	l.length--
}

// CanMatch reports whether any resident order could trade against o.
// Orders from o's own customer never qualify; predicate, when given,
// further restricts candidates.
func (l *OrderList) CanMatch(o *Order, predicate func(taker, maker *Order) bool) bool {
	for n := l.head; n != nil; n = n.next {
		if n.CustomerID() == o.CustomerID() {
			continue
		}
		if predicate != nil && !predicate(o, n) {
			continue
		}
		return true
	}
	return false
}

// Volume is the total unfilled quantity resting at this level.
func (l *OrderList) Volume() decimal.Decimal {
	vol := decimal.Zero
	for n := l.head; n != nil; n = n.next {
		vol = vol.Add(n.Unfilled())
	}
	return vol
}
