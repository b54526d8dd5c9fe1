package matching

import (
	"github.com/shopspring/decimal"

	"github.com/solumex/exchange-core/internal/core"
)

// Continuous is the classic continuous double auction: an incoming order
// crosses against the opposite tree best price first, FIFO within a level,
// at the maker's price. An unfilled limit remainder rests on the book
// unless the quote asked for immediate-or-cancel.
type Continuous struct{}

func NewContinuous() *Continuous {
	return &Continuous{}
}

var _ core.Matcher = (*Continuous)(nil)

func (m *Continuous) Submit(book *core.Book, order *core.Order) (*core.MatchingResult, error) {
	counter := book.Asks
	if order.IsAsk() {
		counter = book.Bids
	}

	// Snapshot the crossable levels before mutating: level removal during
	// the walk must not skip or revisit prices.
	var levels []*core.OrderList
	collect := func(lvl *core.OrderList) bool {
		if order.IsLimit() && !crosses(order, lvl.Price) {
			return false
		}
		levels = append(levels, lvl)
		return true
	}
	if order.IsBid() {
		counter.Ascend(collect)
	} else {
		counter.Descend(collect)
	}

	var trades []*core.Trade
	for _, lvl := range levels {
		if order.Unfilled().Sign() <= 0 {
			break
		}
		maker := lvl.Head()
		for maker != nil && order.Unfilled().Sign() > 0 {
			next := maker.Next()
			if maker.CustomerID() == order.CustomerID() {
				// self-trade: leave the maker untouched
				maker = next
				continue
			}
			qty := decimal.Min(order.Unfilled(), maker.Unfilled())
			trade, err := core.NewTrade(book, maker, order, qty)
			if err != nil {
				return nil, err
			}
			trades = append(trades, trade)
			if maker.IsFilled() {
				if err := counter.RemoveOrder(maker); err != nil {
					return nil, err
				}
			}
			maker = next
		}
	}

	if order.IsLimit() && order.Unfilled().Sign() > 0 && !order.Options().ImmediateOrCancel {
		book.AddOrder(order)
	}
	return core.NewMatchingResult(book, order, trades), nil
}

// crosses reports whether a limit order's price reaches a counter level.
func crosses(order *core.Order, levelPrice decimal.Decimal) bool {
	if order.IsBid() {
		return levelPrice.LessThanOrEqual(order.Price())
	}
	return levelPrice.GreaterThanOrEqual(order.Price())
}
