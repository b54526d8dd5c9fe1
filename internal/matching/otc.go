package matching

import (
	"github.com/shopspring/decimal"

	"github.com/solumex/exchange-core/internal/core"
	"github.com/solumex/exchange-core/internal/domain"
)

// OTC matches orders bilaterally: one incoming order against exactly one
// counter-order at the same price. Quantities must line up exactly unless
// both sides allow partial fills. Only limit orders are accepted; with no
// counterparty the order rests and waits for one.
type OTC struct{}

func NewOTC() *OTC {
	return &OTC{}
}

var _ core.Matcher = (*OTC)(nil)

func (m *OTC) Submit(book *core.Book, order *core.Order) (*core.MatchingResult, error) {
	if !order.IsLimit() {
		return nil, domain.NewError(domain.ErrCodeOrderTypeUnsupported,
			"OTC matching only accepts LIMIT orders, got %s", string(order.Type()))
	}

	counter := book.Asks
	if order.IsAsk() {
		counter = book.Bids
	}

	lvl := counter.GetPriceList(order.Price())
	if lvl == nil {
		book.AddOrder(order)
		return core.NewMatchingResult(book, order, nil), nil
	}

	if !lvl.CanMatch(order, quantitiesLineUp) {
		if lvl.CanMatch(order, nil) {
			// a counterparty exists at this price but the sizes cannot pair
			return nil, domain.NewError(domain.ErrCodeOTCQuantityMismatch,
				"no counter-order at %s matches quantity %s without partial fills", order.Price(), order.Unfilled())
		}
		book.AddOrder(order)
		return core.NewMatchingResult(book, order, nil), nil
	}

	maker := lvl.Head()
	for maker != nil {
		if maker.CustomerID() != order.CustomerID() && quantitiesLineUp(order, maker) {
			break
		}
		maker = maker.Next()
	}
	if !maker.Price().Equal(order.Price()) {
		return nil, domain.NewError(domain.ErrCodeOTCPriceMismatch,
			"matched counter-order %s priced %s against %s", maker.ID, maker.Price(), order.Price())
	}

	qty := decimal.Min(order.Unfilled(), maker.Unfilled())
	trade, err := core.NewTrade(book, maker, order, qty)
	if err != nil {
		return nil, err
	}
	if maker.IsFilled() {
		if err := counter.RemoveOrder(maker); err != nil {
			return nil, err
		}
	}
	if order.Unfilled().Sign() > 0 {
		book.AddOrder(order)
	}
	return core.NewMatchingResult(book, order, []*core.Trade{trade}), nil
}

// quantitiesLineUp is the OTC pairing rule: equal unfilled quantities, or
// partial fills permitted by both sides.
func quantitiesLineUp(taker, maker *core.Order) bool {
	if taker.Unfilled().Equal(maker.Unfilled()) {
		return true
	}
	return taker.Options().AllowPartialFill && maker.Options().AllowPartialFill
}
