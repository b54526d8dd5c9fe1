package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/solumex/exchange-core/internal/domain"
)

// Trade is the immutable record of one fill between a resting maker order
// and an incoming taker order. The trade price is always the maker's price.
type Trade struct {
	ID         string
	Book       *Book
	MakerOrder *Order
	TakerOrder *Order
	Quantity   decimal.Decimal
	Price      decimal.Decimal
	Timestamp  time.Time
}

// NewTrade is the only sanctioned way to record a fill: it applies the fill
// to both orders first, so a Trade can never be observed before its effect.
func NewTrade(book *Book, maker, taker *Order, quantity decimal.Decimal) (*Trade, error) {
	if quantity.Sign() <= 0 {
		return nil, domain.NewError(domain.ErrCodeTradeQuantityInvalid, "trade quantity %s is not positive", quantity)
	}
	if quantity.GreaterThan(maker.Unfilled()) {
		return nil, domain.NewError(domain.ErrCodeTradeQuantityInvalid,
			"trade quantity %s exceeds maker %s unfilled %s", quantity, maker.ID, maker.Unfilled())
	}
	if quantity.GreaterThan(taker.Unfilled()) {
		return nil, domain.NewError(domain.ErrCodeTradeQuantityInvalid,
			"trade quantity %s exceeds taker %s unfilled %s", quantity, taker.ID, taker.Unfilled())
	}
	maker.SetFill(quantity)
	taker.SetFill(quantity)
	return &Trade{
		ID:         uuid.NewString(),
		Book:       book,
		MakerOrder: maker,
		TakerOrder: taker,
		Quantity:   quantity,
		Price:      maker.Price(),
		Timestamp:  time.Now(),
	}, nil
}

// QuoteAmount is the trade's cost in the quote asset.
func (t *Trade) QuoteAmount() decimal.Decimal {
	return t.Book.Pair.GetQuoteAmount(t.Price, t.Quantity)
}

// MatchingResult aggregates everything that happened to one submitted
// order. A matcher builds it once all trades are known; it is read-only
// afterward.
type MatchingResult struct {
	Pair   domain.AssetPair
	Book   *Book
	Order  *Order
	Quote  *domain.Quote
	Trades []*Trade
}

func NewMatchingResult(book *Book, order *Order, trades []*Trade) *MatchingResult {
	return &MatchingResult{
		Pair:   book.Pair,
		Book:   book,
		Order:  order,
		Quote:  order.Quote(),
		Trades: trades,
	}
}

// Matched reports whether any counter-order crossed with the submission.
func (r *MatchingResult) Matched() bool {
	return len(r.Trades) > 0
}

// FilledQuantity is the total quantity executed across all trades.
func (r *MatchingResult) FilledQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, t := range r.Trades {
		total = total.Add(t.Quantity)
	}
	return total
}
