package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/solumex/exchange-core/internal/domain"
)

type OrderState string

const (
	StateNew             OrderState = "NEW"
	StateUnfilled        OrderState = "UNFILLED"
	StatePartiallyFilled OrderState = "PARTIALLY_FILLED"
	StateFilled          OrderState = "FILLED"
	StateCancelled       OrderState = "CANCELLED"
)

func (s OrderState) Valid() bool {
	switch s {
	case StateNew, StateUnfilled, StatePartiallyFilled, StateFilled, StateCancelled:
		return true
	}
	return false
}

// Order wraps a validated Quote and tracks how much of it has been filled.
// It is the unit stored in a book: the prev/next links tie it into the FIFO
// queue of its price level and are owned by OrderList.
type Order struct {
	ID        string
	CreatedAt time.Time

	quote  *domain.Quote
	filled decimal.Decimal
	state  OrderState

	prev, next *Order
}

// NewOrder freezes a quote into a fresh book-resident order.
func NewOrder(q *domain.Quote) *Order {
	return &Order{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		quote:     q,
		state:     StateNew,
	}
}

// RehydrateOrder rebuilds an order that already existed before a restart,
// keeping its original ID, fill and timestamp.
func RehydrateOrder(q *domain.Quote, id string, filled decimal.Decimal, state OrderState, createdAt time.Time) *Order {
	return &Order{
		ID:        id,
		CreatedAt: createdAt,
		quote:     q,
		filled:    filled,
		state:     state,
	}
}

// SetFill adds quantity to the order's filled amount and recomputes the
// state from filled vs quantity alone. The caller (the matcher, via
// NewTrade) guarantees quantity > 0 and quantity <= Unfilled().
func (o *Order) SetFill(quantity decimal.Decimal) {
	o.filled = o.filled.Add(quantity)
	switch {
	case o.Unfilled().Sign() <= 0:
		o.state = StateFilled
	case o.filled.Sign() > 0:
		o.state = StatePartiallyFilled
	default:
		o.state = StateUnfilled
	}
}

// MarkUnfilled moves a NEW order to UNFILLED. The exchange applies it after
// matching so no order ever leaves submission still NEW.
func (o *Order) MarkUnfilled() {
	if o.state == StateNew {
		o.state = StateUnfilled
	}
}

// MarkCancelled makes removal terminal: a cancelled order is skipped by
// recovery and never re-enters a book. A fully filled order stays FILLED.
func (o *Order) MarkCancelled() {
	if o.state != StateFilled {
		o.state = StateCancelled
	}
}

// Validate checks the order's own invariants and then the underlying quote.
func (o *Order) Validate() error {
	if _, err := uuid.Parse(o.ID); err != nil {
		return domain.NewError(domain.ErrCodeOrderIDInvalid, "order ID %q is not a valid UUID", o.ID)
	}
	if o.filled.Sign() < 0 {
		return domain.NewError(domain.ErrCodeOrderFilledInvalid, "order %s has negative filled amount %s", o.ID, o.filled)
	}
	if o.filled.GreaterThan(o.Quantity()) {
		return domain.NewError(domain.ErrCodeOrderFilledInvalid, "order %s filled %s exceeds quantity %s", o.ID, o.filled, o.Quantity())
	}
	if !o.state.Valid() {
		return domain.NewError(domain.ErrCodeOrderStateInvalid, "order %s has unknown state %q", o.ID, string(o.state))
	}
	return o.quote.Validate()
}

func (o *Order) Quote() *domain.Quote { return o.quote }

func (o *Order) Pair() domain.AssetPair { return o.quote.Pair }

func (o *Order) CustomerID() string { return o.quote.CustomerID }

func (o *Order) ExchangeID() string { return o.quote.ExchangeID }

func (o *Order) Side() domain.Side { return o.quote.Side }

func (o *Order) Type() domain.OrderType { return o.quote.Type }

func (o *Order) Options() domain.QuoteOptions { return o.quote.Options }

func (o *Order) IsBid() bool { return o.quote.Side == domain.Buy }

func (o *Order) IsAsk() bool { return o.quote.Side == domain.Sell }

func (o *Order) IsLimit() bool { return o.quote.Type == domain.Limit }

func (o *Order) IsMarket() bool { return o.quote.Type == domain.Market }

func (o *Order) State() OrderState { return o.state }

func (o *Order) IsFilled() bool { return o.state == StateFilled }

func (o *Order) IsPartiallyFilled() bool { return o.state == StatePartiallyFilled }

func (o *Order) IsCancelled() bool { return o.state == StateCancelled }

func (o *Order) Filled() decimal.Decimal { return o.filled }

func (o *Order) Quantity() decimal.Decimal { return o.quote.Quantity }

// Price is zero for market orders; IsMarket distinguishes that from a real
// zero (which Validate rejects anyway).
func (o *Order) Price() decimal.Decimal {
	return o.quote.Price.Decimal
}

func (o *Order) Unfilled() decimal.Decimal {
	return o.quote.Quantity.Sub(o.filled)
}

// BaseAmount is the order quantity in base-asset units.
func (o *Order) BaseAmount() decimal.Decimal {
	return o.Quantity().Truncate(o.quote.Pair.Base.Decimals)
}

// QuoteAmount is what the full quantity costs in the quote asset; zero for
// market orders, whose cost is unknown until they cross.
func (o *Order) QuoteAmount() decimal.Decimal {
	if o.IsMarket() {
		return decimal.Zero
	}
	return o.quote.Pair.GetQuoteAmount(o.Price(), o.Quantity())
}

// Next and Prev expose the FIFO neighbours within the order's price level.
func (o *Order) Next() *Order { return o.next }
func (o *Order) Prev() *Order { return o.prev }
