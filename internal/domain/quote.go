package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Side string
type OrderType string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"

	Limit  OrderType = "LIMIT"
	Market OrderType = "MARKET"
)

func (s Side) Valid() bool {
	return s == Buy || s == Sell
}

func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

func (t OrderType) Valid() bool {
	return t == Limit || t == Market
}

// QuoteOptions carries the customer's fill preferences.
type QuoteOptions struct {
	// AllowPartialFill permits the order to match a counter-order of a
	// different quantity. OTC matching requires it on both sides before
	// pairing orders of unequal size.
	AllowPartialFill bool
	// ImmediateOrCancel stops an unfilled remainder from resting on the
	// book after matching.
	ImmediateOrCancel bool
}

// Quote is a validated trading request: everything the customer asked for,
// frozen before an Order is created from it. Price is unset for market
// quotes.
type Quote struct {
	ID         string
	Pair       AssetPair
	CustomerID string
	ExchangeID string
	Side       Side
	Type       OrderType
	Price      decimal.NullDecimal
	Quantity   decimal.Decimal
	Options    QuoteOptions
	CreatedAt  time.Time
}

// NewLimitQuote builds a LIMIT quote with a fresh ID.
func NewLimitQuote(pair AssetPair, customerID, exchangeID string, side Side, price, quantity decimal.Decimal, opts QuoteOptions) *Quote {
	return &Quote{
		ID:         uuid.NewString(),
		Pair:       pair,
		CustomerID: customerID,
		ExchangeID: exchangeID,
		Side:       side,
		Type:       Limit,
		Price:      decimal.NullDecimal{Decimal: price, Valid: true},
		Quantity:   quantity,
		Options:    opts,
		CreatedAt:  time.Now(),
	}
}

// NewMarketQuote builds a MARKET quote; its price stays unset.
func NewMarketQuote(pair AssetPair, customerID, exchangeID string, side Side, quantity decimal.Decimal, opts QuoteOptions) *Quote {
	return &Quote{
		ID:         uuid.NewString(),
		Pair:       pair,
		CustomerID: customerID,
		ExchangeID: exchangeID,
		Side:       side,
		Type:       Market,
		Quantity:   quantity,
		Options:    opts,
		CreatedAt:  time.Now(),
	}
}

// Validate checks the quote invariants in a fixed order and returns the
// first violation as a coded error. It has no side effects.
func (q *Quote) Validate() error {
	if err := q.Pair.Validate(); err != nil {
		return err
	}
	if q.ID == "" {
		return NewError(ErrCodeQuoteIDInvalid, "quote has no ID")
	}
	if _, err := uuid.Parse(q.ID); err != nil {
		return NewError(ErrCodeQuoteIDInvalid, "quote ID %q is not a valid UUID", q.ID)
	}
	if q.CustomerID == "" {
		return NewError(ErrCodeCustomerIDMissing, "quote %s has no customer ID", q.ID)
	}
	if q.ExchangeID == "" {
		return NewError(ErrCodeExchangeIDMissing, "quote %s has no exchange ID", q.ID)
	}
	if !q.Side.Valid() {
		return NewError(ErrCodeOrderSideInvalid, "unknown side %q", string(q.Side))
	}
	if !q.Type.Valid() {
		return NewError(ErrCodeOrderTypeInvalid, "unknown order type %q", string(q.Type))
	}
	switch q.Type {
	case Limit:
		if !q.Price.Valid {
			return NewError(ErrCodeOrderPriceInvalid, "limit quote %s has no price", q.ID)
		}
		if q.Price.Decimal.Sign() <= 0 {
			return NewError(ErrCodeOrderPriceInvalid, "limit quote %s has non-positive price %s", q.ID, q.Price.Decimal)
		}
	case Market:
		if q.Price.Valid {
			return NewError(ErrCodeOrderPriceInvalid, "market quote %s must not carry a price", q.ID)
		}
	}
	if q.Quantity.Sign() <= 0 {
		return NewError(ErrCodeOrderQuantityInvalid, "quote %s has non-positive quantity %s", q.ID, q.Quantity)
	}
	if ExceedsPrecision(q.Quantity, q.Pair.Base.Decimals) {
		return NewError(ErrCodeOrderQuantityPrecision,
			"quantity %s exceeds %d decimals of %s", q.Quantity, q.Pair.Base.Decimals, q.Pair.Base.Symbol)
	}
	if q.Price.Valid && ExceedsPrecision(q.Price.Decimal, q.Pair.Quote.Decimals) {
		return NewError(ErrCodeOrderPricePrecision,
			"price %s exceeds %d decimals of %s", q.Price.Decimal, q.Pair.Quote.Decimals, q.Pair.Quote.Symbol)
	}
	return nil
}

// Clone returns an independent copy. Every field is a value type (decimals
// are immutable), so copying the struct is enough; revisit if a reference
// field is ever added.
func (q *Quote) Clone() *Quote {
	cp := *q
	return &cp
}
