package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Asset is one leg of a traded pair. Decimals is the number of fractional
// digits amounts denominated in this asset may carry.
type Asset struct {
	Symbol   string
	Decimals int32
}

// AssetPair is the instrument a book trades: quantities are denominated in
// the base asset, prices in the quote asset.
type AssetPair struct {
	Base  Asset
	Quote Asset
}

func (p AssetPair) Symbol() string {
	return p.Base.Symbol + "/" + p.Quote.Symbol
}

func (p AssetPair) Validate() error {
	if p.Base.Symbol == "" || p.Quote.Symbol == "" {
		return NewError(ErrCodeAssetPairInvalid, "asset pair is missing a base or quote symbol")
	}
	if strings.EqualFold(p.Base.Symbol, p.Quote.Symbol) {
		return NewError(ErrCodeAssetPairInvalid, "base and quote assets are both %s", p.Base.Symbol)
	}
	if p.Base.Decimals < 0 || p.Quote.Decimals < 0 {
		return NewError(ErrCodeAssetPairInvalid, "negative decimal count on asset pair %s", p.Symbol())
	}
	return nil
}

// GetQuoteAmount converts a base quantity at a price into the quote-asset
// amount it costs, rounded to the quote asset's decimals.
func (p AssetPair) GetQuoteAmount(price, quantity decimal.Decimal) decimal.Decimal {
	return price.Mul(quantity).Round(p.Quote.Decimals)
}

// GetBaseAmount converts a quote-asset amount at a price back into base
// units, rounded down to the base asset's decimals.
func (p AssetPair) GetBaseAmount(price, quoteAmount decimal.Decimal) decimal.Decimal {
	if price.IsZero() {
		return decimal.Zero
	}
	return quoteAmount.DivRound(price, p.Base.Decimals+1).Truncate(p.Base.Decimals)
}

// ExceedsPrecision reports whether d carries more fractional digits than
// places allows.
func ExceedsPrecision(d decimal.Decimal, places int32) bool {
	return !d.Equal(d.Truncate(places))
}
