package matching

import (
	"github.com/shopspring/decimal"

	"github.com/solumex/exchange-core/internal/core"
	"github.com/solumex/exchange-core/internal/domain"
)

func testPair() domain.AssetPair {
	return domain.AssetPair{
		Base:  domain.Asset{Symbol: "BTC", Decimals: 8},
		Quote: domain.Asset{Symbol: "USDT", Decimals: 2},
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func limitOrder(customer string, side domain.Side, price, quantity string, opts domain.QuoteOptions) *core.Order {
	q := domain.NewLimitQuote(testPair(), customer, "ex-test", side, d(price), d(quantity), opts)
	return core.NewOrder(q)
}

func marketOrder(customer string, side domain.Side, quantity string) *core.Order {
	q := domain.NewMarketQuote(testPair(), customer, "ex-test", side, d(quantity), domain.QuoteOptions{})
	return core.NewOrder(q)
}
