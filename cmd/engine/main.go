package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/solumex/exchange-core/internal/adapter/inmemory"
	"github.com/solumex/exchange-core/internal/config"
	"github.com/solumex/exchange-core/internal/domain"
	"github.com/solumex/exchange-core/internal/exchange"
)

func main() {
	_ = godotenv.Load(".env")

	path := os.Getenv("ENGINE_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	repo := inmemory.NewRepo()
	ex, err := exchange.New(cfg.MatchingAlgorithm(), cfg.AssetPairs(), repo)
	if err != nil {
		log.Fatalf("failed to build exchange: %v", err)
	}

	ctx := context.Background()
	pair := cfg.AssetPairs()[0]
	log.Printf("running %s matching on %s", cfg.Algorithm, pair.Symbol())

	ask := domain.NewLimitQuote(pair, "maker", "demo", domain.Sell,
		decimal.RequireFromString("101"), decimal.RequireFromString("5"),
		domain.QuoteOptions{AllowPartialFill: true})
	if _, err := ex.SubmitOrder(ctx, ask); err != nil {
		log.Fatalf("submit ask: %v", err)
	}

	bid := domain.NewLimitQuote(pair, "taker", "demo", domain.Buy,
		decimal.RequireFromString("101"), decimal.RequireFromString("2"),
		domain.QuoteOptions{AllowPartialFill: true})
	res, err := ex.SubmitOrder(ctx, bid)
	if err != nil {
		log.Fatalf("submit bid: %v", err)
	}

	for _, t := range res.Trades {
		log.Printf("trade %s: %s @ %s (%s %s)", t.ID, t.Quantity, t.Price, t.QuoteAmount(), pair.Quote.Symbol)
	}

	book, _ := ex.Book(pair.Symbol())
	log.Printf("asks: depth=%d orders=%d volume=%s", book.Asks.Depth(), book.Asks.NumberOfOrders(), book.Asks.Volume())
	log.Printf("bids: depth=%d orders=%d volume=%s", book.Bids.Depth(), book.Bids.NumberOfOrders(), book.Bids.Volume())
}
