// Package exchange owns the book registry and fronts the matching core:
// request-level validation happens here, before any structure is touched.
package exchange

import (
	"context"

	"github.com/solumex/exchange-core/internal/core"
	"github.com/solumex/exchange-core/internal/domain"
	"github.com/solumex/exchange-core/internal/matching"
	"github.com/solumex/exchange-core/internal/port"
)

type Exchange struct {
	algorithm matching.Algorithm
	matcher   core.Matcher
	repo      port.Repository // optional

	books map[string]*core.Book
	pairs map[string]domain.AssetPair
}

// New builds an exchange for the given asset pairs, with the matcher
// selected by algorithm name. repo may be nil.
func New(algorithm matching.Algorithm, pairs []domain.AssetPair, repo port.Repository) (*Exchange, error) {
	matcher, err := matching.New(algorithm)
	if err != nil {
		return nil, err
	}
	e := &Exchange{
		algorithm: algorithm,
		matcher:   matcher,
		repo:      repo,
		books:     make(map[string]*core.Book),
		pairs:     make(map[string]domain.AssetPair),
	}
	for _, p := range pairs {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		e.pairs[p.Symbol()] = p
		e.books[p.Symbol()] = core.NewBook(p)
	}
	return e, nil
}

func (e *Exchange) Algorithm() matching.Algorithm { return e.algorithm }

// Book returns the live book for symbol.
func (e *Exchange) Book(symbol string) (*core.Book, bool) {
	b, ok := e.books[symbol]
	return b, ok
}

// SubmitOrder validates the quote, freezes it into a new order and hands it
// to the matcher. Validation completes before any mutation starts; a
// rejected quote leaves every book untouched.
func (e *Exchange) SubmitOrder(ctx context.Context, q *domain.Quote) (*core.MatchingResult, error) {
	book, err := e.validateQuote(q)
	if err != nil {
		return nil, err
	}
	order := core.NewOrder(q)
	return e.route(ctx, book, order)
}

// ResubmitOrder re-validates an already-instantiated order and re-enters it
// into the live book, keeping its ID, fill and timestamp. Used for state
// recovery after a restart. An order already resident in the book is left
// where it is, so recovery can run more than once.
func (e *Exchange) ResubmitOrder(ctx context.Context, o *core.Order) (*core.MatchingResult, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.IsCancelled() {
		return nil, domain.NewError(domain.ErrCodeOrderStateInvalid, "order %s was cancelled and cannot re-enter the book", o.ID)
	}
	book, err := e.validateQuote(o.Quote())
	if err != nil {
		return nil, err
	}
	if resident, ok := book.GetOrder(o.ID); ok && resident == o {
		return core.NewMatchingResult(book, o, nil), nil
	}
	return e.route(ctx, book, o)
}

// RemoveOrder validates o, takes it off its book and cancels it. Removal is
// terminal: the order never comes back through Recover.
func (e *Exchange) RemoveOrder(ctx context.Context, o *core.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	book, ok := e.books[o.Pair().Symbol()]
	if !ok {
		return domain.NewError(domain.ErrCodeAssetPairUnsupported, "asset pair %s is not traded here", o.Pair().Symbol())
	}
	if err := book.RemoveOrder(o); err != nil {
		return err
	}
	o.MarkCancelled()
	if e.repo != nil {
		_ = e.repo.SaveOrder(ctx, o)
	}
	return nil
}

// Recover reloads open orders from the repository and resubmits them,
// oldest first, so the books match their pre-restart shape.
func (e *Exchange) Recover(ctx context.Context) error {
	if e.repo == nil {
		return nil
	}
	for symbol := range e.books {
		orders, err := e.repo.LoadOpenOrders(ctx, symbol)
		if err != nil {
			return err
		}
		for _, o := range orders {
			if _, err := e.ResubmitOrder(ctx, o); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Exchange) validateQuote(q *domain.Quote) (*core.Book, error) {
	book, ok := e.books[q.Pair.Symbol()]
	if !ok {
		return nil, domain.NewError(domain.ErrCodeAssetPairUnsupported, "asset pair %s is not traded here", q.Pair.Symbol())
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if e.algorithm == matching.AlgorithmOTC && q.Type != domain.Limit {
		return nil, domain.NewError(domain.ErrCodeOrderTypeUnsupported,
			"an OTC exchange only accepts LIMIT quotes, got %s", string(q.Type))
	}
	return book, nil
}

func (e *Exchange) route(ctx context.Context, book *core.Book, order *core.Order) (*core.MatchingResult, error) {
	res, err := e.matcher.Submit(book, order)
	if err != nil {
		return nil, err
	}
	// a matcher may leave the order NEW only when genuinely unmatched
	order.MarkUnfilled()
	if e.repo != nil {
		_ = e.repo.SaveOrder(ctx, order)
		for _, t := range res.Trades {
			_ = e.repo.SaveTrade(ctx, t)
			_ = e.repo.SaveOrder(ctx, t.MakerOrder)
		}
	}
	return res, nil
}
