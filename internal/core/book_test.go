package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solumex/exchange-core/internal/domain"
)

func TestBookAddAndGet(t *testing.T) {
	book := NewBook(testPair())
	bid := limitOrder("cust-a", domain.Buy, "99", "5")
	ask := limitOrder("cust-b", domain.Sell, "101", "5")

	book.AddOrder(bid)
	book.AddOrder(ask)

	assert.Equal(t, 1, book.Bids.NumberOfOrders())
	assert.Equal(t, 1, book.Asks.NumberOfOrders())

	got, ok := book.GetOrder(bid.ID)
	require.True(t, ok)
	assert.Same(t, bid, got)

	got, ok = book.GetOrder(ask.ID)
	require.True(t, ok)
	assert.Same(t, ask, got)

	_, ok = book.GetOrder("missing")
	assert.False(t, ok)
}

func TestBookGetOrderTree(t *testing.T) {
	book := NewBook(testPair())
	bid := limitOrder("cust-a", domain.Buy, "99", "5")
	ask := limitOrder("cust-b", domain.Sell, "101", "5")
	book.AddOrder(bid)
	book.AddOrder(ask)

	assert.Same(t, book.Bids, book.GetOrderTree(bid))
	assert.Same(t, book.Asks, book.GetOrderTree(ask))

	// resolution is by membership, not by order side
	outsider := limitOrder("cust-c", domain.Buy, "99", "5")
	assert.Nil(t, book.GetOrderTree(outsider))
}

func TestBookRemoveOrder(t *testing.T) {
	book := NewBook(testPair())
	bid := limitOrder("cust-a", domain.Buy, "99", "5")
	book.AddOrder(bid)

	require.NoError(t, book.RemoveOrder(bid))
	assert.Equal(t, 0, book.Bids.NumberOfOrders())

	err := book.RemoveOrder(bid)
	assert.Equal(t, domain.ErrCodeOrderNotFound, domain.ErrorCode(err))
}
