package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solumex/exchange-core/internal/domain"
)

func TestOrderTreeAddSingle(t *testing.T) {
	asks := NewOrderTree(domain.Sell)
	o := limitOrder("cust-a", domain.Sell, "100", "5")
	asks.AddOrder(o)

	assert.Equal(t, 1, asks.Depth())
	assert.Equal(t, 1, asks.NumberOfOrders())
	min, ok := asks.MinPrice()
	require.True(t, ok)
	max, ok := asks.MaxPrice()
	require.True(t, ok)
	assert.True(t, min.Equal(d("100")))
	assert.True(t, max.Equal(d("100")))
	assert.True(t, asks.DoesPriceExist(d("100")))
	assert.False(t, asks.DoesPriceExist(d("101")))

	got, ok := asks.GetOrder(o.ID)
	require.True(t, ok)
	assert.Same(t, o, got)
}

func TestOrderTreeSamePriceFIFO(t *testing.T) {
	bids := NewOrderTree(domain.Buy)
	a := limitOrder("cust-a", domain.Buy, "99", "5")
	b := limitOrder("cust-b", domain.Buy, "99", "5")
	bids.AddOrder(a)
	bids.AddOrder(b)

	lvl := bids.GetPriceList(d("99"))
	require.NotNil(t, lvl)
	assert.Same(t, a, lvl.Head())
	assert.Same(t, b, lvl.Tail())
	assert.True(t, bids.Volume().Equal(d("10")))

	t.Run("remove first keeps second at head", func(t *testing.T) {
		require.NoError(t, bids.RemoveOrder(a))
		lvl := bids.GetPriceList(d("99"))
		require.NotNil(t, lvl)
		assert.Same(t, b, lvl.Head())
		assert.Equal(t, 1, lvl.Len())
		_, ok := bids.GetOrder(a.ID)
		assert.False(t, ok)
	})

	t.Run("remove last purges the level", func(t *testing.T) {
		require.NoError(t, bids.RemoveOrder(b))
		assert.Equal(t, 0, bids.Depth())
		assert.False(t, bids.DoesPriceExist(d("99")))
		assert.Equal(t, 0, bids.NumberOfOrders())
		_, ok := bids.MinPrice()
		assert.False(t, ok)
	})
}

func TestOrderTreeSorted(t *testing.T) {
	asks := NewOrderTree(domain.Sell)
	for _, p := range []string{"103", "101", "105", "102", "104"} {
		asks.AddOrder(limitOrder("cust-a", domain.Sell, p, "1"))
	}
	assert.Equal(t, 5, asks.Depth())

	min, _ := asks.MinPrice()
	max, _ := asks.MaxPrice()
	assert.True(t, min.Equal(d("101")))
	assert.True(t, max.Equal(d("105")))

	var prices []string
	asks.Ascend(func(lvl *OrderList) bool {
		prices = append(prices, lvl.Price.String())
		return true
	})
	assert.Equal(t, []string{"101", "102", "103", "104", "105"}, prices)

	prices = prices[:0]
	asks.Descend(func(lvl *OrderList) bool {
		prices = append(prices, lvl.Price.String())
		return true
	})
	assert.Equal(t, []string{"105", "104", "103", "102", "101"}, prices)

	// no duplicate level for an existing price
	asks.AddOrder(limitOrder("cust-b", domain.Sell, "103", "1"))
	assert.Equal(t, 5, asks.Depth())
	assert.Equal(t, 6, asks.NumberOfOrders())
}

func TestOrderTreeRoundTrip(t *testing.T) {
	bids := NewOrderTree(domain.Buy)
	bids.AddOrder(limitOrder("cust-a", domain.Buy, "98", "3"))
	bids.AddOrder(limitOrder("cust-b", domain.Buy, "99", "4"))

	depth := bids.Depth()
	count := bids.NumberOfOrders()
	volume := bids.Volume()

	o := limitOrder("cust-c", domain.Buy, "97", "5")
	bids.AddOrder(o)
	require.NoError(t, bids.RemoveOrder(o))

	assert.Equal(t, depth, bids.Depth())
	assert.Equal(t, count, bids.NumberOfOrders())
	assert.True(t, volume.Equal(bids.Volume()))
}

func TestOrderTreeVolumeIdempotent(t *testing.T) {
	asks := NewOrderTree(domain.Sell)
	asks.AddOrder(limitOrder("cust-a", domain.Sell, "100", "5"))
	asks.AddOrder(limitOrder("cust-b", domain.Sell, "101", "7"))
	first := asks.Volume()
	second := asks.Volume()
	assert.True(t, first.Equal(second))
	assert.True(t, first.Equal(d("12")))
}

func TestOrderTreeAddDuplicateIgnored(t *testing.T) {
	asks := NewOrderTree(domain.Sell)
	a := limitOrder("cust-a", domain.Sell, "100", "5")
	b := limitOrder("cust-b", domain.Sell, "100", "5")
	asks.AddOrder(a)
	asks.AddOrder(b)

	// re-adding a resident order must not relink it
	asks.AddOrder(a)

	lvl := asks.GetPriceList(d("100"))
	require.NotNil(t, lvl)
	assert.Equal(t, 2, lvl.Len())
	assert.Equal(t, 2, asks.NumberOfOrders())
	assert.Same(t, a, lvl.Head())
	assert.Same(t, b, lvl.Tail())

	// length matches the reachable nodes
	reachable := 0
	for o := lvl.Head(); o != nil; o = o.Next() {
		reachable++
	}
	assert.Equal(t, lvl.Len(), reachable)
	assert.True(t, asks.Volume().Equal(d("10")))
}

func TestOrderTreeRemoveNonMember(t *testing.T) {
	asks := NewOrderTree(domain.Sell)
	asks.AddOrder(limitOrder("cust-a", domain.Sell, "100", "5"))

	stranger := limitOrder("cust-b", domain.Sell, "100", "5")
	err := asks.RemoveOrder(stranger)
	assert.Equal(t, domain.ErrCodeOrderNotFound, domain.ErrorCode(err))

	// a failed removal leaves the tree untouched
	assert.Equal(t, 1, asks.Depth())
	assert.Equal(t, 1, asks.NumberOfOrders())
}

func TestOrderTreeCanMatch(t *testing.T) {
	asks := NewOrderTree(domain.Sell)
	asks.AddOrder(limitOrder("alice", domain.Sell, "100", "5"))
	asks.AddOrder(limitOrder("alice", domain.Sell, "101", "5"))

	taker := limitOrder("alice", domain.Buy, "101", "5")
	assert.False(t, asks.CanMatch(taker, nil))

	asks.AddOrder(limitOrder("bob", domain.Sell, "102", "5"))
	assert.True(t, asks.CanMatch(taker, nil))
}
