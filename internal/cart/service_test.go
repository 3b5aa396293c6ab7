package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/stylesphere-storefront/internal/product"
)

var (
	dress   = product.Product{ID: "1", Name: "Royal Elegance Dress", Price: decimal.RequireFromString("100"), StockQuantity: 5}
	scarf   = product.Product{ID: "2", Name: "Silk Head Wrap", Price: decimal.RequireFromString("50"), StockQuantity: 9}
	soldOut = product.Product{ID: "3", Name: "Classic Linen Trousers", Price: decimal.RequireFromString("99.99"), StockQuantity: 0}
)

func TestAdd_RepeatedAddsMergeIntoOneLine(t *testing.T) {
	s := NewService(NewInMemoryRepository())
	ctx := context.Background()

	var sum Summary
	var err error
	for i := 0; i < 4; i++ {
		sum, err = s.Add(ctx, "sid", dress)
		require.NoError(t, err)
	}

	require.Len(t, sum.Items, 1)
	assert.Equal(t, 4, sum.Items[0].Quantity)
	assert.Equal(t, 4, sum.ItemCount)
	assert.True(t, sum.Total.Equal(decimal.NewFromInt(400)), "total %s", sum.Total)
}

func TestAdd_OutOfStockLeavesCartUnchanged(t *testing.T) {
	s := NewService(NewInMemoryRepository())
	ctx := context.Background()

	_, err := s.Add(ctx, "sid", scarf)
	require.NoError(t, err)

	_, err = s.Add(ctx, "sid", soldOut)
	assert.ErrorIs(t, err, ErrOutOfStock)

	sum, err := s.Summary(ctx, "sid")
	require.NoError(t, err)
	require.Len(t, sum.Items, 1)
	assert.Equal(t, "2", sum.Items[0].ID)
}

func TestUpdateQuantity_FloorsAtOne(t *testing.T) {
	s := NewService(NewInMemoryRepository())
	ctx := context.Background()
	_, err := s.Add(ctx, "sid", dress)
	require.NoError(t, err)

	sum, err := s.UpdateQuantity(ctx, "sid", "1", -3)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Items[0].Quantity)

	sum, err = s.UpdateQuantity(ctx, "sid", "1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, sum.ItemCount)

	sum, err = s.UpdateQuantity(ctx, "sid", "missing", 3)
	require.NoError(t, err)
	assert.Equal(t, 7, sum.ItemCount)
}

func TestRemoveAndClear(t *testing.T) {
	s := NewService(NewInMemoryRepository())
	ctx := context.Background()
	_, _ = s.Add(ctx, "sid", dress)
	_, _ = s.Add(ctx, "sid", scarf)

	sum, err := s.Remove(ctx, "sid", "1")
	require.NoError(t, err)
	require.Len(t, sum.Items, 1)
	assert.Equal(t, "2", sum.Items[0].ID)

	require.NoError(t, s.Clear(ctx, "sid"))
	sum, err = s.Summary(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, sum.Items)
	assert.True(t, sum.Total.IsZero())
}

func TestSummarize_MixedLines(t *testing.T) {
	sum := Summarize([]Item{{Product: dress, Quantity: 2}, {Product: scarf, Quantity: 1}})
	assert.Equal(t, "250.00", sum.Total.StringFixed(2))
	assert.Equal(t, 3, sum.ItemCount)
}

func TestSessionsAreIsolated(t *testing.T) {
	s := NewService(NewInMemoryRepository())
	ctx := context.Background()
	_, _ = s.Add(ctx, "a", dress)

	sum, err := s.Summary(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, sum.Items)
}
