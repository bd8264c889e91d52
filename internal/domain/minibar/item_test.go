//go:build unit

package minibar_test

import (
	"errors"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/minibar"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, stock int) *minibar.Item {
	t.Helper()
	it, err := minibar.NewItem("cola", "Cola", minibar.CategoryMinibar, stock, decimal.NewFromInt(60))
	require.NoError(t, err)
	return it
}

func TestItemConsume(t *testing.T) {
	t.Run("decrements stock", func(t *testing.T) {
		it := newItem(t, 5)
		left, err := it.Consume(2)
		require.NoError(t, err)
		assert.Equal(t, 3, left)
		assert.Equal(t, 3, it.Stock())
	})

	t.Run("consuming exactly the stock reaches zero", func(t *testing.T) {
		it := newItem(t, 2)
		left, err := it.Consume(2)
		require.NoError(t, err)
		assert.Equal(t, 0, left)
	})

	t.Run("underflow is rejected and stock is unchanged", func(t *testing.T) {
		it := newItem(t, 1)
		left, err := it.Consume(3)
		require.Error(t, err)
		assert.ErrorIs(t, err, minibar.ErrInsufficient)

		var nse *minibar.NegativeStockError
		require.True(t, errors.As(err, &nse))
		assert.Equal(t, "cola", nse.ItemID)
		assert.Equal(t, 1, nse.Stock)
		assert.Equal(t, 3, nse.Requested)
		assert.Equal(t, 1, left)
		assert.Equal(t, 1, it.Stock())
	})

	t.Run("zero and negative quantities are no-ops", func(t *testing.T) {
		it := newItem(t, 4)
		left, err := it.Consume(0)
		require.NoError(t, err)
		assert.Equal(t, 4, left)
		left, err = it.Consume(-2)
		require.NoError(t, err)
		assert.Equal(t, 4, left)
	})
}

func TestNewItem(t *testing.T) {
	cases := []struct {
		name     string
		itemName string
		category minibar.Category
		stock    int
		price    int64
		errIs    error
	}{
		{name: "valid", itemName: "Water", category: minibar.CategoryMinibar, stock: 1, price: 10},
		{name: "amenity with zero stock", itemName: "Soap", category: minibar.CategoryAmenities},
		{name: "blank name", itemName: "  ", category: minibar.CategoryMinibar, errIs: minibar.ErrEmptyName},
		{name: "bad category", itemName: "Water", category: "SNACKS", errIs: minibar.ErrInvalidCategory},
		{name: "negative stock", itemName: "Water", category: minibar.CategoryMinibar, stock: -1, errIs: minibar.ErrNegativeStock},
		{name: "negative price", itemName: "Water", category: minibar.CategoryMinibar, price: -1, errIs: minibar.ErrNegativePrice},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			it, err := minibar.NewItem("id", c.itemName, c.category, c.stock, decimal.NewFromInt(c.price))
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, it)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, it)
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, err := minibar.ParseCategory(" minibar ")
	require.NoError(t, err)
	assert.Equal(t, minibar.CategoryMinibar, c)

	_, err = minibar.ParseCategory("food")
	assert.ErrorIs(t, err, minibar.ErrInvalidCategory)
}

func TestItemUpdate(t *testing.T) {
	it := newItem(t, 5)
	require.NoError(t, it.Update(" Diet Cola ", minibar.CategoryMinibar, decimal.NewFromInt(70)))
	assert.Equal(t, "Diet Cola", it.Name())
	assert.Equal(t, 5, it.Stock())

	assert.ErrorIs(t, it.Update("", minibar.CategoryMinibar, decimal.Zero), minibar.ErrEmptyName)
	assert.ErrorIs(t, it.SetStock(-1), minibar.ErrNegativeStock)
	assert.Equal(t, "Diet Cola", it.Name())
}

func TestNewShortfall(t *testing.T) {
	it := newItem(t, 1)
	_, cause := it.Consume(3)
	require.Error(t, cause)

	s := minibar.NewShortfall("T-12345678", it.ID(), 3, cause, time.Now())
	assert.True(t, s.IsPending())
	assert.Equal(t, 1, s.Attempts)
	assert.Contains(t, s.LastError, "cannot cover 3")
}
