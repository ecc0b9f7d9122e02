package menu_test

import (
	"testing"

	"github.com/code19m/errx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechArp/CafeApp/cafe"
	"github.com/TechArp/CafeApp/menu"
	"github.com/TechArp/CafeApp/val"
)

var tab = cafe.Tab{ID: uuid.MustParse("0d9b3c1e-8a44-4f5e-a1c2-3b7e6f1d2a90"), TableNumber: 4}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testConfig() menu.Config {
	return menu.Config{
		Drinks: []menu.ItemConfig{
			{MenuNumber: 2, Name: "Coke", Price: price("2.00")},
			{MenuNumber: 1, Name: "Pepsi", Price: price("1.50")},
			{MenuNumber: 3, Name: "Mulled Wine", Price: price("3.80"), Seasonal: true},
		},
		Foods: []menu.ItemConfig{
			{MenuNumber: 10, Name: "Salad", Price: price("4.25")},
			{MenuNumber: 11, Name: "Pumpkin Soup", Price: price("4.20"), Seasonal: true},
		},
	}
}

func newCatalog(t *testing.T) *menu.Catalog {
	t.Helper()
	c, err := menu.NewCatalog(testConfig())
	require.NoError(t, err)
	return c
}

func TestNewCatalog_Errors(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*menu.Config)
		expectedCode string
	}{
		{
			name:         "duplicate across drinks and foods",
			mutate:       func(c *menu.Config) { c.Foods[0].MenuNumber = 1 },
			expectedCode: menu.CodeDuplicateMenuNumber,
		},
		{
			name:         "duplicate within drinks",
			mutate:       func(c *menu.Config) { c.Drinks[1].MenuNumber = 2 },
			expectedCode: menu.CodeDuplicateMenuNumber,
		},
		{
			name:         "negative price",
			mutate:       func(c *menu.Config) { c.Drinks[0].Price = price("-1") },
			expectedCode: val.CodeValidationFailed,
		},
		{
			name:         "blank name",
			mutate:       func(c *menu.Config) { c.Foods[0].Name = "  " },
			expectedCode: val.CodeValidationFailed,
		},
		{
			name:         "zero menu number",
			mutate:       func(c *menu.Config) { c.Drinks[0].MenuNumber = 0 },
			expectedCode: val.CodeValidationFailed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)

			_, err := menu.NewCatalog(cfg)
			require.Error(t, err)
			assert.True(t, errx.IsCodeIn(err, tc.expectedCode), "got %v", err)
			assert.Equal(t, errx.T_Validation, errx.AsErrorX(err).Type())
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := newCatalog(t)

	pepsi := c.Drink(1)
	assert.True(t, pepsi.IsSuccess())
	assert.Empty(t, pepsi.Warnings())
	d, _ := pepsi.Value()
	assert.Equal(t, "Pepsi", d.Name)
	assert.True(t, d.Price.Equal(price("1.5")))

	wine := c.Drink(3)
	assert.True(t, wine.IsSuccess())
	assert.Equal(t, []menu.Problem{{Kind: menu.SeasonalItem, MenuNumber: 3, Name: "Mulled Wine"}}, wine.Warnings())

	missing := c.Food(1)
	assert.True(t, missing.IsFailure())
	assert.Equal(t, []menu.Problem{{Kind: menu.UnknownFood, MenuNumber: 1}}, missing.Errors())
}

func TestCatalog_Order(t *testing.T) {
	c := newCatalog(t)

	t.Run("all known", func(t *testing.T) {
		got := c.Order(tab, []int{1, 1, 2}, []int{10})
		require.True(t, got.IsSuccess())
		assert.Empty(t, got.Warnings())

		order, _ := got.Value()
		assert.Equal(t, tab, order.Tab)
		assert.Equal(t, []int{1, 1, 2}, drinkNumbers(order.Drinks))
		assert.Len(t, order.Foods, 1)
		assert.True(t, cafe.NewPayment(order).Amount.Equal(price("9.25")))
	})

	t.Run("seasonal warnings are kept", func(t *testing.T) {
		got := c.Order(tab, []int{3}, []int{11})
		require.True(t, got.IsSuccess())
		assert.Equal(t, []menu.Problem{
			{Kind: menu.SeasonalItem, MenuNumber: 3, Name: "Mulled Wine"},
			{Kind: menu.SeasonalItem, MenuNumber: 11, Name: "Pumpkin Soup"},
		}, got.Warnings())
	})

	t.Run("every unknown number is reported", func(t *testing.T) {
		got := c.Order(tab, []int{1, 7, 8}, []int{99})
		require.True(t, got.IsFailure())
		assert.Equal(t, []menu.Problem{
			{Kind: menu.UnknownDrink, MenuNumber: 7},
			{Kind: menu.UnknownDrink, MenuNumber: 8},
			{Kind: menu.UnknownFood, MenuNumber: 99},
		}, got.Errors())

		err := menu.ToErrorX(got.Errors())
		require.Error(t, err)
		assert.True(t, errx.IsCodeIn(err, menu.CodeUnknownMenuItem))
		assert.Equal(t, []int{7, 8, 99}, errx.AsErrorX(err).Details()["menu_numbers"])
	})

	t.Run("empty order", func(t *testing.T) {
		got := c.Order(tab, nil, nil)
		require.True(t, got.IsSuccess())
		order, _ := got.Value()
		assert.True(t, order.IsEmpty())
	})
}

func TestCatalog_Listings(t *testing.T) {
	c := newCatalog(t)

	assert.Equal(t, []int{1, 2, 3}, drinkNumbers(c.Drinks()))
	assert.Equal(t, []int{10, 11}, foodNumbers(c.Foods()))
}

func TestToErrorX_Empty(t *testing.T) {
	assert.NoError(t, menu.ToErrorX(nil))
}

func drinkNumbers(drinks []cafe.Drink) []int {
	out := make([]int, 0, len(drinks))
	for _, d := range drinks {
		out = append(out, d.MenuNumber)
	}
	return out
}

func foodNumbers(foods []cafe.Food) []int {
	out := make([]int, 0, len(foods))
	for _, f := range foods {
		out = append(out, f.MenuNumber)
	}
	return out
}
