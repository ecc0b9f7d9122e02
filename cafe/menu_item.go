package cafe

import (
	"strings"

	"github.com/code19m/errx"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// MenuItem is an entry of the menu. Items are compared by value.
type MenuItem struct {
	MenuNumber int             `json:"menu_number"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
}

// NewMenuItem validates and builds a menu item.
func NewMenuItem(menuNumber int, name string, price decimal.Decimal) (MenuItem, error) {
	if strings.TrimSpace(name) == "" {
		return MenuItem{}, errx.New("menu item name must not be empty",
			errx.WithCode(CodeInvalidMenuItem),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"menu_number": menuNumber}),
		)
	}
	if price.IsNegative() {
		return MenuItem{}, errx.New("menu item price must not be negative",
			errx.WithCode(CodeInvalidMenuItem),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"menu_number": menuNumber, "price": price.String()}),
		)
	}
	return MenuItem{MenuNumber: menuNumber, Name: name, Price: price}, nil
}

// Equal reports whether both items have the same number, name and price.
func (m MenuItem) Equal(other MenuItem) bool {
	return m.MenuNumber == other.MenuNumber &&
		m.Name == other.Name &&
		m.Price.Equal(other.Price)
}

// Drink is a menu item served from the bar.
type Drink struct {
	MenuItem
}

// Equal compares two drinks by value.
func (d Drink) Equal(other Drink) bool {
	return d.MenuItem.Equal(other.MenuItem)
}

// Food is a menu item prepared in the kitchen before it is served.
type Food struct {
	MenuItem
}

// Equal compares two foods by value.
func (f Food) Equal(other Food) bool {
	return f.MenuItem.Equal(other.MenuItem)
}

type equaler[T any] interface {
	Equal(other T) bool
}

func countOf[T equaler[T]](items []T, item T) int {
	return lo.CountBy(items, item.Equal)
}

// sameItems compares two sequences as multisets.
func sameItems[T equaler[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return lo.EveryBy(a, func(item T) bool {
		return countOf(a, item) == countOf(b, item)
	})
}

func equalSeq[T equaler[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func totalPrice[T interface{ price() decimal.Decimal }](items []T) decimal.Decimal {
	return lo.Reduce(items, func(sum decimal.Decimal, item T, _ int) decimal.Decimal {
		return sum.Add(item.price())
	}, decimal.Zero)
}

func (m MenuItem) price() decimal.Decimal {
	return m.Price
}
