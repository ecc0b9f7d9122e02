// Package menu turns the configured menu into validated cafe items and orders.
package menu

import (
	"cmp"
	"slices"

	"github.com/code19m/errx"
	"github.com/samber/lo"

	"github.com/TechArp/CafeApp/cafe"
	"github.com/TechArp/CafeApp/outcome"
	"github.com/TechArp/CafeApp/val"
)

const (
	CodeDuplicateMenuNumber = "MENU_DUPLICATE_NUMBER"
	CodeUnknownMenuItem     = "MENU_UNKNOWN_ITEM"
)

// Lookup is the result of a catalog lookup.
type Lookup[T any] = outcome.Outcome[T, Problem]

type entry[T any] struct {
	item     T
	seasonal bool
	name     string
}

// Catalog is an immutable index of the menu by menu number.
type Catalog struct {
	drinks map[int]entry[cafe.Drink]
	foods  map[int]entry[cafe.Food]
}

// NewCatalog validates cfg and indexes it. Menu numbers must be unique across
// drinks and foods.
func NewCatalog(cfg Config) (*Catalog, error) {
	if err := val.ValidateSchema(cfg); err != nil {
		return nil, errx.Wrap(err)
	}

	c := &Catalog{
		drinks: make(map[int]entry[cafe.Drink], len(cfg.Drinks)),
		foods:  make(map[int]entry[cafe.Food], len(cfg.Foods)),
	}
	seen := make(map[int]string, len(cfg.Drinks)+len(cfg.Foods))

	for _, ic := range cfg.Drinks {
		item, err := newItem(ic, seen)
		if err != nil {
			return nil, err
		}
		c.drinks[ic.MenuNumber] = entry[cafe.Drink]{item: cafe.Drink{MenuItem: item}, seasonal: ic.Seasonal, name: ic.Name}
	}
	for _, ic := range cfg.Foods {
		item, err := newItem(ic, seen)
		if err != nil {
			return nil, err
		}
		c.foods[ic.MenuNumber] = entry[cafe.Food]{item: cafe.Food{MenuItem: item}, seasonal: ic.Seasonal, name: ic.Name}
	}

	return c, nil
}

func newItem(ic ItemConfig, seen map[int]string) (cafe.MenuItem, error) {
	if other, ok := seen[ic.MenuNumber]; ok {
		return cafe.MenuItem{}, errx.New("menu number used twice",
			errx.WithCode(CodeDuplicateMenuNumber),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"menu_number": ic.MenuNumber, "names": other + ", " + ic.Name}),
		)
	}
	seen[ic.MenuNumber] = ic.Name

	item, err := cafe.NewMenuItem(ic.MenuNumber, ic.Name, ic.Price)
	if err != nil {
		return cafe.MenuItem{}, errx.Wrap(err)
	}
	return item, nil
}

// Drink looks up a drink. Seasonal drinks succeed with a warning.
func (c *Catalog) Drink(menuNumber int) Lookup[cafe.Drink] {
	return lookup(c.drinks, menuNumber, UnknownDrink)
}

// Food looks up a food. Seasonal foods succeed with a warning.
func (c *Catalog) Food(menuNumber int) Lookup[cafe.Food] {
	return lookup(c.foods, menuNumber, UnknownFood)
}

func lookup[T any](index map[int]entry[T], menuNumber int, missing ProblemKind) Lookup[T] {
	e, ok := index[menuNumber]
	if !ok {
		return outcome.Fail[T](Problem{Kind: missing, MenuNumber: menuNumber})
	}
	if e.seasonal {
		return outcome.Warn(Problem{Kind: SeasonalItem, MenuNumber: menuNumber, Name: e.name}, e.item)
	}
	return outcome.Pure[T, Problem](e.item)
}

// Order builds the order of tab from menu numbers. Every unknown number is
// reported, not just the first; warnings of all lookups are kept.
func (c *Catalog) Order(tab cafe.Tab, drinkNumbers, foodNumbers []int) Lookup[cafe.Order] {
	drinks := outcome.Collect(lo.Map(drinkNumbers, func(n int, _ int) Lookup[cafe.Drink] {
		return c.Drink(n)
	})...)
	foods := outcome.Collect(lo.Map(foodNumbers, func(n int, _ int) Lookup[cafe.Food] {
		return c.Food(n)
	})...)

	return outcome.Lift2(func(d []cafe.Drink, f []cafe.Food) cafe.Order {
		return cafe.Order{Tab: tab, Drinks: d, Foods: f}
	}, drinks, foods)
}

// Drinks lists every drink ordered by menu number.
func (c *Catalog) Drinks() []cafe.Drink {
	return sorted(c.drinks, func(d cafe.Drink) int { return d.MenuNumber })
}

// Foods lists every food ordered by menu number.
func (c *Catalog) Foods() []cafe.Food {
	return sorted(c.foods, func(f cafe.Food) int { return f.MenuNumber })
}

func sorted[T any](index map[int]entry[T], number func(T) int) []T {
	items := lo.MapToSlice(index, func(_ int, e entry[T]) T { return e.item })
	slices.SortFunc(items, func(a, b T) int { return cmp.Compare(number(a), number(b)) })
	return items
}
