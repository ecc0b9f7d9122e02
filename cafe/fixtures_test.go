package cafe_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/TechArp/CafeApp/cafe"
)

var (
	tabID = uuid.MustParse("5b0f9d2e-4c3a-4e0e-9c55-1f2b7f9a0c11")
	tab   = cafe.Tab{ID: tabID, TableNumber: 1}

	pepsi = drink(1, "Pepsi", "1.50")
	coke  = drink(2, "Coke", "2.00")
	salad = food(10, "Salad", "4.25")
	pizza = food(11, "Pizza", "8.00")
)

func drink(number int, name, price string) cafe.Drink {
	return cafe.Drink{MenuItem: item(number, name, price)}
}

func food(number int, name, price string) cafe.Food {
	return cafe.Food{MenuItem: item(number, name, price)}
}

func item(number int, name, price string) cafe.MenuItem {
	return cafe.MenuItem{MenuNumber: number, Name: name, Price: decimal.RequireFromString(price)}
}

func orderOf(drinks []cafe.Drink, foods []cafe.Food) cafe.Order {
	return cafe.Order{Tab: tab, Drinks: drinks, Foods: foods}
}

func events(e ...cafe.Event) []cafe.Event {
	return e
}
