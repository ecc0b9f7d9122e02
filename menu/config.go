package menu

import "github.com/shopspring/decimal"

// Config is the menu section of the application config.
//
//	menu:
//	  drinks:
//	    - menu_number: 1
//	      name: Pepsi
//	      price: 1.50
//	  foods:
//	    - menu_number: 10
//	      name: Pumpkin Soup
//	      price: 4.20
//	      seasonal: true
type Config struct {
	Drinks []ItemConfig `yaml:"drinks" validate:"dive"`
	Foods  []ItemConfig `yaml:"foods" validate:"dive"`
}

// ItemConfig is one menu entry.
type ItemConfig struct {
	MenuNumber int             `yaml:"menu_number" validate:"gt=0"`
	Name       string          `yaml:"name" validate:"menu_name"`
	Price      decimal.Decimal `yaml:"price" validate:"gte=0"`

	// Seasonal items can be ordered, but every lookup carries a warning.
	Seasonal bool `yaml:"seasonal"`
}
