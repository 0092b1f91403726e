// Package generate produces synthetic customer and transaction datasets
// modeled on a Bangkok bar/izakaya.
package generate

import "github.com/shopspring/decimal"

// MenuItem is a catalog entry with a relative popularity weight.
type MenuItem struct {
	Name       string
	Category   string
	Price      decimal.Decimal
	Popularity float64
}

// Drink categories get higher per-order quantities than food.
var drinkCategories = map[string]bool{
	"beer":     true,
	"sake":     true,
	"cocktail": true,
	"spirits":  true,
}

func price(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// Menu is the venue catalog, prices in THB.
var Menu = []MenuItem{
	{"Singha Beer", "beer", price(80), 0.25},
	{"Chang Beer", "beer", price(70), 0.20},
	{"Leo Beer", "beer", price(75), 0.15},
	{"Asahi Super Dry", "beer", price(120), 0.18},
	{"Sapporo", "beer", price(130), 0.12},

	{"House Sake", "sake", price(150), 0.15},
	{"Premium Sake", "sake", price(280), 0.08},
	{"Sake Flight", "sake", price(320), 0.05},

	{"Negroni", "cocktail", price(320), 0.12},
	{"Old Fashioned", "cocktail", price(280), 0.10},
	{"Lychee Martini", "cocktail", price(220), 0.09},
	{"Long Island", "cocktail", price(340), 0.08},

	{"Whiskey Soda", "spirits", price(180), 0.10},
	{"Gin & Tonic", "spirits", price(170), 0.11},

	{"Edamame", "appetizer", price(80), 0.20},
	{"Gyoza", "appetizer", price(120), 0.18},
	{"Karaage", "appetizer", price(150), 0.16},
	{"Yakitori Skewers", "appetizer", price(140), 0.15},
	{"Takoyaki", "appetizer", price(130), 0.12},
	{"Agedashi Tofu", "appetizer", price(110), 0.10},

	{"Ramen Bowl", "main", price(180), 0.14},
	{"Okonomiyaki", "main", price(200), 0.11},
	{"Tonkatsu", "main", price(220), 0.10},

	{"Nuts Mix", "snack", price(60), 0.08},
	{"Crispy Squid", "snack", price(100), 0.09},
}
