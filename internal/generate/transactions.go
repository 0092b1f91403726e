package generate

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/segmental-dev/segmental/internal/model"
)

// Order size skews toward 2-3 items.
var (
	itemCountPopulation = []int{1, 2, 3, 4, 5}
	itemCountWeights    = []float64{15, 35, 30, 15, 5}
)

// Mobile payment dominates in Bangkok.
var (
	paymentPopulation = []model.PaymentMethod{model.PaymentCash, model.PaymentCard, model.PaymentMobile, model.PaymentTab}
	paymentWeights    = []float64{20, 35, 40, 5}
)

const (
	tipChance = 0.2
	tipMin    = 0.10
	tipMax    = 0.15
)

// TransactionGenerator produces synthetic transactions from the menu.
type TransactionGenerator struct {
	rng *rand.Rand
}

// NewTransactionGenerator creates a generator. Seed 0 means time-based.
func NewTransactionGenerator(seed int64) *TransactionGenerator {
	return &TransactionGenerator{rng: newRand(seed)}
}

// Transaction generates a single transaction for a customer on a date.
func (g *TransactionGenerator) Transaction(transactionID, customerID string, date time.Time) model.Transaction {
	items := g.selectItems()

	txn := model.Transaction{
		ID:            transactionID,
		CustomerID:    customerID,
		Date:          date,
		Items:         items,
		PaymentMethod: paymentPopulation[weightedIndex(g.rng, paymentWeights)],
		TipAmount:     decimal.Zero,
	}

	// Tipping is uncommon here; when it happens it's 10-15% of the bill,
	// quantized to 2 decimal places.
	if g.rng.Float64() < tipChance {
		pct := tipMin + g.rng.Float64()*(tipMax-tipMin)
		txn.TipAmount = txn.TotalAmount().Mul(decimal.NewFromFloat(pct)).Round(2)
	}

	return txn
}

// selectItems picks 1-5 distinct menu items weighted by popularity.
func (g *TransactionGenerator) selectItems() []model.LineItem {
	count := itemCountPopulation[weightedIndex(g.rng, itemCountWeights)]

	available := make([]MenuItem, len(Menu))
	copy(available, Menu)

	items := make([]model.LineItem, 0, count)
	for i := 0; i < count && len(available) > 0; i++ {
		weights := make([]float64, len(available))
		for j, item := range available {
			weights[j] = item.Popularity
		}
		pick := weightedIndex(g.rng, weights)
		item := available[pick]

		items = append(items, model.LineItem{
			Name:      item.Name,
			Quantity:  g.quantityFor(item.Category),
			UnitPrice: item.Price,
		})

		// No duplicate items within an order.
		available = append(available[:pick], available[pick+1:]...)
	}
	return items
}

func (g *TransactionGenerator) quantityFor(category string) int {
	if drinkCategories[category] {
		return []int{1, 2, 3}[weightedIndex(g.rng, []float64{50, 35, 15})]
	}
	return []int{1, 2}[weightedIndex(g.rng, []float64{70, 30})]
}
