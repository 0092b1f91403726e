// Package rfm computes Recency/Frequency/Monetary scores and behavioral
// segments over a set of purchase records.
package rfm

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/segmental-dev/segmental/internal/model"
)

// Metrics holds the three raw RFM metrics for one customer.
// NoPurchases marks a customer with no matching purchases; Recency is
// meaningless in that state and such customers are excluded from scoring.
type Metrics struct {
	CustomerID  string
	Recency     int // days since most recent purchase
	Frequency   int // purchase count
	Monetary    decimal.Decimal
	NoPurchases bool
}

// Aggregator derives per-customer metrics from purchase records.
// Recency is measured against the injected reference date.
type Aggregator struct {
	ReferenceDate time.Time
}

// NewAggregator creates an Aggregator. A zero reference date means "now".
func NewAggregator(reference time.Time) *Aggregator {
	if reference.IsZero() {
		reference = time.Now()
	}
	return &Aggregator{ReferenceDate: reference}
}

// Recency returns the days since the customer's most recent purchase.
// The second return is false when the customer has no purchases.
func (a *Aggregator) Recency(customerID string, purchases []model.PurchaseRecord) (int, bool) {
	m := a.MetricsOf(customerID, purchases)
	return m.Recency, !m.NoPurchases
}

// Frequency returns the customer's purchase count; 0 if none.
func (a *Aggregator) Frequency(customerID string, purchases []model.PurchaseRecord) int {
	return a.MetricsOf(customerID, purchases).Frequency
}

// Monetary returns the customer's total spend; 0.00 if none.
func (a *Aggregator) Monetary(customerID string, purchases []model.PurchaseRecord) decimal.Decimal {
	return a.MetricsOf(customerID, purchases).Monetary
}

// MetricsOf computes all three metrics for a single customer.
func (a *Aggregator) MetricsOf(customerID string, purchases []model.PurchaseRecord) Metrics {
	m := Metrics{CustomerID: customerID, Monetary: decimal.Zero}

	var latest time.Time
	for _, p := range purchases {
		if p.CustomerID != customerID {
			continue
		}
		if m.Frequency == 0 || p.Date.After(latest) {
			latest = p.Date
		}
		m.Frequency++
		m.Monetary = m.Monetary.Add(p.Amount)
	}

	if m.Frequency == 0 {
		m.NoPurchases = true
		return m
	}
	m.Recency = daysBetween(latest, a.ReferenceDate)
	return m
}

// MetricsFor groups purchases by customer in one pass and returns metrics
// for every distinct non-empty customer id, in first-seen order. Results
// match per-customer MetricsOf calls exactly.
func (a *Aggregator) MetricsFor(purchases []model.PurchaseRecord) []Metrics {
	type bucket struct {
		latest time.Time
		count  int
		total  decimal.Decimal
	}

	buckets := make(map[string]*bucket)
	var order []string
	for _, p := range purchases {
		if p.CustomerID == "" {
			continue
		}
		b, ok := buckets[p.CustomerID]
		if !ok {
			b = &bucket{total: decimal.Zero}
			buckets[p.CustomerID] = b
			order = append(order, p.CustomerID)
		}
		if b.count == 0 || p.Date.After(b.latest) {
			b.latest = p.Date
		}
		b.count++
		b.total = b.total.Add(p.Amount)
	}

	metrics := make([]Metrics, 0, len(order))
	for _, id := range order {
		b := buckets[id]
		metrics = append(metrics, Metrics{
			CustomerID: id,
			Recency:    daysBetween(b.latest, a.ReferenceDate),
			Frequency:  b.count,
			Monetary:   b.total,
		})
	}
	return metrics
}

// daysBetween returns whole days from `from` to `to`, flooring toward
// negative infinity so a reference date earlier than the purchase yields
// a negative recency rather than truncating to zero.
func daysBetween(from, to time.Time) int {
	const day = 24 * time.Hour
	diff := to.Sub(from)
	days := int(diff / day)
	if diff < 0 && diff%day != 0 {
		days--
	}
	return days
}
