package rfm

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/segmental-dev/segmental/internal/model"
)

// Score is the scored result for one customer.
type Score struct {
	CustomerID string
	Recency    int
	Frequency  int
	Monetary   decimal.Decimal
	RScore     int // 1-5, higher = more recent
	FScore     int // 1-5, higher = more purchases
	MScore     int // 1-5, higher = more spend
}

// RFM returns the combined score as a three-digit string, e.g. "545".
func (s Score) RFM() string {
	return fmt.Sprintf("%d%d%d", s.RScore, s.FScore, s.MScore)
}

// Segment returns the behavioral segment for this score.
func (s Score) Segment() string {
	return ClassifySegment(s.RScore, s.FScore, s.MScore)
}

// Scorer computes RFM scores for every customer in a purchase set.
type Scorer struct {
	agg *Aggregator
}

// NewScorer creates a Scorer. A zero reference date means "now"; fix it
// per analysis run for reproducible recency values.
func NewScorer(reference time.Time) *Scorer {
	return &Scorer{agg: NewAggregator(reference)}
}

// ReferenceDate returns the recency reference date in use.
func (s *Scorer) ReferenceDate() time.Time {
	return s.agg.ReferenceDate
}

// CalculateScores scores every distinct customer in the purchase set.
// Empty input yields an empty result, never an error. Results are sorted
// by customer id.
func (s *Scorer) CalculateScores(purchases []model.PurchaseRecord) []Score {
	metrics := s.agg.MetricsFor(purchases)

	// Guard against customers without purchases. Unreachable when ids come
	// from the purchase set itself, but MetricsOf can produce the state.
	kept := metrics[:0]
	for _, m := range metrics {
		if m.NoPurchases {
			continue
		}
		kept = append(kept, m)
	}
	if len(kept) == 0 {
		return nil
	}

	recencies := make([]decimal.Decimal, len(kept))
	frequencies := make([]decimal.Decimal, len(kept))
	monetaries := make([]decimal.Decimal, len(kept))
	for i, m := range kept {
		recencies[i] = decimal.NewFromInt(int64(m.Recency))
		frequencies[i] = decimal.NewFromInt(int64(m.Frequency))
		monetaries[i] = m.Monetary
	}

	rBounds := quintileBounds(recencies)
	fBounds := quintileBounds(frequencies)
	mBounds := quintileBounds(monetaries)

	scores := make([]Score, len(kept))
	for i, m := range kept {
		scores[i] = Score{
			CustomerID: m.CustomerID,
			Recency:    m.Recency,
			Frequency:  m.Frequency,
			Monetary:   m.Monetary,
			// Lower recency means a more recent purchase, so the raw
			// quintile is inverted.
			RScore: 6 - scoreAgainst(recencies[i], rBounds),
			FScore: scoreAgainst(frequencies[i], fBounds),
			MScore: scoreAgainst(monetaries[i], mBounds),
		}
	}

	sort.Slice(scores, func(i, j int) bool { return scores[i].CustomerID < scores[j].CustomerID })
	return scores
}
