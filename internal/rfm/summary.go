package rfm

import "github.com/shopspring/decimal"

// SegmentStats aggregates the scores that fell into one segment.
// Averages and totals are rounded to 2 decimal places.
type SegmentStats struct {
	Count         int
	AvgRecency    decimal.Decimal
	AvgFrequency  decimal.Decimal
	AvgMonetary   decimal.Decimal
	TotalMonetary decimal.Decimal
}

// SegmentSummary groups scores by segment. Only segments with at least
// one member appear in the result.
func SegmentSummary(scores []Score) map[string]SegmentStats {
	type totals struct {
		count     int
		recency   decimal.Decimal
		frequency decimal.Decimal
		monetary  decimal.Decimal
	}

	acc := make(map[string]*totals)
	for _, s := range scores {
		segment := s.Segment()
		t, ok := acc[segment]
		if !ok {
			t = &totals{recency: decimal.Zero, frequency: decimal.Zero, monetary: decimal.Zero}
			acc[segment] = t
		}
		t.count++
		t.recency = t.recency.Add(decimal.NewFromInt(int64(s.Recency)))
		t.frequency = t.frequency.Add(decimal.NewFromInt(int64(s.Frequency)))
		t.monetary = t.monetary.Add(s.Monetary)
	}

	summary := make(map[string]SegmentStats, len(acc))
	for segment, t := range acc {
		n := decimal.NewFromInt(int64(t.count))
		summary[segment] = SegmentStats{
			Count:         t.count,
			AvgRecency:    t.recency.Div(n).Round(2),
			AvgFrequency:  t.frequency.Div(n).Round(2),
			AvgMonetary:   t.monetary.Div(n).Round(2),
			TotalMonetary: t.monetary.Round(2),
		}
	}
	return summary
}
