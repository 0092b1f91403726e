package rfm

import (
	"sort"

	"github.com/shopspring/decimal"
)

// quintiles are the 20/40/60/80th percentile positions. They are exact
// decimals, so interpolation never routes amounts through binary floats.
var quintiles = [4]decimal.Decimal{
	decimal.New(2, -1),
	decimal.New(4, -1),
	decimal.New(6, -1),
	decimal.New(8, -1),
}

// quintileBounds returns the four quintile boundaries of values using
// linear interpolation between order statistics. With a single value all
// boundaries collapse to it. Values must be non-empty.
func quintileBounds(values []decimal.Decimal) [4]decimal.Decimal {
	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Cmp(sorted[j]) < 0 })

	var bounds [4]decimal.Decimal
	for i, q := range quintiles {
		bounds[i] = interpolate(sorted, q)
	}
	return bounds
}

// interpolate evaluates the quantile q over sorted values: position
// q*(n-1), linearly interpolated between the surrounding order statistics.
func interpolate(sorted []decimal.Decimal, q decimal.Decimal) decimal.Decimal {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	pos := q.Mul(decimal.NewFromInt(int64(n - 1)))
	idx := pos.IntPart()
	frac := pos.Sub(decimal.NewFromInt(idx))

	lower := sorted[idx]
	if frac.IsZero() || int(idx)+1 >= n {
		return lower
	}
	upper := sorted[idx+1]
	return lower.Add(upper.Sub(lower).Mul(frac))
}

// scoreAgainst maps a raw metric value to a 1-5 score using the four
// quintile boundaries: value <= bounds[i] scores i+1, above all scores 5.
func scoreAgainst(value decimal.Decimal, bounds [4]decimal.Decimal) int {
	for i, b := range bounds {
		if value.Cmp(b) <= 0 {
			return i + 1
		}
	}
	return 5
}
