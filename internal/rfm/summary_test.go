package rfm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmental-dev/segmental/internal/model"
)

func TestSegmentSummary(t *testing.T) {
	scores := []Score{
		{CustomerID: "CUSTA", Recency: 2, Frequency: 10, Monetary: dec("500.00"), RScore: 5, FScore: 5, MScore: 5},
		{CustomerID: "CUSTB", Recency: 4, Frequency: 8, Monetary: dec("300.50"), RScore: 5, FScore: 4, MScore: 4},
		{CustomerID: "CUSTC", Recency: 200, Frequency: 1, Monetary: dec("15.00"), RScore: 1, FScore: 1, MScore: 1},
	}

	summary := SegmentSummary(scores)
	require.Len(t, summary, 2)

	champions, ok := summary[SegmentChampions]
	require.True(t, ok)
	assert.Equal(t, 2, champions.Count)
	assert.True(t, champions.AvgRecency.Equal(dec("3")), "got %s", champions.AvgRecency)
	assert.True(t, champions.AvgFrequency.Equal(dec("9")), "got %s", champions.AvgFrequency)
	assert.True(t, champions.AvgMonetary.Equal(dec("400.25")), "got %s", champions.AvgMonetary)
	assert.True(t, champions.TotalMonetary.Equal(dec("800.50")), "got %s", champions.TotalMonetary)

	lost, ok := summary[SegmentLost]
	require.True(t, ok)
	assert.Equal(t, 1, lost.Count)
	assert.True(t, lost.TotalMonetary.Equal(dec("15.00")))
}

func TestSegmentSummaryRounding(t *testing.T) {
	scores := []Score{
		{CustomerID: "CUSTA", Recency: 1, Frequency: 1, Monetary: dec("10.00"), RScore: 1, FScore: 1, MScore: 1},
		{CustomerID: "CUSTB", Recency: 2, Frequency: 2, Monetary: dec("10.01"), RScore: 1, FScore: 1, MScore: 1},
		{CustomerID: "CUSTC", Recency: 4, Frequency: 2, Monetary: dec("10.01"), RScore: 1, FScore: 1, MScore: 1},
	}

	summary := SegmentSummary(scores)
	stats := summary[SegmentLost]
	assert.Equal(t, 3, stats.Count)
	// 7/3 and 30.02/3 round to 2 decimal places.
	assert.True(t, stats.AvgRecency.Equal(dec("2.33")), "got %s", stats.AvgRecency)
	assert.True(t, stats.AvgMonetary.Equal(dec("10.01")), "got %s", stats.AvgMonetary)
	assert.True(t, stats.TotalMonetary.Equal(dec("30.02")), "got %s", stats.TotalMonetary)
}

func TestSegmentSummaryCountsSumToN(t *testing.T) {
	scorer := NewScorer(ref)

	population := []struct {
		id      string
		daysAgo int
		amount  string
		count   int
	}{
		{"CUST00001", 1, "400.00", 12},
		{"CUST00002", 15, "120.00", 6},
		{"CUST00003", 45, "80.00", 4},
		{"CUST00004", 90, "35.00", 2},
		{"CUST00005", 250, "12.00", 1},
	}

	var purchases []model.PurchaseRecord
	for _, p := range population {
		for i := 0; i < p.count; i++ {
			purchases = append(purchases, purchase(p.id, ref.AddDate(0, 0, -(p.daysAgo+i)), p.amount))
		}
	}

	scores := scorer.CalculateScores(purchases)
	require.Len(t, scores, 5)

	summary := SegmentSummary(scores)
	total := 0
	for segment, stats := range summary {
		assert.Greater(t, stats.Count, 0, segment)
		total += stats.Count
	}
	assert.Equal(t, len(scores), total)
}

func TestSegmentSummaryEmpty(t *testing.T) {
	assert.Empty(t, SegmentSummary(nil))
}
