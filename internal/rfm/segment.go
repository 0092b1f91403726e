package rfm

// Segment names.
const (
	SegmentChampions          = "Champions"
	SegmentLoyalCustomers     = "Loyal Customers"
	SegmentPotentialLoyalists = "Potential Loyalists"
	SegmentNewCustomers       = "New Customers"
	SegmentAtRisk             = "At Risk"
	SegmentCantLoseThem       = "Can't Lose Them"
	SegmentHibernating        = "Hibernating"
	SegmentLost               = "Lost"
	SegmentAboutToSleep       = "About to Sleep"
	SegmentPromising          = "Promising"
	SegmentNeedAttention      = "Need Attention"
)

type segmentRule struct {
	name  string
	match func(r, f, m int) bool
}

// segmentRules is evaluated top to bottom; the first match wins.
// Reordering changes observable classifications, so the order is frozen.
var segmentRules = []segmentRule{
	{SegmentChampions, func(r, f, m int) bool { return r >= 4 && f >= 4 && m >= 4 }},
	{SegmentLoyalCustomers, func(r, f, m int) bool { return f >= 4 && m >= 3 }},
	{SegmentPotentialLoyalists, func(r, f, m int) bool { return r >= 4 && f >= 2 && m >= 2 }},
	{SegmentNewCustomers, func(r, f, m int) bool { return r >= 4 && f <= 2 }},
	{SegmentAtRisk, func(r, f, m int) bool { return r <= 2 && f >= 3 && m >= 3 }},
	// Known anomaly: shadowed by At Risk above (f>=4 && m>=4 implies
	// f>=3 && m>=3), so this rule never fires. Kept in place because
	// consumers may depend on the frozen ordering.
	{SegmentCantLoseThem, func(r, f, m int) bool { return r <= 2 && f >= 4 && m >= 4 }},
	{SegmentHibernating, func(r, f, m int) bool { return r <= 2 && f <= 2 && m >= 2 }},
	{SegmentLost, func(r, f, m int) bool { return r <= 2 && f <= 2 && m <= 2 }},
	{SegmentAboutToSleep, func(r, f, m int) bool { return r <= 3 && f <= 3 }},
	{SegmentPromising, func(r, f, m int) bool { return r >= 3 && f <= 3 && m <= 3 }},
}

// ClassifySegment maps a score triple (each 1-5) to a segment name.
func ClassifySegment(r, f, m int) string {
	for _, rule := range segmentRules {
		if rule.match(r, f, m) {
			return rule.name
		}
	}
	return SegmentNeedAttention
}
