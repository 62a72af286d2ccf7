package popularity

import (
	"bytes"
	"math"
	"sort"

	"github.com/google/uuid"
)

// DestinationStats carries the aggregate a destination is ranked by.
// MeanRating is nil when ReviewCount is zero: "no reviews" must stay
// distinguishable from a (legal-range-impossible) average of zero.
type DestinationStats struct {
	DestinationID uuid.UUID
	ReviewCount   int
	MeanRating    *float64
}

// HasRating reports whether the mean is defined.
func (s DestinationStats) HasRating() bool {
	return s.ReviewCount > 0 && s.MeanRating != nil
}

// DisplayRating returns the mean rounded to one decimal, and false when the
// mean is undefined.
func (s DestinationStats) DisplayRating() (float64, bool) {
	if !s.HasRating() {
		return 0, false
	}
	return Round1(*s.MeanRating), true
}

// Aggregate computes per-destination stats from raw ratings. The production
// read path computes the same aggregate in SQL; this form serves in-memory
// callers and pins the semantics for both.
func Aggregate(destinationID uuid.UUID, ratings []int) DestinationStats {
	stats := DestinationStats{DestinationID: destinationID, ReviewCount: len(ratings)}
	if len(ratings) == 0 {
		return stats
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	stats.MeanRating = &mean
	return stats
}

// Rank returns a new slice ordered by review count descending, then mean
// rating descending with undefined means after every defined one, then
// destination id ascending. The final key makes the order total and
// reproducible for identical inputs.
func Rank(stats []DestinationStats) []DestinationStats {
	ranked := make([]DestinationStats, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Less(ranked[i], ranked[j])
	})
	return ranked
}

// Less defines the popularity order between two destinations.
func Less(a, b DestinationStats) bool {
	if a.ReviewCount != b.ReviewCount {
		return a.ReviewCount > b.ReviewCount
	}

	switch {
	case a.MeanRating != nil && b.MeanRating != nil:
		if *a.MeanRating != *b.MeanRating {
			return *a.MeanRating > *b.MeanRating
		}
	case a.MeanRating != nil:
		return true
	case b.MeanRating != nil:
		return false
	}

	aID, bID := a.DestinationID, b.DestinationID
	return bytes.Compare(aID[:], bID[:]) < 0
}

// Round1 rounds to one decimal for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
