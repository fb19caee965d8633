// Package allocation holds the 50/30/20 arithmetic: rebalancing the three
// bucket percentages and aggregating a ledger against a profile. Everything
// here is pure and safe for concurrent use.
package allocation

import (
	"budget-tracker/internal/domain"

	"github.com/shopspring/decimal"
)

// Split is a whole-percentage partition of 100 across the three buckets.
type Split struct {
	Needs  int `json:"needs"`
	Wants  int `json:"wants"`
	Future int `json:"future"`
}

// DefaultSplit is the classic 50/30/20 rule.
var DefaultSplit = Split{Needs: 50, Wants: 30, Future: 20}

func (s Split) Get(b domain.Bucket) int {
	switch b {
	case domain.BucketNeeds:
		return s.Needs
	case domain.BucketWants:
		return s.Wants
	case domain.BucketFuture:
		return s.Future
	}
	return 0
}

func (s *Split) set(b domain.Bucket, v int) {
	switch b {
	case domain.BucketNeeds:
		s.Needs = v
	case domain.BucketWants:
		s.Wants = v
	case domain.BucketFuture:
		s.Future = v
	}
}

func (s Split) Total() int {
	return s.Needs + s.Wants + s.Future
}

// SplitOf rounds a stored profile's percentages to whole numbers and
// rebalances so the result still sums to 100.
func SplitOf(p domain.Profile) Split {
	s := Split{
		Needs:  int(p.NeedsPercentage.Round(0).IntPart()),
		Wants:  int(p.WantsPercentage.Round(0).IntPart()),
		Future: int(p.FuturePercentage.Round(0).IntPart()),
	}
	if s.Total() == 100 {
		return s
	}
	return SetBucket(s, domain.BucketNeeds, s.Needs)
}

// Percentages converts the split into profile update values.
func (s Split) Percentages() (needs, wants, future decimal.Decimal) {
	return decimal.NewFromInt(int64(s.Needs)), decimal.NewFromInt(int64(s.Wants)), decimal.NewFromInt(int64(s.Future))
}

// SetBucket pins target to value (clamped to [0,100]) and redistributes the
// rest over the other two buckets, taken in domain.BucketOrder.
//
// If both others are at 0 the remainder is split evenly with the odd point
// going to the first of them. Otherwise each keeps its relative weight: the
// first gets its share rounded half-up and the last takes whatever is left,
// so the three values always add up to exactly 100.
func SetBucket(s Split, target domain.Bucket, value int) Split {
	if !target.Valid() {
		return s
	}
	for _, b := range domain.BucketOrder {
		s.set(b, clamp(s.Get(b)))
	}

	value = clamp(value)
	s.set(target, value)
	remaining := 100 - value

	others := make([]domain.Bucket, 0, 2)
	for _, b := range domain.BucketOrder {
		if b != target {
			others = append(others, b)
		}
	}

	otherTotal := s.Get(others[0]) + s.Get(others[1])
	if otherTotal == 0 {
		half := remaining / 2
		s.set(others[0], half+(remaining-half*2))
		s.set(others[1], half)
		return s
	}

	allocated := 0
	for i, b := range others {
		if i == len(others)-1 {
			s.set(b, remaining-allocated)
			break
		}
		portion := roundHalfUp(s.Get(b)*remaining, otherTotal)
		s.set(b, portion)
		allocated += portion
	}
	return s
}

// AdjustBucket moves target by delta (typically ±5) and rebalances.
// Any delta beyond ±100 saturates, so huge inputs clamp like SetBucket does.
func AdjustBucket(s Split, target domain.Bucket, delta int) Split {
	delta = max(-100, min(100, delta))
	return SetBucket(s, target, clamp(s.Get(target))+delta)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// roundHalfUp returns num/den rounded to the nearest integer, halves up.
// Both arguments are non-negative, den > 0.
func roundHalfUp(num, den int) int {
	return (2*num + den) / (2 * den)
}
