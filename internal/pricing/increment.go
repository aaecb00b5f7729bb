package pricing

import "math"

// MinimumIncrement returns the smallest amount by which a new bid must
// exceed the given current amount. The percentage is tiered by price
// bracket:
//
//	< 10,000        => 5%
//	< 100,000       => 3%
//	< 1,000,000     => 2%
//	< 10,000,000    => 1.5%
//	>= 10,000,000   => 1%
//
// The product is rounded to the nearest whole unit (half away from zero)
// and never drops below 1, so bids stay in whole currency units.
func MinimumIncrement(amount int64) int64 {
	if amount < 0 {
		amount = 0
	}

	var pct float64
	switch {
	case amount < 10_000:
		pct = 0.05
	case amount < 100_000:
		pct = 0.03
	case amount < 1_000_000:
		pct = 0.02
	case amount < 10_000_000:
		pct = 0.015
	default:
		pct = 0.01
	}

	increment := int64(math.Round(float64(amount) * pct))
	if increment < 1 {
		return 1
	}
	return increment
}

// MinimumBid returns the lowest acceptable next bid given the current
// highest amount: current + MinimumIncrement(current). Non-positive current
// amounts yield 1 so the first bid on a zero-priced lot is still a whole
// positive unit.
func MinimumBid(currentAmount int64) int64 {
	if currentAmount <= 0 {
		return 1
	}
	return currentAmount + MinimumIncrement(currentAmount)
}
