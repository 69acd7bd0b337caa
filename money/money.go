package money

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Decimals is the number of digits after the decimal point
// of the smallest denomination of the dinar, the fils.
const Decimals = 3

// bounds of a single denomination unit, in fils.
var (
	maxSubunits = decimal.NewFromInt(math.MaxInt64)
	minSubunits = decimal.NewFromInt(math.MinInt64)
)

// Money represents a monetary value as the multiset
// of the denomination units composing it.
//
// ! Each unit is stored in the smallest denomination of the currency.
// Example: a half dinar coin is stored as 500 fils,
// a quarter dinar coin as 250 fils.
//
// The zero value holds no units and has an amount of 0.
type Money struct {
	// denomination units in fils, sorted in descending order.
	denominations []int64
}

// NewFromDenominations creates a new Money holding one unit for each
// of the given denominations, expressed in dinars.
// The input is copied and sorted in descending order. The values are not
// validated, passing a legitimate set of denominations is up to the caller.
//
// Each denomination is rounded to the nearest fils, half away from zero,
// so sub-fils values such as 0.0004 become 0.
//
// It panics if a denomination is NaN, infinite or does not fit
// in an int64 once expressed in fils (about ±9.2e15 dinars).
func NewFromDenominations(denominations []float64) Money {
	subunits := make([]int64, len(denominations))

	for i, d := range denominations {
		subunits[i] = toSubunits(d)
	}

	return newSorted(subunits)
}

// NewFromSubunits creates a new Money from denominations
// already expressed in fils.
func NewFromSubunits(subunits []int64) Money {
	return newSorted(append(make([]int64, 0, len(subunits)), subunits...))
}

// NewFromAmount creates a new Money holding a single unit
// of the given amount, expressed in dinars, rounded to the nearest fils.
//
// It panics if amount is NaN, infinite or does not fit
// in an int64 once expressed in fils.
func NewFromAmount(amount float64) Money {
	return Money{
		denominations: []int64{toSubunits(amount)},
	}
}

// Must returns Money if err is nil and panics otherwise.
func Must(m Money, err error) Money {
	if err != nil {
		panic(err)
	}

	return m
}

// Amount returns the sum of all the denomination units, in dinars.
func (m Money) Amount() float64 {
	return m.ToUnits().InexactFloat64()
}

// Subunits returns the sum of all the denomination units, in fils.
// Two values are Equal iff their Subunits are equal, so the result
// can be used as a map key.
//
// It panics with ErrOutOfRange if the sum does not fit in an int64.
// The other operations work on the exact sum and have no such limit.
func (m Money) Subunits() int64 {
	total := m.total()

	if total.GreaterThan(maxSubunits) || total.LessThan(minSubunits) {
		panic(ErrOutOfRange.Wrapf("%s fils", total))
	}

	return total.IntPart()
}

// ToUnits divides the total in fils by 10^Decimals and returns
// the exact decimal result.
func (m Money) ToUnits() decimal.Decimal {
	return m.total().Shift(-Decimals)
}

// total returns the exact sum of the units, in fils.
func (m Money) total() decimal.Decimal {
	total := decimal.Zero

	for _, d := range m.denominations {
		total = total.Add(decimal.NewFromInt(d))
	}

	return total
}

// ToUnitsString returns the total in dinars formatted with exactly prec
// digits after the decimal point, rounding half away from zero.
func (m Money) ToUnitsString(prec uint8) string {
	return m.ToUnits().StringFixed(int32(prec))
}

// String returns the amount with two decimals, eg. "1.01" for 1.005.
func (m Money) String() string {
	const prec = 2

	return m.ToUnitsString(prec)
}

// Equal reports whether m and other have the same amount,
// regardless of the denominations composing them.
func (m Money) Equal(other Money) bool {
	return m.total().Equal(other.total())
}

// Denominations returns a copy of the denomination units,
// in dinars, sorted in descending order.
func (m Money) Denominations() []float64 {
	units := make([]float64, len(m.denominations))

	for i, d := range m.denominations {
		units[i] = toUnits(d).InexactFloat64()
	}

	return units
}

// Len returns the number of denomination units.
func (m Money) Len() int {
	return len(m.denominations)
}

// Times returns a new Money holding count units
// of each denomination of m.
//
// ErrOutOfRange is returned if the number of units of the result
// overflows an int. The result must also fit in memory.
func (m Money) Times(count int) (Money, error) {
	if count < 0 {
		return Money{}, ErrNegativeCount.Wrapf("%d", count)
	}

	if count > 0 && len(m.denominations) > math.MaxInt/count {
		return Money{}, ErrOutOfRange.Wrapf(
			"%d units times %d",
			len(m.denominations),
			count,
		)
	}

	result := make([]int64, 0, len(m.denominations)*count)

	// repeating each unit in place keeps the descending order.
	for _, d := range m.denominations {
		for i := 0; i < count; i++ {
			result = append(result, d)
		}
	}

	return Money{denominations: result}, nil
}

// Plus returns a new Money holding the units of both m and other.
func (m Money) Plus(other Money) Money {
	return Sum(m, other)
}

// Minus removes from m the units matching the amount of other and
// returns what is left.
//
// The units are picked greedily: denominations are walked once, from the
// largest to the smallest, and a unit is taken whenever it still fits in the
// amount left to subtract. There is no backtracking, so a subtraction that
// could be covered by another combination of units may still fail,
// eg. [0.30, 0.20, 0.20] minus 0.40 takes the 0.30 first and
// is left with 0.10 it cannot cover.
//
// Both operands are in whole fils, a sub-fils amount built from
// 0.0004 is 0 and subtracting it leaves m unchanged.
//
// ErrInsufficientAmount is returned if other is greater than m and
// ErrInexactChange if the walk does not add up to the exact amount.
func (m Money) Minus(other Money) (Money, error) {
	toSubtract := other.total()

	if toSubtract.GreaterThan(m.total()) {
		return Money{}, ErrInsufficientAmount.Wrapf(
			"%s from %s",
			other,
			m,
		)
	}

	values, counts := m.countDenominations()

	remaining := toSubtract

	for _, v := range values {
		value := decimal.NewFromInt(v)

		for remaining.GreaterThanOrEqual(value) && counts[v] > 0 {
			remaining = remaining.Sub(value)
			counts[v]--
		}
	}

	if remaining.IsPositive() {
		return Money{}, ErrInexactChange.Wrapf(
			"%s of %s left uncovered",
			remaining.Shift(-Decimals),
			other,
		)
	}

	rest := make([]int64, 0, len(m.denominations))

	for _, v := range values {
		for i := 0; i < counts[v]; i++ {
			rest = append(rest, v)
		}
	}

	return Money{denominations: rest}, nil
}

// countDenominations returns the distinct denominations of m in
// descending order along with the number of units of each.
func (m Money) countDenominations() ([]int64, map[int64]int) {
	var (
		values []int64
		counts = make(map[int64]int)
	)

	for _, d := range m.denominations {
		if counts[d] == 0 {
			values = append(values, d)
		}

		counts[d]++
	}

	return values, counts
}

// Sum returns a new Money holding the units of all the given items.
// The result of no items has an amount of 0.
func Sum(items ...Money) Money {
	var n int

	for _, item := range items {
		n += len(item.denominations)
	}

	total := make([]int64, 0, n)

	for _, item := range items {
		total = append(total, item.denominations...)
	}

	return newSorted(total)
}

// newSorted sorts subunits in descending order and wraps them,
// without copying, into a Money.
func newSorted(subunits []int64) Money {
	sort.Slice(subunits, func(i, j int) bool {
		return subunits[i] > subunits[j]
	})

	return Money{denominations: subunits}
}

// toSubunits returns units * 10^Decimals, rounded half away from zero.
// It panics if the result does not fit in an int64.
func toSubunits(units float64) int64 {
	d := decimal.NewFromFloat(units).Shift(Decimals).Round(0)

	if d.GreaterThan(maxSubunits) || d.LessThan(minSubunits) {
		panic(ErrOutOfRange.Wrapf("%v dinars", units))
	}

	return d.IntPart()
}

// toUnits returns subunits / 10^Decimals.
func toUnits(subunits int64) decimal.Decimal {
	return decimal.New(subunits, -Decimals)
}
