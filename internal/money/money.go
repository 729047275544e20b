// Package money provides fixed-point helpers for monetary arithmetic.
//
// All amounts are shopspring decimals. The Safe* helpers additionally snap every
// operand to whole cents before combining them, so results carry at most two
// fractional digits for sums and four for products, regardless of how the
// inputs were produced (parsed strings, float conversions, prior divisions).
package money

import (
	"github.com/shopspring/decimal"
)

// centDigits is the number of fractional digits kept by the Safe* helpers.
const centDigits = 2

var hundred = decimal.NewFromInt(100)

// toCents scales v to an integer number of cents, rounding half away from zero.
func toCents(v decimal.Decimal) decimal.Decimal {
	return v.Shift(centDigits).Round(0)
}

// SafeAdd sums values at cent precision. No arguments yield zero and a single
// argument is returned unchanged.
func SafeAdd(values ...decimal.Decimal) decimal.Decimal {
	switch len(values) {
	case 0:
		return decimal.Zero
	case 1:
		return values[0]
	}

	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(toCents(v))
	}
	return sum.Shift(-centDigits)
}

// SafeSubtract subtracts every subtrahend from minuend at cent precision.
// Without subtrahends the minuend is returned unchanged.
func SafeSubtract(minuend decimal.Decimal, subtrahends ...decimal.Decimal) decimal.Decimal {
	if len(subtrahends) == 0 {
		return minuend
	}

	result := toCents(minuend)
	for _, v := range subtrahends {
		result = result.Sub(toCents(v))
	}
	return result.Shift(-centDigits)
}

// SafeMultiply scales both operands to cents, multiplies the integers and
// divides the product by 10000.
func SafeMultiply(a, b decimal.Decimal) decimal.Decimal {
	return toCents(a).Mul(toCents(b)).Shift(-2 * centDigits)
}

// RoundUnit rounds v to the nearest whole currency unit, half away from zero.
func RoundUnit(v decimal.Decimal) decimal.Decimal {
	return v.Round(0)
}

// Percent returns round(base * rate / 100) in whole currency units.
func Percent(base, rate decimal.Decimal) decimal.Decimal {
	return RoundUnit(base.Mul(rate).Div(hundred))
}
