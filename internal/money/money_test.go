package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %s, got %s", want, got)
}

// TestSafeAdd_NoArguments verifies the empty sum is zero.
func TestSafeAdd_NoArguments(t *testing.T) {
	assertDecimal(t, "0", SafeAdd())
}

// TestSafeAdd_SingleValueUnchanged verifies a lone operand keeps full precision.
func TestSafeAdd_SingleValueUnchanged(t *testing.T) {
	v := d("12.3456")
	assert.Equal(t, v, SafeAdd(v))
}

// TestSafeAdd_BinaryFractions verifies 0.1 + 0.2 is exactly 0.3.
func TestSafeAdd_BinaryFractions(t *testing.T) {
	assertDecimal(t, "0.3", SafeAdd(decimal.NewFromFloat(0.1), decimal.NewFromFloat(0.2)))
}

// TestSafeAdd_SnapsFloatArtifacts verifies operands carrying float noise are snapped to cents.
func TestSafeAdd_SnapsFloatArtifacts(t *testing.T) {
	noisy := decimal.NewFromFloat(0.1 + 0.2)
	assert.False(t, noisy.Equal(d("0.3")))
	assertDecimal(t, "1.3", SafeAdd(noisy, d("1")))
}

// TestSafeAdd_Negative verifies mixed signs.
func TestSafeAdd_Negative(t *testing.T) {
	assertDecimal(t, "-0.75", SafeAdd(d("0.25"), d("-1")))
}

// TestSafeSubtract covers the minuend-only and multi-subtrahend forms.
func TestSafeSubtract(t *testing.T) {
	assertDecimal(t, "5.555", SafeSubtract(d("5.555")))
	assertDecimal(t, "0.1", SafeSubtract(d("0.3"), d("0.2")))
	assertDecimal(t, "18000", SafeSubtract(d("50000"), d("30000"), d("2000")))
	assertDecimal(t, "-0.5", SafeSubtract(d("1"), d("0.75"), d("0.75")))
}

// TestSafeMultiply verifies both operands are scaled to cents before multiplying.
func TestSafeMultiply(t *testing.T) {
	assertDecimal(t, "0.3", SafeMultiply(decimal.NewFromFloat(0.1), d("3")))
	assertDecimal(t, "2000", SafeMultiply(d("1000"), d("2")))
	assertDecimal(t, "0.0001", SafeMultiply(d("0.01"), d("0.01")))
	assertDecimal(t, "-1.5", SafeMultiply(d("-0.5"), d("3")))
}

// TestSafeMultiply_RoundsOperandsToCents verifies sub-cent operands are rounded first.
func TestSafeMultiply_RoundsOperandsToCents(t *testing.T) {
	// 0.005 rounds to 0.01, 0.004 rounds to 0.
	assertDecimal(t, "0.02", SafeMultiply(d("0.005"), d("2")))
	assertDecimal(t, "0", SafeMultiply(d("0.004"), d("2")))
}

// TestRoundUnit verifies half-away-from-zero rounding.
func TestRoundUnit(t *testing.T) {
	assertDecimal(t, "3", RoundUnit(d("2.5")))
	assertDecimal(t, "-3", RoundUnit(d("-2.5")))
	assertDecimal(t, "2", RoundUnit(d("2.49")))
	assertDecimal(t, "-2", RoundUnit(d("-2.49")))
}

// TestPercent verifies percentage of a base rounded to whole units.
func TestPercent(t *testing.T) {
	assertDecimal(t, "1000", Percent(d("10000"), d("10")))
	assertDecimal(t, "3600", Percent(d("18000"), d("20")))
	assertDecimal(t, "13", Percent(d("250"), d("5")))
	assertDecimal(t, "-13", Percent(d("-250"), d("5")))
}
