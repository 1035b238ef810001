package hiero

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TinybarPerHbar is the number of base units in one HBAR.
const TinybarPerHbar = 100_000_000

// Hbar is an HBAR amount held in tinybars, the network's integer base unit.
// All arithmetic inside the toolkit happens in tinybars; decimal HBAR only
// appears at the input boundary.
type Hbar int64

// HbarFromTinybar wraps a raw tinybar amount.
func HbarFromTinybar(t int64) Hbar { return Hbar(t) }

// HbarFromDecimal converts a decimal HBAR amount into tinybars exactly.
// Amounts with more than 8 fractional digits are rejected rather than
// rounded, so any representable amount round-trips without drift.
func HbarFromDecimal(d decimal.Decimal) (Hbar, error) {
	scaled := d.Mul(decimal.New(1, 8))
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("hbar amount %s has more than 8 decimal places", d)
	}
	if !scaled.BigInt().IsInt64() {
		return 0, fmt.Errorf("hbar amount %s overflows tinybar range", d)
	}
	return Hbar(scaled.IntPart()), nil
}

// ParseHbar converts the string form of a decimal HBAR amount.
func ParseHbar(s string) (Hbar, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid hbar amount %q: %w", s, err)
	}
	return HbarFromDecimal(d)
}

// HbarFromFloat converts a float, as delivered by JSON tool arguments, into
// tinybars via its shortest decimal representation.
func HbarFromFloat(f float64) (Hbar, error) {
	return HbarFromDecimal(decimal.NewFromFloat(f))
}

// Tinybar returns the raw base-unit amount.
func (h Hbar) Tinybar() int64 { return int64(h) }

// Decimal returns the amount as decimal HBAR.
func (h Hbar) Decimal() decimal.Decimal { return decimal.New(int64(h), -8) }

// Negated returns the offsetting amount.
func (h Hbar) Negated() Hbar { return -h }

// String renders the decimal HBAR form, e.g. "10.5 hbar".
func (h Hbar) String() string {
	return h.Decimal().String() + " hbar"
}

// ScaleToBaseUnits converts a display-unit token amount into integer base
// units using the token's decimals. Fractions finer than the token supports
// are rejected.
func ScaleToBaseUnits(amount decimal.Decimal, decimals uint32) (int64, error) {
	scaled := amount.Mul(decimal.New(1, int32(decimals)))
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("amount %s has more decimal places than the token's %d", amount, decimals)
	}
	if !scaled.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %s overflows base-unit range", amount)
	}
	return scaled.IntPart(), nil
}
