// Package format holds the numeric conversion and display rules for the
// leaderboard: base-unit to common-unit conversion, allocation fractions,
// percent and compact-number rendering, and address truncation.
package format

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	addressPrefixLen = 6
	addressSuffixLen = 4
)

var (
	one      = decimal.NewFromInt(1)
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
	trillion = decimal.NewFromInt(1_000_000_000_000)
)

// ToCommonUnits converts a base-unit amount into common units by shifting
// the decimal exponent. The amount is kept as a string upstream because
// token supplies routinely exceed 2^53; the shift is exact.
func ToCommonUnits(raw string, decimals int32) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "invalid base-unit amount %q", raw)
	}
	return amount.Shift(-decimals), nil
}

// Allocation computes balance / totalSupply from the base-unit integers
// directly, so the fraction never inherits rounding from the converted
// display values.
func Allocation(rawBalance string, rawTotalSupply string) (decimal.Decimal, error) {
	balance, err := decimal.NewFromString(rawBalance)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "invalid balance %q", rawBalance)
	}

	totalSupply, err := decimal.NewFromString(rawTotalSupply)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "invalid total supply %q", rawTotalSupply)
	}

	if totalSupply.IsZero() {
		return decimal.Decimal{}, errors.New("total supply is zero")
	}

	return balance.Div(totalSupply), nil
}

// Percent renders an allocation fraction for display. Fractions of one
// percent or more round to a whole percent; smaller ones keep a single
// significant digit so dust holders still show a meaningful figure.
func Percent(frac decimal.Decimal) string {
	pct := frac.Mul(hundred)

	if pct.Abs().GreaterThanOrEqual(one) {
		return pct.Round(0).String() + "%"
	}

	if pct.IsZero() {
		return "0%"
	}

	places := int32(1)
	for pct.Shift(places).Abs().LessThan(one) {
		places++
	}

	return pct.Round(places).String() + "%"
}

// Compact renders a large value in compact notation, e.g. "1.2M".
func Compact(v decimal.Decimal) string {
	switch {
	case v.Abs().GreaterThanOrEqual(trillion):
		return v.Div(trillion).Round(1).String() + "T"
	case v.Abs().GreaterThanOrEqual(billion):
		return v.Div(billion).Round(1).String() + "B"
	case v.Abs().GreaterThanOrEqual(million):
		return v.Div(million).Round(1).String() + "M"
	case v.Abs().GreaterThanOrEqual(thousand):
		return v.Div(thousand).Round(1).String() + "K"
	default:
		return v.Round(2).String()
	}
}

// TruncateAddress shortens a hash for display, keeping the leading and
// trailing characters joined by an ellipsis.
func TruncateAddress(addr string) string {
	if len(addr) <= addressPrefixLen+addressSuffixLen {
		return addr
	}
	return addr[:addressPrefixLen] + "…" + addr[len(addr)-addressSuffixLen:]
}
