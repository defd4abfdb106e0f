package utils

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = maxMinorUnits.Neg() // MinInt64 has no positive counterpart
)

// FormatMoney renders an amount in the given ISO currency, e.g. "$1,234.50".
// Unknown currency codes, and amounts whose minor units do not fit an int64, fall back to the
// plain decimal.
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		return amount.StringFixed(2)
	}
	factor := decimal.New(1, int32(cur.Fraction))
	minor := amount.Mul(factor).Round(0)
	if minor.GreaterThan(maxMinorUnits) || minor.LessThan(minMinorUnits) {
		return amount.StringFixed(int32(cur.Fraction))
	}
	return money.New(minor.IntPart(), cur.Code).Display()
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
