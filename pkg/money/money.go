// Package money holds the decimal helpers shared by the settlement and fuel
// tax calculations. Currency is rounded half-up to cents, gallons to three
// places.
package money

import (
	"github.com/shopspring/decimal"
)

const (
	CurrencyPlaces = 2
	GallonPlaces   = 3
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds a currency value half away from zero to cents
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// Round3 rounds a gallon quantity half away from zero to three places
func Round3(d decimal.Decimal) decimal.Decimal {
	return d.Round(GallonPlaces)
}

// Percent returns amount * rate / 100 rounded to cents
func Percent(amount, rate decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(rate).Div(hundred))
}

// FormatUSD renders a currency value as "$1234.50". Negative values carry the
// sign before the symbol: "-$50.00".
func FormatUSD(d decimal.Decimal) string {
	d = Round2(d)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(CurrencyPlaces)
	}
	return "$" + d.StringFixed(CurrencyPlaces)
}

// FormatDeduction renders a positive amount as a deduction, "-$50.00"
func FormatDeduction(d decimal.Decimal) string {
	return FormatUSD(d.Abs().Neg())
}

// FormatGallons renders a gallon quantity at three decimals
func FormatGallons(d decimal.Decimal) string {
	return Round3(d).StringFixed(GallonPlaces)
}

// FormatRate renders a percentage or per-gallon rate without trailing zeros,
// "12" for 12.00 and "12.5" for 12.50.
func FormatRate(d decimal.Decimal) string {
	return d.String()
}

// ClampZero returns d, or zero when d is negative
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
