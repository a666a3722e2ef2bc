package payitem

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/haulledger/pkg/money"
)

// AddStrategy adds the full amount regardless of the driver's rate
type AddStrategy struct{}

// Treatment returns the treatment identifier
func (s *AddStrategy) Treatment() Treatment {
	return TreatmentFullAdded
}

// Apply returns the amount unchanged
func (s *AddStrategy) Apply(amount decimal.Decimal, _ decimal.NullDecimal) Contribution {
	v := money.Round2(amount)
	return Contribution{
		Treatment: TreatmentFullAdded,
		Signed:    v,
		Formula:   money.FormatUSD(v),
		Result:    money.FormatUSD(v),
	}
}

// SubtractStrategy deducts the full amount. It is never scaled by the rate.
type SubtractStrategy struct{}

// Treatment returns the treatment identifier
func (s *SubtractStrategy) Treatment() Treatment {
	return TreatmentFullSubtracted
}

// Apply returns the negated amount
func (s *SubtractStrategy) Apply(amount decimal.Decimal, _ decimal.NullDecimal) Contribution {
	v := money.Round2(amount.Abs())
	return Contribution{
		Treatment: TreatmentFullSubtracted,
		Signed:    v.Neg(),
		Formula:   money.FormatDeduction(v),
		Result:    money.FormatDeduction(v),
	}
}
