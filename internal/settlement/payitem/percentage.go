package payitem

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/haulledger/pkg/money"
)

// PercentageStrategy pays the driver's percentage of the item. Without a
// configured rate the amount passes through unscaled.
type PercentageStrategy struct{}

// Treatment returns the treatment identifier
func (s *PercentageStrategy) Treatment() Treatment {
	return TreatmentPercentageAdded
}

// Apply computes amount * rate / 100
func (s *PercentageStrategy) Apply(amount decimal.Decimal, rate decimal.NullDecimal) Contribution {
	if !rateConfigured(rate) {
		v := money.Round2(amount)
		return Contribution{
			Treatment: TreatmentPercentageAdded,
			Signed:    v,
			Formula:   money.FormatUSD(amount),
			Result:    money.FormatUSD(v),
		}
	}

	v := money.Percent(amount, rate.Decimal)
	return Contribution{
		Treatment: TreatmentPercentageAdded,
		Signed:    v,
		Formula:   money.FormatUSD(amount) + " * " + money.FormatRate(rate.Decimal) + "%",
		Result:    money.FormatUSD(v),
	}
}
