package ifta

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/haulledger/pkg/apperr"
	"github.com/fkhayef/haulledger/pkg/money"
)

//go:generate mockgen -source=apportion.go -destination=mocks/mock_rate_table.go -package=mocks

var ErrFuelTaxRateNotFound = apperr.NotFound("fuel tax rate not found")

// RateTable looks up fuel tax rates. RateFor returns nil, nil when no rate
// exists for the pair.
type RateTable interface {
	RateFor(ctx context.Context, quarter Quarter, state string) (*FuelTaxRate, error)
}

// Apportionment is the derived part of an IFTA record
type Apportionment struct {
	TaxableGallons    decimal.Decimal `json:"taxable_gallons"`
	NetTaxableGallons decimal.Decimal `json:"net_taxable_gallons"`
	TaxDue            decimal.Decimal `json:"tax_due"`
}

// Apportion derives gallons and tax from miles driven and fuel bought in one
// jurisdiction. Taxable gallons are zero when the baseline MPG is missing or
// not positive. Net gallons and tax go negative when more fuel was bought
// than burned; that is a credit.
func Apportion(rate *FuelTaxRate, totalMiles, fuelPurchased decimal.Decimal) Apportionment {
	taxable := decimal.Zero
	if rate.MPG.Valid && rate.MPG.Decimal.IsPositive() {
		taxable = money.Round3(totalMiles.Div(rate.MPG.Decimal))
	}
	net := money.Round3(taxable.Sub(fuelPurchased))

	return Apportionment{
		TaxableGallons:    taxable,
		NetTaxableGallons: net,
		TaxDue:            money.Round2(net.Mul(rate.Rate)),
	}
}

// ComputeApportionment looks up the rate for (quarter, state) and apportions.
// A missing rate is an error; no zero rate is ever substituted.
func ComputeApportionment(ctx context.Context, rates RateTable, state string, quarter Quarter, totalMiles, fuelPurchased decimal.Decimal) (*FuelTaxRate, Apportionment, error) {
	rate, err := rates.RateFor(ctx, quarter, state)
	if err != nil {
		return nil, Apportionment{}, err
	}
	if rate == nil {
		return nil, Apportionment{}, fmt.Errorf("%w for %s, %s", ErrFuelTaxRateNotFound, quarter, state)
	}
	return rate, Apportion(rate, totalMiles, fuelPurchased), nil
}

// apply copies a computed apportionment onto a record
func (r *Record) apply(rate *FuelTaxRate, a Apportionment) {
	r.FuelTaxRateID = rate.ID
	r.TaxableGallon = a.TaxableGallons
	r.NetTaxableGallon = a.NetTaxableGallons
	r.Tax = a.TaxDue
}
