package settlement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/haulledger/internal/load"
	"github.com/fkhayef/haulledger/pkg/money"
)

// DefaultMilesRate is paid per loaded mile to company drivers
var DefaultMilesRate = decimal.RequireFromString("0.65")

// CompanyDriverLoad is one load's trip summary
type CompanyDriverLoad struct {
	LoadNumber       string `json:"load_number"`
	LoadID           string `json:"load_id"`
	LoadedMiles      int    `json:"loaded_miles"`
	PickupLocation   string `json:"pickup_location"`
	DeliveryLocation string `json:"delivery_location"`
	Trip             string `json:"trip"`
}

// CalculationSummary explains the mileage pay
type CalculationSummary struct {
	Formula    string `json:"formula"`
	LoadsCount int    `json:"loads_count"`
}

// CompanyDriverBlock is the per-mile pay reported beside the percentage
// settlement for company drivers
type CompanyDriverBlock struct {
	TotalMiles         int                 `json:"total_miles"`
	MilesRate          string              `json:"miles_rate"`
	CompanyDriverPay   string              `json:"company_driver_pay"`
	LoadsDetail        []CompanyDriverLoad `json:"loads_detail"`
	CalculationSummary CalculationSummary  `json:"calculation_summary"`

	Rate decimal.Decimal `json:"rate"`
	Pay  decimal.Decimal `json:"pay"`
}

// ComputeMileage sums loaded miles over loads and pays them at rate
func ComputeMileage(loads []*load.Load, rate decimal.Decimal) *CompanyDriverBlock {
	details := make([]CompanyDriverLoad, 0, len(loads))
	total := 0
	for _, l := range loads {
		total += l.Mile
		pickup := l.PickupStop().Location()
		delivery := l.DeliveryStop().Location()
		details = append(details, CompanyDriverLoad{
			LoadNumber:       l.LoadID,
			LoadID:           l.LoadID,
			LoadedMiles:      l.Mile,
			PickupLocation:   pickup,
			DeliveryLocation: delivery,
			Trip:             pickup + " - " + delivery,
		})
	}

	pay := money.Round2(decimal.NewFromInt(int64(total)).Mul(rate))
	return &CompanyDriverBlock{
		TotalMiles:       total,
		MilesRate:        "$" + money.FormatRate(rate),
		CompanyDriverPay: money.FormatUSD(pay),
		LoadsDetail:      details,
		CalculationSummary: CalculationSummary{
			Formula:    fmt.Sprintf("%d miles × $%s = %s", total, money.FormatRate(rate), money.FormatUSD(pay)),
			LoadsCount: len(details),
		},
		Rate: rate,
		Pay:  pay,
	}
}
