package ifta

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quarter is an IFTA reporting period
type Quarter string

const (
	Quarter1 Quarter = "Quarter 1"
	Quarter2 Quarter = "Quarter 2"
	Quarter3 Quarter = "Quarter 3"
	Quarter4 Quarter = "Quarter 4"
)

// KYSurcharge is the Kentucky surcharge pseudo-jurisdiction, rated separately
// from KY itself
const KYSurcharge = "KY Surcharge"

// FuelTaxRate is a jurisdiction's rate and baseline MPG for one quarter
type FuelTaxRate struct {
	ID      int64               `json:"id"`
	Quarter Quarter             `json:"quarter"`
	State   string              `json:"state"`
	Rate    decimal.Decimal     `json:"rate"`
	MPG     decimal.NullDecimal `json:"mpg"`
}

// Record is one (driver, quarter, jurisdiction, week) apportionment entry.
// TaxableGallon, NetTaxableGallon and Tax are always derived.
type Record struct {
	ID               int64               `json:"id"`
	Quarter          Quarter             `json:"quarter"`
	State            string              `json:"state"`
	DriverID         int64               `json:"driver_id"`
	WeeklyNumber     int                 `json:"weekly_number"`
	TotalMiles       decimal.Decimal     `json:"total_miles"`
	TaxPaidGallon    decimal.NullDecimal `json:"tax_paid_gallon"`
	TaxableGallon    decimal.Decimal     `json:"taxable_gallon"`
	NetTaxableGallon decimal.Decimal     `json:"net_taxable_gallon"`
	Tax              decimal.Decimal     `json:"tax"`
	FuelTaxRateID    int64               `json:"fuel_tax_rate_id"`
	InvoiceNumber    *string             `json:"invoice_number,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

// FuelPurchased returns tax-paid gallons, zero when not reported
func (r *Record) FuelPurchased() decimal.Decimal {
	if !r.TaxPaidGallon.Valid {
		return decimal.Zero
	}
	return r.TaxPaidGallon.Decimal
}

// StateSummary totals a driver's records for one jurisdiction in a quarter
type StateSummary struct {
	State            string          `json:"state"`
	TotalMiles       decimal.Decimal `json:"total_miles"`
	TaxPaidGallon    decimal.Decimal `json:"tax_paid_gallon"`
	TaxableGallon    decimal.Decimal `json:"taxable_gallon"`
	NetTaxableGallon decimal.Decimal `json:"net_taxable_gallon"`
	Tax              decimal.Decimal `json:"tax"`
}
