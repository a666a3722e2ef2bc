package ifta

import "github.com/shopspring/decimal"

// UpsertRateRequest sets the rate for one (quarter, state)
type UpsertRateRequest struct {
	Quarter Quarter          `json:"quarter" validate:"required,oneof='Quarter 1' 'Quarter 2' 'Quarter 3' 'Quarter 4'"`
	State   string           `json:"state" validate:"required,max=16"`
	Rate    decimal.Decimal  `json:"rate"`
	MPG     *decimal.Decimal `json:"mpg,omitempty"`
}

// RateItem is one jurisdiction inside a bulk rate request
type RateItem struct {
	State string           `json:"state" validate:"required,max=16"`
	Rate  decimal.Decimal  `json:"rate"`
	MPG   *decimal.Decimal `json:"mpg,omitempty"`
}

// BulkUpsertRatesRequest sets many rates for a quarter at once
type BulkUpsertRatesRequest struct {
	Quarter Quarter    `json:"quarter" validate:"required,oneof='Quarter 1' 'Quarter 2' 'Quarter 3' 'Quarter 4'"`
	Rates   []RateItem `json:"rates" validate:"required,min=1,dive"`
}

// CreateRecordRequest is the input for a single IFTA record. Derived
// gallon and tax fields are never accepted from callers.
type CreateRecordRequest struct {
	Quarter       Quarter          `json:"quarter" validate:"required,oneof='Quarter 1' 'Quarter 2' 'Quarter 3' 'Quarter 4'"`
	State         string           `json:"state" validate:"required,max=16"`
	DriverID      int64            `json:"driver_id" validate:"required,gt=0"`
	WeeklyNumber  int              `json:"weekly_number" validate:"required,min=1,max=53"`
	TotalMiles    decimal.Decimal  `json:"total_miles"`
	TaxPaidGallon *decimal.Decimal `json:"tax_paid_gallon,omitempty"`
	InvoiceNumber *string          `json:"invoice_number,omitempty"`
}

// RecordItem is one jurisdiction inside a bulk record request
type RecordItem struct {
	State         string           `json:"state" validate:"required,max=16"`
	TotalMiles    decimal.Decimal  `json:"total_miles"`
	TaxPaidGallon *decimal.Decimal `json:"tax_paid_gallon,omitempty"`
}

// BulkCreateRecordsRequest stores a driver's whole week in one go
type BulkCreateRecordsRequest struct {
	Quarter       Quarter      `json:"quarter" validate:"required,oneof='Quarter 1' 'Quarter 2' 'Quarter 3' 'Quarter 4'"`
	DriverID      int64        `json:"driver_id" validate:"required,gt=0"`
	WeeklyNumber  int          `json:"weekly_number" validate:"required,min=1,max=53"`
	InvoiceNumber *string      `json:"invoice_number,omitempty"`
	Records       []RecordItem `json:"records" validate:"required,min=1,dive"`
}

// UpdateRecordRequest changes the inputs of a record; derived fields are
// recomputed.
type UpdateRecordRequest struct {
	TotalMiles    *decimal.Decimal `json:"total_miles,omitempty"`
	TaxPaidGallon *decimal.Decimal `json:"tax_paid_gallon,omitempty"`
	InvoiceNumber *string          `json:"invoice_number,omitempty"`
}

// RecordFilter narrows a record listing
type RecordFilter struct {
	DriverID     *int64
	Quarter      *Quarter
	WeeklyNumber *int
}

// QuarterSummary is a driver's apportionment for a quarter, per state
type QuarterSummary struct {
	DriverID int64           `json:"driver_id"`
	Quarter  Quarter         `json:"quarter"`
	States   []*StateSummary `json:"states"`
	TotalTax decimal.Decimal `json:"total_tax"`
}
