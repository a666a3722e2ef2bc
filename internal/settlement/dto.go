package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/haulledger/internal/ifta"
	"github.com/fkhayef/haulledger/internal/period"
)

// CreateSettlementRequest asks for a driver's settlement over a period
type CreateSettlementRequest struct {
	DriverID      int64   `json:"driver_id" validate:"required,gt=0"`
	PayFrom       string  `json:"pay_from" validate:"required"`
	PayTo         string  `json:"pay_to" validate:"required"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	InvoiceNumber *string `json:"invoice_number,omitempty" validate:"omitempty,min=1,max=64"`
	WeeklyNumber  *int    `json:"weekly_number,omitempty" validate:"omitempty,min=1,max=53"`
	// Quarter narrows the IFTA deduction when week numbers repeat across
	// years
	Quarter      *ifta.Quarter `json:"quarter,omitempty" validate:"omitempty,oneof='Quarter 1' 'Quarter 2' 'Quarter 3' 'Quarter 4'"`
	ExtraLoadIDs []int64       `json:"extra_load_ids,omitempty" validate:"omitempty,dive,gt=0"`
	// RequireInvoicePaid overrides the configured load eligibility filter
	RequireInvoicePaid *bool `json:"require_invoice_paid,omitempty"`
	// MilesRate overrides the configured company driver per-mile rate
	MilesRate *decimal.Decimal `json:"miles_rate,omitempty"`
}

// SettlementResponse is the API view of a settlement
type SettlementResponse struct {
	ID               int64               `json:"id"`
	Reference        string              `json:"reference"`
	DriverID         int64               `json:"driver_id"`
	PayRateID        int64               `json:"pay_rate_id"`
	PayFrom          string              `json:"pay_from"`
	PayTo            string              `json:"pay_to"`
	Amount           decimal.Decimal     `json:"amount"`
	Notes            *string             `json:"notes,omitempty"`
	InvoiceNumber    *string             `json:"invoice_number,omitempty"`
	WeeklyNumber     *int                `json:"weekly_number,omitempty"`
	TotalMiles       *int                `json:"total_miles,omitempty"`
	MilesRate        decimal.NullDecimal `json:"miles_rate"`
	CompanyDriverPay decimal.NullDecimal `json:"company_driver_pay"`
	CreatedAt        string              `json:"created_at"`
	Breakdown        *Result             `json:"breakdown,omitempty"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO
func (s *Settlement) ToResponse() *SettlementResponse {
	return &SettlementResponse{
		ID:               s.ID,
		Reference:        s.Reference.String(),
		DriverID:         s.DriverID,
		PayRateID:        s.PayRateID,
		PayFrom:          s.PayFrom.Format(period.DateLayout),
		PayTo:            s.PayTo.Format(period.DateLayout),
		Amount:           s.Amount,
		Notes:            s.Notes,
		InvoiceNumber:    s.InvoiceNumber,
		WeeklyNumber:     s.WeeklyNumber,
		TotalMiles:       s.TotalMiles,
		MilesRate:        s.MilesRate,
		CompanyDriverPay: s.CompanyDriverPay,
		CreatedAt:        s.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Breakdown:        s.Breakdown,
	}
}
