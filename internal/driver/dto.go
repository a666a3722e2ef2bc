package driver

import "github.com/shopspring/decimal"

// CreateDriverRequest represents the request body for creating a driver
type CreateDriverRequest struct {
	UserID        *int64           `json:"user_id,omitempty"`
	DriverType    DriverType       `json:"driver_type" validate:"omitempty,oneof=COMPANY_DRIVER OWNER_OPERATOR LEASE RENTAL"`
	DriverStatus  string           `json:"driver_status,omitempty" validate:"omitempty,max=32"`
	EscrowDeposit *decimal.Decimal `json:"escrow_deposit,omitempty"`
}

// CreatePayRateRequest represents the request body for adding a pay rate
type CreatePayRateRequest struct {
	PayType           PayType          `json:"pay_type" validate:"omitempty,oneof=Percentage 'Per Mile' Hourly"`
	Currency          string           `json:"currency,omitempty" validate:"omitempty,oneof=USD CAD"`
	Standart          *decimal.Decimal `json:"standart,omitempty"`
	AdditionalCharges *decimal.Decimal `json:"additional_charges,omitempty"`
}
