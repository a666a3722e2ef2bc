package driver

import (
	"time"

	"github.com/shopspring/decimal"
)

// DriverType classifies how a driver is paid
type DriverType string

const (
	DriverTypeCompanyDriver DriverType = "COMPANY_DRIVER"
	DriverTypeOwnerOperator DriverType = "OWNER_OPERATOR"
	DriverTypeLease         DriverType = "LEASE"
	DriverTypeRental        DriverType = "RENTAL"
)

// Driver is a person hauling loads for the carrier
type Driver struct {
	ID            int64               `json:"id"`
	UserID        *int64              `json:"user_id,omitempty"`
	DriverType    DriverType          `json:"driver_type"`
	DriverStatus  string              `json:"driver_status"`
	EscrowDeposit decimal.NullDecimal `json:"escrow_deposit"`
	// Cost is the running escrow balance held for the driver
	Cost      decimal.Decimal `json:"cost"`
	CreatedAt time.Time       `json:"created_at"`

	// Populated via JOIN on users
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Telephone   *string `json:"telephone,omitempty"`
	Address     *string `json:"address,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
}

// IsCompanyDriver reports whether the driver is paid per mile
func (d *Driver) IsCompanyDriver() bool {
	return d.DriverType == DriverTypeCompanyDriver
}

// Escrow returns the per-settlement escrow deduction, zero when unset
func (d *Driver) Escrow() decimal.Decimal {
	if !d.EscrowDeposit.Valid {
		return decimal.Zero
	}
	return d.EscrowDeposit.Decimal
}

// PayType is how a pay rate is expressed
type PayType string

const (
	PayTypePercentage PayType = "Percentage"
	PayTypePerMile    PayType = "Per Mile"
	PayTypeHourly     PayType = "Hourly"
)

// PayRate is a driver's pay configuration. The newest one applies.
type PayRate struct {
	ID       int64   `json:"id"`
	DriverID int64   `json:"driver_id"`
	PayType  PayType `json:"pay_type"`
	Currency string  `json:"currency"`
	// Standart is the percentage of load pay owed to the driver
	Standart          decimal.NullDecimal `json:"standart"`
	AdditionalCharges decimal.NullDecimal `json:"additional_charges"`
	CreatedAt         time.Time           `json:"created_at"`
}

// LedgerKind is the type of a driver ledger posting
type LedgerKind string

const (
	// LedgerSettlementDeduction withholds escrow from a settlement
	LedgerSettlementDeduction LedgerKind = "SETTLEMENT_DEDUCTION"
	// LedgerEscrowBalanceCredit adds the withheld escrow to the driver's balance
	LedgerEscrowBalanceCredit LedgerKind = "ESCROW_BALANCE_CREDIT"
)

// LedgerEntry is one posting against a driver
type LedgerEntry struct {
	ID           int64           `json:"id"`
	DriverID     int64           `json:"driver_id"`
	SettlementID *int64          `json:"settlement_id,omitempty"`
	Kind         LedgerKind      `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"created_at"`
}
