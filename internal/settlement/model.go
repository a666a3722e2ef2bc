package settlement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fkhayef/haulledger/internal/company"
)

// Settlement is a stored driver pay statement for one period
type Settlement struct {
	ID            int64           `json:"id"`
	Reference     uuid.UUID       `json:"reference"`
	DriverID      int64           `json:"driver_id"`
	PayRateID     int64           `json:"pay_rate_id"`
	PayFrom       time.Time       `json:"pay_from"`
	PayTo         time.Time       `json:"pay_to"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         *string         `json:"notes,omitempty"`
	InvoiceNumber *string         `json:"invoice_number,omitempty"`
	WeeklyNumber  *int            `json:"weekly_number,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`

	// Company driver figures, set only for company drivers
	TotalMiles       *int                `json:"total_miles,omitempty"`
	MilesRate        decimal.NullDecimal `json:"miles_rate"`
	CompanyDriverPay decimal.NullDecimal `json:"company_driver_pay"`

	// Breakdown is the full computed statement. List queries leave it nil.
	Breakdown *Result `json:"breakdown,omitempty"`
}

// AggregateBlock pairs an audit formula with its currency result
type AggregateBlock struct {
	Formula string `json:"Formula"`
	Result  string `json:"Result"`
}

// OtherPayDetail is one classified other-pay item on a load
type OtherPayDetail struct {
	PayType string `json:"pay_type"`
	Formula string `json:"formula"`
	Result  string `json:"result"`
	Note    string `json:"note"`
}

// ChargebackDeduction is a chargeback listed separately for audit. Amount
// is positive.
type ChargebackDeduction struct {
	LoadID  string `json:"load_id"`
	Amount  string `json:"amount"`
	Note    string `json:"note"`
	PayType string `json:"pay_type"`
}

// LoadBreakdown is one load's line on the statement
type LoadBreakdown struct {
	LoadNumber          string           `json:"Load #"`
	Pickup              string           `json:"Pickup"`
	Delivery            string           `json:"Delivery"`
	Formula             string           `json:"Formula"`
	Result              string           `json:"Result"`
	Notes               string           `json:"Notes"`
	ChargebackDeduction *string          `json:"Chargeback Deduction"`
	OtherPayments       []OtherPayDetail `json:"Other Payments"`

	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

// ExpenseDetail is one expense or income entry on the statement
type ExpenseDetail struct {
	Description string `json:"Description"`
	Formula     string `json:"Formula"`
	Result      string `json:"Result"`
	Type        string `json:"Type"`
	Date        string `json:"Date"`
}

// IftaDetail is one fuel tax record deducted by the statement
type IftaDetail struct {
	State            string `json:"state"`
	Quarter          string `json:"quarter"`
	WeeklyNumber     int    `json:"weekly_number"`
	TotalMiles       string `json:"total_miles"`
	NetTaxableGallon string `json:"net_taxable_gallon"`
	Tax              string `json:"tax"`
}

// DriverInfo is the driver block of a statement
type DriverInfo struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	ContactNumber *string `json:"contact_number"`
	Address1      *string `json:"address1"`
	GenerateDate  string  `json:"generate_date"`
	ReportDate    string  `json:"report_date"`
	SearchFrom    string  `json:"search_from"`
	SearchTo      string  `json:"search_to"`
	CompanyName   *string `json:"company_name"`
	InvoiceNumber *string `json:"invoice_number"`
	WeeklyNumber  *int    `json:"weekly_number"`
}

// Totals are the typed sums behind the aggregate blocks
type Totals struct {
	LoadPays    decimal.Decimal `json:"load_pays"`
	OtherPays   decimal.Decimal `json:"other_pays"`
	Chargebacks decimal.Decimal `json:"chargebacks"`
	Escrow      decimal.Decimal `json:"escrow"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Ifta        decimal.Decimal `json:"ifta"`
	// Unclamped is the total before the zero floor
	Unclamped decimal.Decimal `json:"unclamped"`
	Pay       decimal.Decimal `json:"pay"`
}

// Result is a complete settlement statement
type Result struct {
	Driver               DriverInfo            `json:"driver"`
	CompanyInfo          company.Info          `json:"company_info"`
	Loads                []LoadBreakdown       `json:"loads"`
	TotalLoadPays        AggregateBlock        `json:"total_load_pays"`
	TotalOtherPays       AggregateBlock        `json:"total_other_pays"`
	EscrowDeduction      AggregateBlock        `json:"escrow_deduction"`
	ChargebackDeductions []ChargebackDeduction `json:"chargeback_deductions"`
	Expenses             []ExpenseDetail       `json:"expenses"`
	TotalExpenses        AggregateBlock        `json:"total_expenses"`
	TotalIncome          AggregateBlock        `json:"total_income"`
	Ifta                 []IftaDetail          `json:"ifta"`
	TotalIfta            AggregateBlock        `json:"total_ifta"`
	TotalPay             AggregateBlock        `json:"total_pay"`
	CompanyDriverData    *CompanyDriverBlock   `json:"company_driver_data,omitempty"`

	Totals Totals `json:"totals"`
	// Skipped lists line items left out because their amount was unusable
	Skipped []string `json:"skipped,omitempty"`
}
