package expense

import (
	"time"

	"github.com/fkhayef/haulledger/pkg/money"
)

// TransactionType is the direction of a driver expense entry
type TransactionType string

const (
	// TransactionIncome is paid to the driver
	TransactionIncome TransactionType = "+"
	// TransactionExpense is charged to the driver
	TransactionExpense TransactionType = "-"
)

// Expense is a dated ledger entry against a driver, independent of loads
type Expense struct {
	ID              int64           `json:"id"`
	DriverID        int64           `json:"driver_id"`
	TransactionType TransactionType `json:"transaction_type"`
	Description     string          `json:"description"`
	Amount          money.Amount    `json:"amount"`
	ExpenseDate     time.Time       `json:"expense_date"`
	InvoiceNumber   *string         `json:"invoice_number,omitempty"`
	WeeklyNumber    *int            `json:"weekly_number,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
