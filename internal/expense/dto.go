package expense

import (
	"github.com/fkhayef/haulledger/internal/period"
	"github.com/fkhayef/haulledger/pkg/money"
)

// CreateExpenseRequest represents the request body for a driver expense
type CreateExpenseRequest struct {
	DriverID        int64           `json:"driver_id" validate:"required,gt=0"`
	TransactionType TransactionType `json:"transaction_type" validate:"required,oneof=+ -"`
	Description     string          `json:"description" validate:"max=255"`
	Amount          money.Amount    `json:"amount"`
	ExpenseDate     string          `json:"expense_date" validate:"required,datetime=2006-01-02"`
}

// ExpenseResponse represents a driver expense
type ExpenseResponse struct {
	ID              int64           `json:"id"`
	DriverID        int64           `json:"driver_id"`
	TransactionType TransactionType `json:"transaction_type"`
	Description     string          `json:"description"`
	Amount          money.Amount    `json:"amount"`
	ExpenseDate     string          `json:"expense_date"`
	InvoiceNumber   *string         `json:"invoice_number,omitempty"`
	WeeklyNumber    *int            `json:"weekly_number,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:              e.ID,
		DriverID:        e.DriverID,
		TransactionType: e.TransactionType,
		Description:     e.Description,
		Amount:          e.Amount,
		ExpenseDate:     e.ExpenseDate.Format(period.DateLayout),
		InvoiceNumber:   e.InvoiceNumber,
		WeeklyNumber:    e.WeeklyNumber,
		CreatedAt:       e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
