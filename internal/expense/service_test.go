package expense

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/haulledger/pkg/apperr"
	"github.com/fkhayef/haulledger/pkg/money"
)

func TestService_Create_RejectsBadInput(t *testing.T) {
	// Every case fails before the repositories are touched
	svc := NewService(nil, nil, nil)

	valid := func() *CreateExpenseRequest {
		return &CreateExpenseRequest{
			DriverID:        1,
			TransactionType: TransactionExpense,
			Description:     "fuel advance",
			Amount:          money.AmountFromString("50.00"),
			ExpenseDate:     "2024-01-03",
		}
	}

	tests := []struct {
		name   string
		mutate func(*CreateExpenseRequest)
	}{
		{"missing driver", func(r *CreateExpenseRequest) { r.DriverID = 0 }},
		{"unknown transaction type", func(r *CreateExpenseRequest) { r.TransactionType = "*" }},
		{"bad date", func(r *CreateExpenseRequest) { r.ExpenseDate = "01/03/2024" }},
		{"blank amount", func(r *CreateExpenseRequest) { r.Amount = money.Amount{} }},
		{"unparseable amount", func(r *CreateExpenseRequest) { r.Amount = money.AmountFromString("n/a") }},
		{"negative amount", func(r *CreateExpenseRequest) { r.Amount = money.AmountFromString("(35.00)") }},
		{"zero amount", func(r *CreateExpenseRequest) { r.Amount = money.AmountFromString("0") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)

			e, err := svc.Create(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, e)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestExpense_ToResponse(t *testing.T) {
	inv := "INV-1"
	week := 2
	e := &Expense{
		ID:              9,
		DriverID:        3,
		TransactionType: TransactionIncome,
		Description:     "bonus",
		Amount:          money.AmountFromString("$1,200.00"),
		ExpenseDate:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		InvoiceNumber:   &inv,
		WeeklyNumber:    &week,
		CreatedAt:       time.Date(2024, 1, 6, 8, 30, 0, 0, time.UTC),
	}

	resp := e.ToResponse()
	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, TransactionIncome, resp.TransactionType)
	assert.Equal(t, "$1,200.00", resp.Amount.Raw)
	assert.Equal(t, "2024-01-05", resp.ExpenseDate)
	assert.Equal(t, "2024-01-06T08:30:00Z", resp.CreatedAt)
	require.NotNil(t, resp.InvoiceNumber)
	assert.Equal(t, "INV-1", *resp.InvoiceNumber)
	assert.Equal(t, 2, *resp.WeeklyNumber)
}
