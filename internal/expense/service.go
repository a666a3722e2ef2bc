package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/fkhayef/haulledger/internal/audit"
	"github.com/fkhayef/haulledger/internal/driver"
	"github.com/fkhayef/haulledger/internal/period"
	"github.com/fkhayef/haulledger/internal/validation"
	"github.com/fkhayef/haulledger/pkg/apperr"
	"github.com/fkhayef/haulledger/pkg/middleware"
)

// Common errors
var (
	ErrExpenseNotFound = apperr.NotFound("expense not found")
	ErrInvalidAmount   = apperr.Validation("amount must be a positive number")
)

// Service handles driver expense business logic
type Service struct {
	repo       *Repository
	driverRepo *driver.Repository
	audit      audit.Recorder
}

// NewService creates a new expense service
func NewService(repo *Repository, driverRepo *driver.Repository, auditor audit.Recorder) *Service {
	return &Service{repo: repo, driverRepo: driverRepo, audit: auditor}
}

// Create records a driver expense or income entry
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*Expense, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	amount, err := req.Amount.Decimal()
	if err != nil || !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	date, err := time.Parse(period.DateLayout, req.ExpenseDate)
	if err != nil {
		return nil, apperr.Validationf("invalid expense_date %q", req.ExpenseDate)
	}

	d, err := s.driverRepo.GetByID(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: id %d", driver.ErrDriverNotFound, req.DriverID)
	}

	e, err := s.repo.Create(ctx, req, date)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionCreate, audit.EntityExpense, e.ID,
		string(e.TransactionType)+e.Amount.Raw))
	return e, nil
}

// GetByID retrieves an expense
func (s *Service) GetByID(ctx context.Context, id int64) (*Expense, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: id %d", ErrExpenseNotFound, id)
	}
	return e, nil
}

// ListByDriver retrieves a driver's expenses with pagination
func (s *Service) ListByDriver(ctx context.Context, driverID int64, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByDriver(ctx, driverID, perPage, offset)
}

// Delete removes an expense that has not been invoiced yet
func (s *Service) Delete(ctx context.Context, id int64) error {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e.InvoiceNumber != nil {
		return apperr.Conflict("expense is already on invoice " + *e.InvoiceNumber)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: id %d", ErrExpenseNotFound, id)
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionDelete, audit.EntityExpense, id, ""))
	return nil
}
