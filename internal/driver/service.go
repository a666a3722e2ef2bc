package driver

import (
	"context"
	"fmt"

	"github.com/fkhayef/haulledger/internal/audit"
	"github.com/fkhayef/haulledger/internal/validation"
	"github.com/fkhayef/haulledger/pkg/apperr"
	"github.com/fkhayef/haulledger/pkg/middleware"
)

// Common errors
var (
	ErrDriverNotFound  = apperr.NotFound("driver not found")
	ErrPayRateNotFound = apperr.NotFound("driver has no pay rate configured")
	ErrNegativeEscrow  = apperr.Validation("escrow_deposit must not be negative")
)

// Service handles driver business logic
type Service struct {
	repo  *Repository
	audit audit.Recorder
}

// NewService creates a new driver service
func NewService(repo *Repository, auditor audit.Recorder) *Service {
	return &Service{repo: repo, audit: auditor}
}

// Create registers a driver
func (s *Service) Create(ctx context.Context, req *CreateDriverRequest) (*Driver, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.EscrowDeposit != nil && req.EscrowDeposit.IsNegative() {
		return nil, ErrNegativeEscrow
	}
	if req.DriverType == "" {
		req.DriverType = DriverTypeOwnerOperator
	}
	if req.DriverStatus == "" {
		req.DriverStatus = "AVAILABLE"
	}

	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionCreate, audit.EntityDriver, id, string(req.DriverType)))
	return s.GetByID(ctx, id)
}

// GetByID retrieves a driver
func (s *Service) GetByID(ctx context.Context, id int64) (*Driver, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: id %d", ErrDriverNotFound, id)
	}
	return d, nil
}

// List retrieves drivers with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*Driver, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

// AddPayRate adds a new pay rate, which becomes the driver's current one
func (s *Service) AddPayRate(ctx context.Context, driverID int64, req *CreatePayRateRequest) (*PayRate, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.Standart != nil && req.Standart.IsNegative() {
		return nil, apperr.Validation("standart must not be negative")
	}
	if req.PayType == "" {
		req.PayType = PayTypePercentage
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}

	if _, err := s.GetByID(ctx, driverID); err != nil {
		return nil, err
	}

	p, err := s.repo.CreatePayRate(ctx, driverID, req)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionCreate, audit.EntityPayRate, p.ID, string(p.PayType)))
	return p, nil
}

// ListPayRates returns a driver's pay rates, newest first
func (s *Service) ListPayRates(ctx context.Context, driverID int64) ([]*PayRate, error) {
	if _, err := s.GetByID(ctx, driverID); err != nil {
		return nil, err
	}
	return s.repo.ListPayRates(ctx, driverID)
}

// ListLedger returns a driver's ledger postings
func (s *Service) ListLedger(ctx context.Context, driverID int64, page, perPage int) ([]*LedgerEntry, int, error) {
	if _, err := s.GetByID(ctx, driverID); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return s.repo.ListLedger(ctx, driverID, perPage, (page-1)*perPage)
}
