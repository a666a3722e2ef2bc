package load

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fkhayef/haulledger/internal/audit"
	"github.com/fkhayef/haulledger/internal/database"
	"github.com/fkhayef/haulledger/internal/driver"
	"github.com/fkhayef/haulledger/internal/validation"
	"github.com/fkhayef/haulledger/pkg/apperr"
	"github.com/fkhayef/haulledger/pkg/middleware"
	"github.com/fkhayef/haulledger/pkg/money"
)

var ErrLoadNotFound = apperr.NotFound("load not found")

// Service handles load business logic
type Service struct {
	db         *sql.DB
	repo       *Repository
	driverRepo *driver.Repository
	audit      audit.Recorder
}

// NewService creates a new load service
func NewService(db *sql.DB, repo *Repository, driverRepo *driver.Repository, auditor audit.Recorder) *Service {
	return &Service{db: db, repo: repo, driverRepo: driverRepo, audit: auditor}
}

// validateAmount rejects values the settlement engine would have to skip.
// Blank amounts are allowed and contribute nothing.
func validateAmount(field string, a money.Amount) error {
	if !a.Valid {
		return nil
	}
	d, err := a.Decimal()
	if err != nil {
		return apperr.Validationf("%s: %v", field, err)
	}
	if d.IsNegative() {
		return apperr.Validationf("%s must not be negative", field)
	}
	return nil
}

// Create stores a load together with its stops and other-pay items
func (s *Service) Create(ctx context.Context, req *CreateLoadRequest) (*Load, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := validateAmount("load_pay", req.LoadPay); err != nil {
		return nil, err
	}
	for i, p := range req.OtherPays {
		if err := validateAmount(fmt.Sprintf("other_pays[%d].amount", i), p.Amount); err != nil {
			return nil, err
		}
	}
	if req.InvoiceStatus == "" {
		req.InvoiceStatus = InvoiceStatusUnpaid
	}

	d, err := s.driverRepo.GetByID(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: id %d", driver.ErrDriverNotFound, req.DriverID)
	}

	var id int64
	err = database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var txErr error
		id, txErr = NewRepository(tx).Create(ctx, req)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionCreate, audit.EntityLoad, id, req.LoadID))
	return s.GetByID(ctx, id)
}

// GetByID retrieves a load
func (s *Service) GetByID(ctx context.Context, id int64) (*Load, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: id %d", ErrLoadNotFound, id)
	}
	return l, nil
}

// ListByDriver retrieves a driver's loads with pagination
func (s *Service) ListByDriver(ctx context.Context, driverID int64, page, perPage int) ([]*Load, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByDriver(ctx, driverID, perPage, offset)
}

// AddStop attaches a stop to an existing load
func (s *Service) AddStop(ctx context.Context, loadID int64, req *CreateStopRequest) (*Stop, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(ctx, loadID); err != nil {
		return nil, err
	}

	stop, err := s.repo.AddStop(ctx, loadID, req)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionUpdate, audit.EntityLoad, loadID, "stop "+string(stop.StopName)))
	return stop, nil
}

// AddOtherPay attaches an other-pay item to an existing load
func (s *Service) AddOtherPay(ctx context.Context, loadID int64, req *CreateOtherPayRequest) (*OtherPay, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := validateAmount("amount", req.Amount); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(ctx, loadID); err != nil {
		return nil, err
	}

	p, err := s.repo.AddOtherPay(ctx, loadID, req)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionUpdate, audit.EntityLoad, loadID, "other pay "+p.PayType))
	return p, nil
}

// UpdateInvoiceStatus moves a load through billing
func (s *Service) UpdateInvoiceStatus(ctx context.Context, id int64, req *UpdateInvoiceStatusRequest) (*Load, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateInvoiceStatus(ctx, id, req.InvoiceStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: id %d", ErrLoadNotFound, id)
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionUpdate, audit.EntityLoad, id, "invoice status "+string(req.InvoiceStatus)))
	return s.GetByID(ctx, id)
}
