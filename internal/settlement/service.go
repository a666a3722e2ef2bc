package settlement

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fkhayef/haulledger/internal/audit"
	"github.com/fkhayef/haulledger/internal/driver"
	"github.com/fkhayef/haulledger/internal/load"
	"github.com/fkhayef/haulledger/internal/period"
	"github.com/fkhayef/haulledger/internal/validation"
	"github.com/fkhayef/haulledger/pkg/apperr"
	"github.com/fkhayef/haulledger/pkg/middleware"
	"github.com/fkhayef/haulledger/pkg/money"
)

var ErrSettlementNotFound = apperr.NotFound("settlement not found")

// Options are the configured defaults of a settlement run
type Options struct {
	MilesRate          decimal.Decimal
	RequireInvoicePaid bool
}

// Service runs and reads settlements
type Service struct {
	store  Store
	engine *Engine
	opts   Options
	log    *zap.Logger
	now    func() time.Time
}

// NewService creates a new settlement service
func NewService(store Store, opts Options, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MilesRate.IsZero() {
		opts.MilesRate = DefaultMilesRate
	}
	return &Service{
		store:  store,
		engine: NewEngine(log),
		opts:   opts,
		log:    log,
		now:    time.Now,
	}
}

// billable reports whether a record carrying tag may be settled under
// invoice. Records already billed under a different invoice are excluded.
func billable(tag, invoice *string) bool {
	if tag == nil || *tag == "" {
		return true
	}
	return invoice != nil && *tag == *invoice
}

// ComputeSettlement computes, stores and returns a driver's settlement for
// a period. Selection, the stored record, escrow postings, tag stamping and
// the audit entry all commit in one transaction.
func (s *Service) ComputeSettlement(ctx context.Context, req *CreateSettlementRequest) (*Settlement, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	p, err := period.Parse(req.PayFrom, req.PayTo)
	if err != nil {
		return nil, err
	}

	milesRate := s.opts.MilesRate
	if req.MilesRate != nil {
		if req.MilesRate.IsNegative() {
			return nil, apperr.Validation("miles_rate must not be negative")
		}
		milesRate = *req.MilesRate
	}
	paidOnly := s.opts.RequireInvoicePaid
	if req.RequireInvoicePaid != nil {
		paidOnly = *req.RequireInvoicePaid
	}

	d, err := s.store.GetDriver(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: id %d", driver.ErrDriverNotFound, req.DriverID)
	}
	rate, err := s.store.LatestPayRate(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, fmt.Errorf("%w: driver %d", driver.ErrPayRateNotFound, d.ID)
	}

	var out *Settlement
	err = s.store.InTx(ctx, func(tx Store) error {
		// Lock first so concurrent runs for this driver serialize
		locked, err := tx.LockDriver(ctx, d.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return fmt.Errorf("%w: id %d", driver.ErrDriverNotFound, d.ID)
		}

		in, err := s.gather(ctx, tx, req, p, paidOnly)
		if err != nil {
			return err
		}
		in.Driver = locked
		in.PayRate = rate
		in.MilesRate = milesRate
		in.GeneratedAt = s.now()

		res, err := s.engine.Compute(in)
		if err != nil {
			return err
		}

		st := &Settlement{
			Reference:     uuid.New(),
			DriverID:      locked.ID,
			PayRateID:     rate.ID,
			PayFrom:       p.From,
			PayTo:         p.To,
			Amount:        res.Totals.Pay,
			Notes:         req.Notes,
			InvoiceNumber: req.InvoiceNumber,
			WeeklyNumber:  req.WeeklyNumber,
			Breakdown:     res,
		}
		if cd := res.CompanyDriverData; cd != nil {
			miles := cd.TotalMiles
			st.TotalMiles = &miles
			st.MilesRate = decimal.NewNullDecimal(cd.Rate)
			st.CompanyDriverPay = decimal.NewNullDecimal(cd.Pay)
		}
		if err := tx.CreateSettlement(ctx, st); err != nil {
			return err
		}

		if res.Totals.Escrow.IsPositive() {
			if _, err := tx.PostEscrow(ctx, locked.ID, st.ID, res.Totals.Escrow); err != nil {
				return err
			}
		}

		if err := stamp(ctx, tx, in, req); err != nil {
			return err
		}

		entry := audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionSettle, audit.EntitySettlement, st.ID,
			fmt.Sprintf("driver %d %s %s", locked.ID, p, money.FormatUSD(st.Amount)))
		if err := tx.RecordAudit(ctx, entry); err != nil {
			return err
		}

		out = st
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("settlement computed",
		zap.Int64("settlement_id", out.ID),
		zap.Int64("driver_id", out.DriverID),
		zap.String("period", p.String()),
		zap.String("amount", out.Amount.StringFixed(money.CurrencyPlaces)),
		zap.Int("loads", len(out.Breakdown.Loads)),
	)
	return out, nil
}

// gather selects the loads, expenses and IFTA records of a run and drops
// those already billed under another invoice
func (s *Service) gather(ctx context.Context, tx Store, req *CreateSettlementRequest, p period.Period, paidOnly bool) (Input, error) {
	in := Input{Period: p, InvoiceNumber: req.InvoiceNumber, WeeklyNumber: req.WeeklyNumber}

	dated, err := tx.LoadsForPeriod(ctx, req.DriverID, p, paidOnly)
	if err != nil {
		return in, err
	}
	extra, err := tx.LoadsByIDs(ctx, req.DriverID, req.ExtraLoadIDs)
	if err != nil {
		return in, err
	}
	in.Loads = mergeLoads(dated, extra, req.InvoiceNumber)

	expenses, err := tx.ExpensesForPeriod(ctx, req.DriverID, p)
	if err != nil {
		return in, err
	}
	for _, x := range expenses {
		if billable(x.InvoiceNumber, req.InvoiceNumber) {
			in.Expenses = append(in.Expenses, x)
		}
	}

	if req.WeeklyNumber != nil {
		records, err := tx.IftaForWeek(ctx, req.DriverID, *req.WeeklyNumber, req.Quarter)
		if err != nil {
			return in, err
		}
		for _, r := range records {
			if billable(r.InvoiceNumber, req.InvoiceNumber) {
				in.IftaRecords = append(in.IftaRecords, r)
			}
		}
	}

	company, err := tx.Company(ctx)
	if err != nil {
		return in, err
	}
	in.Company = company
	return in, nil
}

// mergeLoads unions date-selected and manually added loads by id. Manually
// added loads skip the invoice exclusion.
func mergeLoads(dated, extra []*load.Load, invoice *string) []*load.Load {
	seen := make(map[int64]bool, len(dated)+len(extra))
	out := make([]*load.Load, 0, len(dated)+len(extra))
	for _, l := range extra {
		if !seen[l.ID] {
			seen[l.ID] = true
			out = append(out, l)
		}
	}
	for _, l := range dated {
		if !seen[l.ID] && billable(l.InvoiceNumber, invoice) {
			seen[l.ID] = true
			out = append(out, l)
		}
	}
	slices.SortFunc(out, func(a, b *load.Load) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}

// stamp tags every settled record with the run's invoice and week
func stamp(ctx context.Context, tx Store, in Input, req *CreateSettlementRequest) error {
	if req.InvoiceNumber == nil && req.WeeklyNumber == nil {
		return nil
	}

	loadIDs := make([]int64, len(in.Loads))
	for i, l := range in.Loads {
		loadIDs[i] = l.ID
	}
	if err := tx.StampLoads(ctx, loadIDs, req.InvoiceNumber, req.WeeklyNumber); err != nil {
		return err
	}

	expenseIDs := make([]int64, len(in.Expenses))
	for i, x := range in.Expenses {
		expenseIDs[i] = x.ID
	}
	if err := tx.StampExpenses(ctx, expenseIDs, req.InvoiceNumber, req.WeeklyNumber); err != nil {
		return err
	}

	if req.InvoiceNumber == nil {
		return nil
	}
	iftaIDs := make([]int64, len(in.IftaRecords))
	for i, r := range in.IftaRecords {
		iftaIDs[i] = r.ID
	}
	return tx.StampIfta(ctx, iftaIDs, req.InvoiceNumber)
}

// GetByID retrieves a settlement with its breakdown
func (s *Service) GetByID(ctx context.Context, id int64) (*Settlement, error) {
	st, err := s.store.GetSettlement(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: id %d", ErrSettlementNotFound, id)
	}
	return st, nil
}

// ListByDriver retrieves a driver's settlements with pagination
func (s *Service) ListByDriver(ctx context.Context, driverID int64, page, perPage int) ([]*Settlement, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.store.ListSettlements(ctx, driverID, perPage, offset)
}
