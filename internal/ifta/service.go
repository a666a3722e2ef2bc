package ifta

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/haulledger/internal/audit"
	"github.com/fkhayef/haulledger/internal/driver"
	"github.com/fkhayef/haulledger/internal/validation"
	"github.com/fkhayef/haulledger/pkg/apperr"
	"github.com/fkhayef/haulledger/pkg/middleware"
)

var (
	ErrRecordNotFound  = apperr.NotFound("ifta record not found")
	ErrDuplicateRecord = apperr.Conflict("ifta record already exists for this driver, quarter, state and week")
)

// Service handles fuel tax rates and IFTA records. Every record write goes
// through ComputeApportionment so stored derived fields always match the
// current rate table.
type Service struct {
	store      RecordStore
	rates      RateTable
	driverRepo *driver.Repository
	audit      audit.Recorder
}

// NewService creates a new IFTA service
func NewService(store RecordStore, rates RateTable, driverRepo *driver.Repository, auditor audit.Recorder) *Service {
	return &Service{store: store, rates: rates, driverRepo: driverRepo, audit: auditor}
}

// NormalizeState upper-cases two-letter codes and accepts the KY surcharge
// pseudo-state
func NormalizeState(state string) (string, error) {
	state = strings.TrimSpace(state)
	if strings.EqualFold(state, KYSurcharge) {
		return KYSurcharge, nil
	}
	if len(state) != 2 {
		return "", apperr.Validationf("state %q must be a two-letter code or %q", state, KYSurcharge)
	}
	for _, c := range state {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return "", apperr.Validationf("state %q must be a two-letter code or %q", state, KYSurcharge)
		}
	}
	return strings.ToUpper(state), nil
}

func validateInputs(totalMiles decimal.Decimal, fuel *decimal.Decimal) error {
	if totalMiles.IsNegative() {
		return apperr.Validation("total_miles must not be negative")
	}
	if fuel != nil && fuel.IsNegative() {
		return apperr.Validation("tax_paid_gallon must not be negative")
	}
	return nil
}

func nullable(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func (s *Service) requireDriver(ctx context.Context, id int64) error {
	d, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("%w: id %d", driver.ErrDriverNotFound, id)
	}
	return nil
}

// UpsertRate sets the rate for one (quarter, state)
func (s *Service) UpsertRate(ctx context.Context, req *UpsertRateRequest) (*FuelTaxRate, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	state, err := NormalizeState(req.State)
	if err != nil {
		return nil, err
	}
	if req.Rate.IsNegative() {
		return nil, apperr.Validation("rate must not be negative")
	}

	rate, err := s.store.UpsertRate(ctx, req.Quarter, state, req.Rate, nullable(req.MPG))
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionUpdate, audit.EntityFuelTax, rate.ID, string(rate.Quarter)+" "+rate.State))
	return rate, nil
}

// BulkUpsertRates sets many rates for a quarter in one transaction
func (s *Service) BulkUpsertRates(ctx context.Context, req *BulkUpsertRatesRequest) ([]*FuelTaxRate, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	states := make([]string, len(req.Rates))
	for i, item := range req.Rates {
		state, err := NormalizeState(item.State)
		if err != nil {
			return nil, err
		}
		if item.Rate.IsNegative() {
			return nil, apperr.Validationf("rates[%d].rate must not be negative", i)
		}
		states[i] = state
	}

	rates := make([]*FuelTaxRate, 0, len(req.Rates))
	err := s.store.InTx(ctx, func(tx RecordStore) error {
		for i, item := range req.Rates {
			rate, err := tx.UpsertRate(ctx, req.Quarter, states[i], item.Rate, nullable(item.MPG))
			if err != nil {
				return err
			}
			rates = append(rates, rate)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, rate := range rates {
		s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionUpdate, audit.EntityFuelTax, rate.ID, string(rate.Quarter)+" "+rate.State))
	}
	return rates, nil
}

// ListRates returns the rate table of a quarter
func (s *Service) ListRates(ctx context.Context, quarter Quarter) ([]*FuelTaxRate, error) {
	return s.store.ListRates(ctx, quarter)
}

// newRecord validates inputs and builds a computed record. Nothing is
// written when the rate is missing.
func (s *Service) newRecord(ctx context.Context, quarter Quarter, rawState string, driverID int64, week int, miles decimal.Decimal, fuel *decimal.Decimal, invoice *string) (*Record, error) {
	state, err := NormalizeState(rawState)
	if err != nil {
		return nil, err
	}
	if err := validateInputs(miles, fuel); err != nil {
		return nil, err
	}

	rec := &Record{
		Quarter:       quarter,
		State:         state,
		DriverID:      driverID,
		WeeklyNumber:  week,
		TotalMiles:    miles,
		TaxPaidGallon: nullable(fuel),
		InvoiceNumber: invoice,
	}
	rate, a, err := ComputeApportionment(ctx, s.rates, state, quarter, miles, rec.FuelPurchased())
	if err != nil {
		return nil, err
	}
	rec.apply(rate, a)
	return rec, nil
}

// CreateRecord computes and stores one IFTA record
func (s *Service) CreateRecord(ctx context.Context, req *CreateRecordRequest) (*Record, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	rec, err := s.newRecord(ctx, req.Quarter, req.State, req.DriverID, req.WeeklyNumber, req.TotalMiles, req.TaxPaidGallon, req.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if err := s.requireDriver(ctx, req.DriverID); err != nil {
		return nil, err
	}
	if err := s.store.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionCreate, audit.EntityIftaRecord, rec.ID, string(rec.Quarter)+" "+rec.State))
	return rec, nil
}

// BulkCreateRecords computes every record first and stores them in one
// transaction, so a single missing rate stores nothing.
func (s *Service) BulkCreateRecords(ctx context.Context, req *BulkCreateRecordsRequest) ([]*Record, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(req.Records))
	for _, item := range req.Records {
		rec, err := s.newRecord(ctx, req.Quarter, item.State, req.DriverID, req.WeeklyNumber, item.TotalMiles, item.TaxPaidGallon, req.InvoiceNumber)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := s.requireDriver(ctx, req.DriverID); err != nil {
		return nil, err
	}

	err := s.store.InTx(ctx, func(tx RecordStore) error {
		for _, rec := range records {
			if err := tx.CreateRecord(ctx, rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionCreate, audit.EntityIftaRecord, rec.ID, string(rec.Quarter)+" "+rec.State))
	}
	return records, nil
}

// UpdateRecord changes a record's inputs and recomputes its derived fields
// against the current rate table
func (s *Service) UpdateRecord(ctx context.Context, id int64, req *UpdateRecordRequest) (*Record, error) {
	rec, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TotalMiles != nil {
		rec.TotalMiles = *req.TotalMiles
	}
	if req.TaxPaidGallon != nil {
		rec.TaxPaidGallon = nullable(req.TaxPaidGallon)
	}
	if req.InvoiceNumber != nil {
		rec.InvoiceNumber = req.InvoiceNumber
	}
	if err := validateInputs(rec.TotalMiles, req.TaxPaidGallon); err != nil {
		return nil, err
	}

	rate, a, err := ComputeApportionment(ctx, s.rates, rec.State, rec.Quarter, rec.TotalMiles, rec.FuelPurchased())
	if err != nil {
		return nil, err
	}
	rec.apply(rate, a)

	if err := s.store.UpdateRecord(ctx, rec); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionUpdate, audit.EntityIftaRecord, rec.ID, string(rec.Quarter)+" "+rec.State))
	return rec, nil
}

// GetRecord retrieves an IFTA record
func (s *Service) GetRecord(ctx context.Context, id int64) (*Record, error) {
	rec, err := s.store.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}
	return rec, nil
}

// ListRecords retrieves records with pagination
func (s *Service) ListRecords(ctx context.Context, f RecordFilter, page, perPage int) ([]*Record, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.store.ListRecords(ctx, f, perPage, offset)
}

// Summary totals a driver's quarter per state
func (s *Service) Summary(ctx context.Context, driverID int64, quarter Quarter) (*QuarterSummary, error) {
	if err := validation.Var(string(quarter), "required,oneof='Quarter 1' 'Quarter 2' 'Quarter 3' 'Quarter 4'", "quarter"); err != nil {
		return nil, err
	}

	states, err := s.store.Summary(ctx, driverID, quarter)
	if err != nil {
		return nil, err
	}
	if states == nil {
		states = []*StateSummary{}
	}

	total := decimal.Zero
	for _, st := range states {
		total = total.Add(st.Tax)
	}
	return &QuarterSummary{DriverID: driverID, Quarter: quarter, States: states, TotalTax: total}, nil
}
