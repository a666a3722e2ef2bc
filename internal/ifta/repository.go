package ifta

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/fkhayef/haulledger/internal/database"
)

const recordColumns = `id, quarter, state, driver_id, weekly_number, total_miles, tax_paid_gallon,
	taxable_gallon, net_taxable_gallon, tax, fuel_tax_rate_id, invoice_number, created_at`

// uniqueViolation is the PostgreSQL error code for a unique constraint hit
const uniqueViolation = "23505"

// Repository handles fuel tax rate and IFTA record persistence
type Repository struct {
	db database.DBTX
}

// NewRepository creates a new IFTA repository
func NewRepository(db database.DBTX) *Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	r := &Record{}
	err := row.Scan(
		&r.ID,
		&r.Quarter,
		&r.State,
		&r.DriverID,
		&r.WeeklyNumber,
		&r.TotalMiles,
		&r.TaxPaidGallon,
		&r.TaxableGallon,
		&r.NetTaxableGallon,
		&r.Tax,
		&r.FuelTaxRateID,
		&r.InvoiceNumber,
		&r.CreatedAt,
	)
	return r, err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// UpsertRate inserts or replaces the rate for (quarter, state)
func (r *Repository) UpsertRate(ctx context.Context, quarter Quarter, state string, rate decimal.Decimal, mpg decimal.NullDecimal) (*FuelTaxRate, error) {
	f := &FuelTaxRate{}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO fuel_tax_rates (quarter, state, rate, mpg)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (quarter, state) DO UPDATE SET rate = EXCLUDED.rate, mpg = EXCLUDED.mpg
		RETURNING id, quarter, state, rate, mpg
	`, quarter, state, rate, mpg).Scan(&f.ID, &f.Quarter, &f.State, &f.Rate, &f.MPG)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert fuel tax rate: %w", err)
	}
	return f, nil
}

// RateFor returns the rate for (quarter, state), or nil when none exists
func (r *Repository) RateFor(ctx context.Context, quarter Quarter, state string) (*FuelTaxRate, error) {
	f := &FuelTaxRate{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, quarter, state, rate, mpg
		FROM fuel_tax_rates
		WHERE quarter = $1 AND state = $2
	`, quarter, state).Scan(&f.ID, &f.Quarter, &f.State, &f.Rate, &f.MPG)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fuel tax rate: %w", err)
	}
	return f, nil
}

// ListRates returns every rate of a quarter, ordered by state
func (r *Repository) ListRates(ctx context.Context, quarter Quarter) ([]*FuelTaxRate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, quarter, state, rate, mpg
		FROM fuel_tax_rates
		WHERE quarter = $1
		ORDER BY state
	`, quarter)
	if err != nil {
		return nil, fmt.Errorf("failed to list fuel tax rates: %w", err)
	}
	defer rows.Close()

	var rates []*FuelTaxRate
	for rows.Next() {
		f := &FuelTaxRate{}
		if err := rows.Scan(&f.ID, &f.Quarter, &f.State, &f.Rate, &f.MPG); err != nil {
			return nil, fmt.Errorf("failed to scan fuel tax rate: %w", err)
		}
		rates = append(rates, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fuel tax rates: %w", err)
	}
	return rates, nil
}

// CreateRecord inserts a fully computed record and fills in its id
func (r *Repository) CreateRecord(ctx context.Context, rec *Record) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO ifta_records (quarter, state, driver_id, weekly_number, total_miles, tax_paid_gallon,
		                          taxable_gallon, net_taxable_gallon, tax, fuel_tax_rate_id, invoice_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`, rec.Quarter, rec.State, rec.DriverID, rec.WeeklyNumber, rec.TotalMiles, rec.TaxPaidGallon,
		rec.TaxableGallon, rec.NetTaxableGallon, rec.Tax, rec.FuelTaxRateID, rec.InvoiceNumber,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s %s week %d", ErrDuplicateRecord, rec.Quarter, rec.State, rec.WeeklyNumber)
		}
		return fmt.Errorf("failed to create ifta record: %w", err)
	}
	return nil
}

// UpdateRecord writes a recomputed record back
func (r *Repository) UpdateRecord(ctx context.Context, rec *Record) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE ifta_records
		SET total_miles = $2, tax_paid_gallon = $3, taxable_gallon = $4, net_taxable_gallon = $5,
		    tax = $6, fuel_tax_rate_id = $7, invoice_number = $8
		WHERE id = $1
	`, rec.ID, rec.TotalMiles, rec.TaxPaidGallon, rec.TaxableGallon, rec.NetTaxableGallon,
		rec.Tax, rec.FuelTaxRateID, rec.InvoiceNumber)
	if err != nil {
		return fmt.Errorf("failed to update ifta record: %w", err)
	}
	return nil
}

// GetRecord retrieves a record by ID
func (r *Repository) GetRecord(ctx context.Context, id int64) (*Record, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM ifta_records WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ifta record: %w", err)
	}
	return rec, nil
}

// ListRecords returns records matching the filter with a total count
func (r *Repository) ListRecords(ctx context.Context, f RecordFilter, limit, offset int) ([]*Record, int, error) {
	var (
		conds []string
		args  []any
	)
	if f.DriverID != nil {
		args = append(args, *f.DriverID)
		conds = append(conds, fmt.Sprintf("driver_id = $%d", len(args)))
	}
	if f.Quarter != nil {
		args = append(args, *f.Quarter)
		conds = append(conds, fmt.Sprintf("quarter = $%d", len(args)))
	}
	if f.WeeklyNumber != nil {
		args = append(args, *f.WeeklyNumber)
		conds = append(conds, fmt.Sprintf("weekly_number = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ifta_records`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count ifta records: %w", err)
	}

	args = append(args, limit, offset)
	records, err := r.query(ctx, fmt.Sprintf(`SELECT %s FROM ifta_records%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		recordColumns, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// ForWeek returns a driver's records for a week, optionally within one
// quarter
func (r *Repository) ForWeek(ctx context.Context, driverID int64, weeklyNumber int, quarter *Quarter) ([]*Record, error) {
	return r.query(ctx, `
		SELECT `+recordColumns+`
		FROM ifta_records
		WHERE driver_id = $1 AND weekly_number = $2
		  AND ($3::text IS NULL OR quarter = $3)
		ORDER BY id
	`, driverID, weeklyNumber, quarter)
}

// Stamp writes the invoice tag onto records
func (r *Repository) Stamp(ctx context.Context, ids []int64, invoiceNumber *string) error {
	if len(ids) == 0 || invoiceNumber == nil {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `UPDATE ifta_records SET invoice_number = $2 WHERE id = ANY($1)`, pq.Array(ids), invoiceNumber)
	if err != nil {
		return fmt.Errorf("failed to stamp ifta records: %w", err)
	}
	return nil
}

// Summary totals a driver's records in a quarter per state
func (r *Repository) Summary(ctx context.Context, driverID int64, quarter Quarter) ([]*StateSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT state,
		       SUM(total_miles),
		       COALESCE(SUM(tax_paid_gallon), 0),
		       SUM(taxable_gallon),
		       SUM(net_taxable_gallon),
		       SUM(tax)
		FROM ifta_records
		WHERE driver_id = $1 AND quarter = $2
		GROUP BY state
		ORDER BY state
	`, driverID, quarter)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize ifta records: %w", err)
	}
	defer rows.Close()

	var states []*StateSummary
	for rows.Next() {
		s := &StateSummary{}
		if err := rows.Scan(&s.State, &s.TotalMiles, &s.TaxPaidGallon, &s.TaxableGallon, &s.NetTaxableGallon, &s.Tax); err != nil {
			return nil, fmt.Errorf("failed to scan ifta summary: %w", err)
		}
		states = append(states, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ifta summary: %w", err)
	}
	return states, nil
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]*Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ifta records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ifta record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ifta records: %w", err)
	}
	return records, nil
}
