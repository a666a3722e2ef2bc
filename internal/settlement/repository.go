package settlement

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fkhayef/haulledger/internal/database"
)

const settlementColumns = `id, reference, driver_id, pay_rate_id, pay_from, pay_to, amount, notes,
	invoice_number, weekly_number, total_miles, miles_rate, company_driver_pay, created_at`

// Repository handles settlement persistence
type Repository struct {
	db database.DBTX
}

// NewRepository creates a new settlement repository
func NewRepository(db database.DBTX) *Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSettlement(row scanner, extra ...any) (*Settlement, error) {
	s := &Settlement{}
	dest := []any{
		&s.ID,
		&s.Reference,
		&s.DriverID,
		&s.PayRateID,
		&s.PayFrom,
		&s.PayTo,
		&s.Amount,
		&s.Notes,
		&s.InvoiceNumber,
		&s.WeeklyNumber,
		&s.TotalMiles,
		&s.MilesRate,
		&s.CompanyDriverPay,
		&s.CreatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return s, err
}

// Create inserts a settlement with its breakdown and fills in id and
// created_at
func (r *Repository) Create(ctx context.Context, s *Settlement) error {
	breakdown, err := json.Marshal(s.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to encode settlement breakdown: %w", err)
	}

	var companyData *string
	if s.Breakdown != nil && s.Breakdown.CompanyDriverData != nil {
		raw, err := json.Marshal(s.Breakdown.CompanyDriverData)
		if err != nil {
			return fmt.Errorf("failed to encode company driver data: %w", err)
		}
		text := string(raw)
		companyData = &text
	}

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO driver_pays (reference, driver_id, pay_rate_id, pay_from, pay_to, amount, notes,
		                         invoice_number, weekly_number, breakdown, total_miles, miles_rate,
		                         company_driver_pay, company_driver_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at
	`, s.Reference, s.DriverID, s.PayRateID, s.PayFrom, s.PayTo, s.Amount, s.Notes,
		s.InvoiceNumber, s.WeeklyNumber, string(breakdown), s.TotalMiles, s.MilesRate,
		s.CompanyDriverPay, companyData,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create settlement: %w", err)
	}
	return nil
}

// GetByID retrieves a settlement with its breakdown
func (r *Repository) GetByID(ctx context.Context, id int64) (*Settlement, error) {
	var breakdown []byte
	s, err := scanSettlement(r.db.QueryRowContext(ctx, `
		SELECT `+settlementColumns+`, breakdown
		FROM driver_pays
		WHERE id = $1
	`, id), &breakdown)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}

	s.Breakdown = &Result{}
	if err := json.Unmarshal(breakdown, s.Breakdown); err != nil {
		return nil, fmt.Errorf("failed to decode settlement breakdown: %w", err)
	}
	return s, nil
}

// ListByDriver retrieves a driver's settlements without breakdowns, newest
// first
func (r *Repository) ListByDriver(ctx context.Context, driverID int64, limit, offset int) ([]*Settlement, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM driver_pays WHERE driver_id = $1`, driverID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count settlements: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+settlementColumns+`
		FROM driver_pays
		WHERE driver_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`, driverID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*Settlement
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, total, nil
}
