package driver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/haulledger/internal/database"
)

const driverSelect = `
	SELECT d.id, d.user_id, d.driver_type, d.driver_status, d.escrow_deposit, d.cost, d.created_at,
	       u.first_name, u.last_name, u.telephone, u.address, u.company_name
	FROM drivers d
	LEFT JOIN users u ON u.id = d.user_id
`

const payRateColumns = `id, driver_id, pay_type, currency, standart, additional_charges, created_at`

// Repository handles driver, pay rate and ledger persistence
type Repository struct {
	db database.DBTX
}

// NewRepository creates a new driver repository
func NewRepository(db database.DBTX) *Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDriver(row scanner) (*Driver, error) {
	d := &Driver{}
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.DriverType,
		&d.DriverStatus,
		&d.EscrowDeposit,
		&d.Cost,
		&d.CreatedAt,
		&d.FirstName,
		&d.LastName,
		&d.Telephone,
		&d.Address,
		&d.CompanyName,
	)
	return d, err
}

func scanPayRate(row scanner) (*PayRate, error) {
	p := &PayRate{}
	err := row.Scan(&p.ID, &p.DriverID, &p.PayType, &p.Currency, &p.Standart, &p.AdditionalCharges, &p.CreatedAt)
	return p, err
}

// Create inserts a new driver
func (r *Repository) Create(ctx context.Context, req *CreateDriverRequest) (int64, error) {
	var escrow decimal.NullDecimal
	if req.EscrowDeposit != nil {
		escrow = decimal.NewNullDecimal(*req.EscrowDeposit)
	}

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO drivers (user_id, driver_type, driver_status, escrow_deposit)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, req.UserID, req.DriverType, req.DriverStatus, escrow).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create driver: %w", err)
	}
	return id, nil
}

// GetByID retrieves a driver with its user details
func (r *Repository) GetByID(ctx context.Context, id int64) (*Driver, error) {
	d, err := scanDriver(r.db.QueryRowContext(ctx, driverSelect+` WHERE d.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return d, nil
}

// GetByIDForUpdate retrieves a driver and locks its row until the
// surrounding transaction ends
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*Driver, error) {
	d, err := scanDriver(r.db.QueryRowContext(ctx, driverSelect+` WHERE d.id = $1 FOR UPDATE OF d`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock driver: %w", err)
	}
	return d, nil
}

// List retrieves drivers with pagination
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Driver, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drivers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count drivers: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, driverSelect+` ORDER BY d.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []*Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate drivers: %w", err)
	}

	return drivers, total, nil
}

// CreatePayRate inserts a pay rate for a driver
func (r *Repository) CreatePayRate(ctx context.Context, driverID int64, req *CreatePayRateRequest) (*PayRate, error) {
	var standart, additional decimal.NullDecimal
	if req.Standart != nil {
		standart = decimal.NewNullDecimal(*req.Standart)
	}
	if req.AdditionalCharges != nil {
		additional = decimal.NewNullDecimal(*req.AdditionalCharges)
	}

	query := `
		INSERT INTO pay_rates (driver_id, pay_type, currency, standart, additional_charges)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + payRateColumns

	p, err := scanPayRate(r.db.QueryRowContext(ctx, query, driverID, req.PayType, req.Currency, standart, additional))
	if err != nil {
		return nil, fmt.Errorf("failed to create pay rate: %w", err)
	}
	return p, nil
}

// LatestPayRate returns the most recently created pay rate for a driver
func (r *Repository) LatestPayRate(ctx context.Context, driverID int64) (*PayRate, error) {
	query := `SELECT ` + payRateColumns + ` FROM pay_rates WHERE driver_id = $1 ORDER BY id DESC LIMIT 1`

	p, err := scanPayRate(r.db.QueryRowContext(ctx, query, driverID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest pay rate: %w", err)
	}
	return p, nil
}

// ListPayRates returns every pay rate of a driver, newest first
func (r *Repository) ListPayRates(ctx context.Context, driverID int64) ([]*PayRate, error) {
	query := `SELECT ` + payRateColumns + ` FROM pay_rates WHERE driver_id = $1 ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay rates: %w", err)
	}
	defer rows.Close()

	var rates []*PayRate
	for rows.Next() {
		p, err := scanPayRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay rate: %w", err)
		}
		rates = append(rates, p)
	}
	return rates, rows.Err()
}

// AddLedgerEntry appends a posting
func (r *Repository) AddLedgerEntry(ctx context.Context, e *LedgerEntry) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO driver_ledger_entries (driver_id, settlement_id, kind, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, e.DriverID, e.SettlementID, e.Kind, e.Amount).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add ledger entry: %w", err)
	}
	return nil
}

// AddToBalance increments the driver's running escrow balance
func (r *Repository) AddToBalance(ctx context.Context, driverID int64, amount decimal.Decimal) error {
	res, err := r.db.ExecContext(ctx, `UPDATE drivers SET cost = cost + $2 WHERE id = $1`, driverID, amount)
	if err != nil {
		return fmt.Errorf("failed to update driver balance: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("failed to update driver balance: driver %d does not exist", driverID)
	}
	return nil
}

// ListLedger returns a driver's postings, newest first
func (r *Repository) ListLedger(ctx context.Context, driverID int64, limit, offset int) ([]*LedgerEntry, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM driver_ledger_entries WHERE driver_id = $1`, driverID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, driver_id, settlement_id, kind, amount, created_at
		FROM driver_ledger_entries
		WHERE driver_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`, driverID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*LedgerEntry
	for rows.Next() {
		e := &LedgerEntry{}
		if err := rows.Scan(&e.ID, &e.DriverID, &e.SettlementID, &e.Kind, &e.Amount, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}

	return entries, total, nil
}
