package load

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/fkhayef/haulledger/internal/database"
)

const loadColumns = `l.id, l.load_id, l.driver_id, l.load_pay, l.mile, l.total_miles,
	l.invoice_status, l.invoice_number, l.weekly_number, l.note, l.created_at`

// Repository handles load, stop and other-pay persistence
type Repository struct {
	db database.DBTX
}

// NewRepository creates a new load repository
func NewRepository(db database.DBTX) *Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLoad(row scanner) (*Load, error) {
	l := &Load{}
	err := row.Scan(
		&l.ID,
		&l.LoadID,
		&l.DriverID,
		&l.LoadPay,
		&l.Mile,
		&l.TotalMiles,
		&l.InvoiceStatus,
		&l.InvoiceNumber,
		&l.WeeklyNumber,
		&l.Note,
		&l.CreatedAt,
	)
	return l, err
}

// Create inserts a load with its stops and other-pay items. Callers wanting
// atomicity pass a transaction as the repository's DBTX.
func (r *Repository) Create(ctx context.Context, req *CreateLoadRequest) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO loads (load_id, driver_id, load_pay, mile, total_miles, invoice_status, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, req.LoadID, req.DriverID, req.LoadPay, req.Mile, req.TotalMiles, req.InvoiceStatus, req.Note).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create load: %w", err)
	}

	for i := range req.Stops {
		if _, err := r.AddStop(ctx, id, &req.Stops[i]); err != nil {
			return 0, err
		}
	}
	for i := range req.OtherPays {
		if _, err := r.AddOtherPay(ctx, id, &req.OtherPays[i]); err != nil {
			return 0, err
		}
	}

	return id, nil
}

// AddStop inserts a stop for a load
func (r *Repository) AddStop(ctx context.Context, loadID int64, req *CreateStopRequest) (*Stop, error) {
	s := &Stop{}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO stops (load_id, stop_name, appointment_date, address1, city, state, zip_code, company_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, load_id, stop_name, appointment_date, address1, city, state, zip_code, company_name
	`, loadID, req.StopName, req.AppointmentDate, req.Address1, req.City, req.State, req.ZipCode, req.CompanyName).Scan(
		&s.ID, &s.LoadID, &s.StopName, &s.AppointmentDate, &s.Address1, &s.City, &s.State, &s.ZipCode, &s.CompanyName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add stop: %w", err)
	}
	return s, nil
}

// AddOtherPay inserts an other-pay item for a load
func (r *Repository) AddOtherPay(ctx context.Context, loadID int64, req *CreateOtherPayRequest) (*OtherPay, error) {
	p := &OtherPay{}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO other_pays (load_id, pay_type, amount, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, load_id, pay_type, amount, note
	`, loadID, req.PayType, req.Amount, req.Note).Scan(&p.ID, &p.LoadID, &p.PayType, &p.Amount, &p.Note)
	if err != nil {
		return nil, fmt.Errorf("failed to add other pay: %w", err)
	}
	return p, nil
}

// GetByID retrieves a load with its stops and other-pay items
func (r *Repository) GetByID(ctx context.Context, id int64) (*Load, error) {
	l, err := scanLoad(r.db.QueryRowContext(ctx, `SELECT `+loadColumns+` FROM loads l WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get load: %w", err)
	}

	if err := r.attachChildren(ctx, []*Load{l}); err != nil {
		return nil, err
	}
	return l, nil
}

// ListByDriver retrieves a driver's loads, newest first
func (r *Repository) ListByDriver(ctx context.Context, driverID int64, limit, offset int) ([]*Load, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM loads WHERE driver_id = $1`, driverID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count loads: %w", err)
	}

	loads, err := r.query(ctx, `
		SELECT `+loadColumns+`
		FROM loads l
		WHERE l.driver_id = $1
		ORDER BY l.id DESC
		LIMIT $2 OFFSET $3
	`, driverID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return loads, total, nil
}

// ForPeriod returns the driver's loads whose derived pickup and delivery
// dates both exist and overlap [from, to]. With paidOnly set, only loads
// whose invoice status is Paid are returned. Load.InPeriod is the in-memory
// form of the same predicate.
func (r *Repository) ForPeriod(ctx context.Context, driverID int64, from, to time.Time, paidOnly bool) ([]*Load, error) {
	query := `
		WITH spans AS (
			SELECT s.load_id,
			       MIN(s.appointment_date) FILTER (WHERE s.stop_name = 'PICKUP')   AS pickup_at,
			       MAX(s.appointment_date) FILTER (WHERE s.stop_name = 'DELIVERY') AS delivery_at
			FROM stops s
			JOIN loads l ON l.id = s.load_id
			WHERE l.driver_id = $1
			GROUP BY s.load_id
		)
		SELECT ` + loadColumns + `
		FROM loads l
		JOIN spans sp ON sp.load_id = l.id
		WHERE l.driver_id = $1
		  AND sp.pickup_at IS NOT NULL
		  AND sp.delivery_at IS NOT NULL
		  AND (
		        sp.pickup_at::date BETWEEN $2::date AND $3::date
		     OR sp.delivery_at::date BETWEEN $2::date AND $3::date
		     OR (sp.pickup_at::date <= $2::date AND sp.delivery_at::date >= $3::date)
		  )
		  AND ($4::boolean = FALSE OR l.invoice_status = 'Paid')
		ORDER BY l.id
	`
	return r.query(ctx, query, driverID, from, to, paidOnly)
}

// ByIDs returns the driver's loads among ids. Ids of other drivers' loads
// are silently dropped.
func (r *Repository) ByIDs(ctx context.Context, driverID int64, ids []int64) ([]*Load, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.query(ctx, `
		SELECT `+loadColumns+`
		FROM loads l
		WHERE l.driver_id = $1 AND l.id = ANY($2)
		ORDER BY l.id
	`, driverID, pq.Array(ids))
}

// Stamp writes the invoice and week tags onto loads. Nil tags leave the
// column unchanged.
func (r *Repository) Stamp(ctx context.Context, ids []int64, invoiceNumber *string, weeklyNumber *int) error {
	if len(ids) == 0 || (invoiceNumber == nil && weeklyNumber == nil) {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
		UPDATE loads
		SET invoice_number = COALESCE($2, invoice_number),
		    weekly_number = COALESCE($3, weekly_number)
		WHERE id = ANY($1)
	`, pq.Array(ids), invoiceNumber, weeklyNumber)
	if err != nil {
		return fmt.Errorf("failed to stamp loads: %w", err)
	}
	return nil
}

// UpdateInvoiceStatus sets a load's invoice status
func (r *Repository) UpdateInvoiceStatus(ctx context.Context, id int64, status InvoiceStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE loads SET invoice_status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return false, fmt.Errorf("failed to update invoice status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update invoice status: %w", err)
	}
	return n > 0, nil
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]*Load, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query loads: %w", err)
	}
	defer rows.Close()

	var loads []*Load
	for rows.Next() {
		l, err := scanLoad(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan load: %w", err)
		}
		loads = append(loads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate loads: %w", err)
	}

	if err := r.attachChildren(ctx, loads); err != nil {
		return nil, err
	}
	return loads, nil
}

// attachChildren loads stops and other-pay items for every load in two queries
func (r *Repository) attachChildren(ctx context.Context, loads []*Load) error {
	if len(loads) == 0 {
		return nil
	}

	byID := make(map[int64]*Load, len(loads))
	ids := make([]int64, len(loads))
	for i, l := range loads {
		ids[i] = l.ID
		byID[l.ID] = l
		l.Stops = []*Stop{}
		l.OtherPays = []*OtherPay{}
	}

	stopRows, err := r.db.QueryContext(ctx, `
		SELECT id, load_id, stop_name, appointment_date, address1, city, state, zip_code, company_name
		FROM stops
		WHERE load_id = ANY($1)
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to query stops: %w", err)
	}
	defer stopRows.Close()

	for stopRows.Next() {
		s := &Stop{}
		if err := stopRows.Scan(&s.ID, &s.LoadID, &s.StopName, &s.AppointmentDate, &s.Address1, &s.City, &s.State, &s.ZipCode, &s.CompanyName); err != nil {
			return fmt.Errorf("failed to scan stop: %w", err)
		}
		byID[s.LoadID].Stops = append(byID[s.LoadID].Stops, s)
	}
	if err := stopRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate stops: %w", err)
	}

	payRows, err := r.db.QueryContext(ctx, `
		SELECT id, load_id, pay_type, amount, note
		FROM other_pays
		WHERE load_id = ANY($1)
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to query other pays: %w", err)
	}
	defer payRows.Close()

	for payRows.Next() {
		p := &OtherPay{}
		if err := payRows.Scan(&p.ID, &p.LoadID, &p.PayType, &p.Amount, &p.Note); err != nil {
			return fmt.Errorf("failed to scan other pay: %w", err)
		}
		byID[p.LoadID].OtherPays = append(byID[p.LoadID].OtherPays, p)
	}
	if err := payRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate other pays: %w", err)
	}

	return nil
}
