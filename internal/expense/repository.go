package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/fkhayef/haulledger/internal/database"
)

const expenseColumns = `id, driver_id, transaction_type, description, amount, expense_date,
	invoice_number, weekly_number, created_at`

// Repository handles driver expense persistence
type Repository struct {
	db database.DBTX
}

// NewRepository creates a new expense repository
func NewRepository(db database.DBTX) *Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (*Expense, error) {
	e := &Expense{}
	err := row.Scan(
		&e.ID,
		&e.DriverID,
		&e.TransactionType,
		&e.Description,
		&e.Amount,
		&e.ExpenseDate,
		&e.InvoiceNumber,
		&e.WeeklyNumber,
		&e.CreatedAt,
	)
	return e, err
}

// Create inserts a new expense
func (r *Repository) Create(ctx context.Context, req *CreateExpenseRequest, date time.Time) (*Expense, error) {
	query := `
		INSERT INTO driver_expenses (driver_id, transaction_type, description, amount, expense_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + expenseColumns

	e, err := scanExpense(r.db.QueryRowContext(ctx, query,
		req.DriverID, req.TransactionType, req.Description, req.Amount, date))
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return e, nil
}

// GetByID retrieves an expense
func (r *Repository) GetByID(ctx context.Context, id int64) (*Expense, error) {
	e, err := scanExpense(r.db.QueryRowContext(ctx, `SELECT `+expenseColumns+` FROM driver_expenses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return e, nil
}

// ListByDriver retrieves a driver's expenses, newest first
func (r *Repository) ListByDriver(ctx context.Context, driverID int64, limit, offset int) ([]*Expense, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM driver_expenses WHERE driver_id = $1`, driverID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	expenses, err := r.query(ctx, `
		SELECT `+expenseColumns+`
		FROM driver_expenses
		WHERE driver_id = $1
		ORDER BY expense_date DESC, id DESC
		LIMIT $2 OFFSET $3
	`, driverID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

// ForPeriod returns the driver's expenses dated within [from, to]
func (r *Repository) ForPeriod(ctx context.Context, driverID int64, from, to time.Time) ([]*Expense, error) {
	return r.query(ctx, `
		SELECT `+expenseColumns+`
		FROM driver_expenses
		WHERE driver_id = $1 AND expense_date BETWEEN $2::date AND $3::date
		ORDER BY expense_date, id
	`, driverID, from, to)
}

// Stamp writes the invoice and week tags onto expenses
func (r *Repository) Stamp(ctx context.Context, ids []int64, invoiceNumber *string, weeklyNumber *int) error {
	if len(ids) == 0 || (invoiceNumber == nil && weeklyNumber == nil) {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
		UPDATE driver_expenses
		SET invoice_number = COALESCE($2, invoice_number),
		    weekly_number = COALESCE($3, weekly_number)
		WHERE id = ANY($1)
	`, pq.Array(ids), invoiceNumber, weeklyNumber)
	if err != nil {
		return fmt.Errorf("failed to stamp expenses: %w", err)
	}
	return nil
}

// Delete removes an expense
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM driver_expenses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}
	return n > 0, nil
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]*Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}
