package company

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fkhayef/haulledger/internal/database"
)

const companyColumns = `id, company_name, phone, fax, address, state, city, zip, logo_url`

// Repository handles company persistence
type Repository struct {
	db database.DBTX
}

// NewRepository creates a new company repository
func NewRepository(db database.DBTX) *Repository {
	return &Repository{db: db}
}

func scanCompany(row *sql.Row) (*Company, error) {
	c := &Company{}
	err := row.Scan(&c.ID, &c.CompanyName, &c.Phone, &c.Fax, &c.Address, &c.State, &c.City, &c.Zip, &c.LogoURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// First returns the lowest-id company, or nil when none exists
func (r *Repository) First(ctx context.Context) (*Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY id LIMIT 1`

	c, err := scanCompany(r.db.QueryRowContext(ctx, query))
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

// Create inserts a company profile
func (r *Repository) Create(ctx context.Context, req *UpsertCompanyRequest) (*Company, error) {
	query := `
		INSERT INTO companies (company_name, phone, fax, address, state, city, zip, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + companyColumns

	c, err := scanCompany(r.db.QueryRowContext(ctx, query,
		req.CompanyName, req.Phone, req.Fax, req.Address, req.State, req.City, req.Zip, req.LogoURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return c, nil
}

// Update replaces every field of the company with the given id
func (r *Repository) Update(ctx context.Context, id int64, req *UpsertCompanyRequest) (*Company, error) {
	query := `
		UPDATE companies
		SET company_name = $2, phone = $3, fax = $4, address = $5,
		    state = $6, city = $7, zip = $8, logo_url = $9
		WHERE id = $1
		RETURNING ` + companyColumns

	c, err := scanCompany(r.db.QueryRowContext(ctx, query,
		id, req.CompanyName, req.Phone, req.Fax, req.Address, req.State, req.City, req.Zip, req.LogoURL))
	if err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return c, nil
}
