package ifta

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/haulledger/internal/database"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_record_store.go -package=mocks

// RecordStore persists the rate table and IFTA records. InTx hands fn a
// RecordStore bound to one transaction.
type RecordStore interface {
	InTx(ctx context.Context, fn func(RecordStore) error) error

	UpsertRate(ctx context.Context, quarter Quarter, state string, rate decimal.Decimal, mpg decimal.NullDecimal) (*FuelTaxRate, error)
	ListRates(ctx context.Context, quarter Quarter) ([]*FuelTaxRate, error)

	CreateRecord(ctx context.Context, rec *Record) error
	UpdateRecord(ctx context.Context, rec *Record) error
	GetRecord(ctx context.Context, id int64) (*Record, error)
	ListRecords(ctx context.Context, f RecordFilter, limit, offset int) ([]*Record, int, error)
	Summary(ctx context.Context, driverID int64, quarter Quarter) ([]*StateSummary, error)
}

var _ RecordStore = (*SQLStore)(nil)

// SQLStore is the PostgreSQL RecordStore
type SQLStore struct {
	*Repository
	db *sql.DB
}

// NewSQLStore creates a store on db
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{Repository: NewRepository(db), db: db}
}

// InTx runs fn on a store bound to a new transaction
func (s *SQLStore) InTx(ctx context.Context, fn func(RecordStore) error) error {
	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return fn(&SQLStore{Repository: NewRepository(tx), db: s.db})
	})
}
