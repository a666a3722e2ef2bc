package settlement

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/haulledger/internal/audit"
	"github.com/fkhayef/haulledger/internal/company"
	"github.com/fkhayef/haulledger/internal/database"
	"github.com/fkhayef/haulledger/internal/driver"
	"github.com/fkhayef/haulledger/internal/expense"
	"github.com/fkhayef/haulledger/internal/ifta"
	"github.com/fkhayef/haulledger/internal/load"
	"github.com/fkhayef/haulledger/internal/period"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// Store is the data a settlement run reads and writes. InTx hands fn a
// Store bound to one transaction; everything fn does commits or rolls back
// together.
type Store interface {
	InTx(ctx context.Context, fn func(Store) error) error

	GetDriver(ctx context.Context, id int64) (*driver.Driver, error)
	LockDriver(ctx context.Context, id int64) (*driver.Driver, error)
	LatestPayRate(ctx context.Context, driverID int64) (*driver.PayRate, error)
	Company(ctx context.Context) (*company.Company, error)

	LoadsForPeriod(ctx context.Context, driverID int64, p period.Period, paidOnly bool) ([]*load.Load, error)
	LoadsByIDs(ctx context.Context, driverID int64, ids []int64) ([]*load.Load, error)
	ExpensesForPeriod(ctx context.Context, driverID int64, p period.Period) ([]*expense.Expense, error)
	IftaForWeek(ctx context.Context, driverID int64, week int, quarter *ifta.Quarter) ([]*ifta.Record, error)

	CreateSettlement(ctx context.Context, s *Settlement) error
	PostEscrow(ctx context.Context, driverID, settlementID int64, amount decimal.Decimal) ([]*driver.LedgerEntry, error)
	StampLoads(ctx context.Context, ids []int64, invoiceNumber *string, weeklyNumber *int) error
	StampExpenses(ctx context.Context, ids []int64, invoiceNumber *string, weeklyNumber *int) error
	StampIfta(ctx context.Context, ids []int64, invoiceNumber *string) error
	RecordAudit(ctx context.Context, e *audit.Entry) error

	GetSettlement(ctx context.Context, id int64) (*Settlement, error)
	ListSettlements(ctx context.Context, driverID int64, limit, offset int) ([]*Settlement, int, error)
}

var _ Store = (*SQLStore)(nil)

// SQLStore is the PostgreSQL Store, composed from the feature repositories
type SQLStore struct {
	db          *sql.DB
	drivers     *driver.Repository
	loads       *load.Repository
	expenses    *expense.Repository
	ifta        *ifta.Repository
	companies   *company.Repository
	audit       *audit.Repository
	settlements *Repository
}

// NewSQLStore creates a store on db
func NewSQLStore(db *sql.DB) *SQLStore {
	return newSQLStore(db, db)
}

func newSQLStore(db *sql.DB, q database.DBTX) *SQLStore {
	return &SQLStore{
		db:          db,
		drivers:     driver.NewRepository(q),
		loads:       load.NewRepository(q),
		expenses:    expense.NewRepository(q),
		ifta:        ifta.NewRepository(q),
		companies:   company.NewRepository(q),
		audit:       audit.NewRepository(q),
		settlements: NewRepository(q),
	}
}

// InTx runs fn on a store bound to a new transaction
func (s *SQLStore) InTx(ctx context.Context, fn func(Store) error) error {
	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return fn(newSQLStore(s.db, tx))
	})
}

func (s *SQLStore) GetDriver(ctx context.Context, id int64) (*driver.Driver, error) {
	return s.drivers.GetByID(ctx, id)
}

func (s *SQLStore) LockDriver(ctx context.Context, id int64) (*driver.Driver, error) {
	return s.drivers.GetByIDForUpdate(ctx, id)
}

func (s *SQLStore) LatestPayRate(ctx context.Context, driverID int64) (*driver.PayRate, error) {
	return s.drivers.LatestPayRate(ctx, driverID)
}

func (s *SQLStore) Company(ctx context.Context) (*company.Company, error) {
	return s.companies.First(ctx)
}

func (s *SQLStore) LoadsForPeriod(ctx context.Context, driverID int64, p period.Period, paidOnly bool) ([]*load.Load, error) {
	return s.loads.ForPeriod(ctx, driverID, p.From, p.To, paidOnly)
}

func (s *SQLStore) LoadsByIDs(ctx context.Context, driverID int64, ids []int64) ([]*load.Load, error) {
	return s.loads.ByIDs(ctx, driverID, ids)
}

func (s *SQLStore) ExpensesForPeriod(ctx context.Context, driverID int64, p period.Period) ([]*expense.Expense, error) {
	return s.expenses.ForPeriod(ctx, driverID, p.From, p.To)
}

func (s *SQLStore) IftaForWeek(ctx context.Context, driverID int64, week int, quarter *ifta.Quarter) ([]*ifta.Record, error) {
	return s.ifta.ForWeek(ctx, driverID, week, quarter)
}

func (s *SQLStore) CreateSettlement(ctx context.Context, st *Settlement) error {
	return s.settlements.Create(ctx, st)
}

func (s *SQLStore) PostEscrow(ctx context.Context, driverID, settlementID int64, amount decimal.Decimal) ([]*driver.LedgerEntry, error) {
	return s.drivers.PostEscrow(ctx, driverID, settlementID, amount)
}

func (s *SQLStore) StampLoads(ctx context.Context, ids []int64, invoiceNumber *string, weeklyNumber *int) error {
	return s.loads.Stamp(ctx, ids, invoiceNumber, weeklyNumber)
}

func (s *SQLStore) StampExpenses(ctx context.Context, ids []int64, invoiceNumber *string, weeklyNumber *int) error {
	return s.expenses.Stamp(ctx, ids, invoiceNumber, weeklyNumber)
}

func (s *SQLStore) StampIfta(ctx context.Context, ids []int64, invoiceNumber *string) error {
	return s.ifta.Stamp(ctx, ids, invoiceNumber)
}

func (s *SQLStore) RecordAudit(ctx context.Context, e *audit.Entry) error {
	return s.audit.Record(ctx, e)
}

func (s *SQLStore) GetSettlement(ctx context.Context, id int64) (*Settlement, error) {
	return s.settlements.GetByID(ctx, id)
}

func (s *SQLStore) ListSettlements(ctx context.Context, driverID int64, limit, offset int) ([]*Settlement, int, error) {
	return s.settlements.ListByDriver(ctx, driverID, limit, offset)
}
