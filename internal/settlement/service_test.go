package settlement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fkhayef/haulledger/internal/audit"
	"github.com/fkhayef/haulledger/internal/company"
	"github.com/fkhayef/haulledger/internal/driver"
	"github.com/fkhayef/haulledger/internal/expense"
	"github.com/fkhayef/haulledger/internal/ifta"
	"github.com/fkhayef/haulledger/internal/load"
	"github.com/fkhayef/haulledger/internal/period"
	"github.com/fkhayef/haulledger/internal/settlement"
	"github.com/fkhayef/haulledger/internal/settlement/mocks"
	"github.com/fkhayef/haulledger/pkg/apperr"
	"github.com/fkhayef/haulledger/pkg/money"
)

// memStore is an in-memory Store. InTx runs fn directly against it.
type memStore struct {
	drivers     map[int64]*driver.Driver
	rates       map[int64]*driver.PayRate
	company     *company.Company
	loads       []*load.Load
	expenses    []*expense.Expense
	ifta        []*ifta.Record
	settlements []*settlement.Settlement
	ledger      []*driver.LedgerEntry
	audit       []*audit.Entry
}

func newMemStore() *memStore {
	return &memStore{
		drivers: map[int64]*driver.Driver{7: ownerOperator(7)},
		rates:   map[int64]*driver.PayRate{7: payRate("12")},
	}
}

func (m *memStore) InTx(_ context.Context, fn func(settlement.Store) error) error {
	return fn(m)
}

func (m *memStore) GetDriver(_ context.Context, id int64) (*driver.Driver, error) {
	return m.drivers[id], nil
}

func (m *memStore) LockDriver(ctx context.Context, id int64) (*driver.Driver, error) {
	return m.GetDriver(ctx, id)
}

func (m *memStore) LatestPayRate(_ context.Context, driverID int64) (*driver.PayRate, error) {
	return m.rates[driverID], nil
}

func (m *memStore) Company(context.Context) (*company.Company, error) {
	return m.company, nil
}

func (m *memStore) LoadsForPeriod(_ context.Context, driverID int64, p period.Period, paidOnly bool) ([]*load.Load, error) {
	var out []*load.Load
	for _, l := range m.loads {
		if l.DriverID != driverID || !l.InPeriod(p) {
			continue
		}
		if paidOnly && l.InvoiceStatus != load.InvoiceStatusPaid {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *memStore) LoadsByIDs(_ context.Context, driverID int64, ids []int64) ([]*load.Load, error) {
	var out []*load.Load
	for _, l := range m.loads {
		for _, id := range ids {
			if l.ID == id && l.DriverID == driverID {
				out = append(out, l)
			}
		}
	}
	return out, nil
}

func (m *memStore) ExpensesForPeriod(_ context.Context, driverID int64, p period.Period) ([]*expense.Expense, error) {
	var out []*expense.Expense
	for _, x := range m.expenses {
		if x.DriverID == driverID && p.Contains(x.ExpenseDate) {
			out = append(out, x)
		}
	}
	return out, nil
}

func (m *memStore) IftaForWeek(_ context.Context, driverID int64, week int, quarter *ifta.Quarter) ([]*ifta.Record, error) {
	var out []*ifta.Record
	for _, r := range m.ifta {
		if r.DriverID == driverID && r.WeeklyNumber == week && (quarter == nil || r.Quarter == *quarter) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) CreateSettlement(_ context.Context, s *settlement.Settlement) error {
	s.ID = int64(len(m.settlements) + 1)
	s.CreatedAt = time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC)
	m.settlements = append(m.settlements, s)
	return nil
}

func (m *memStore) PostEscrow(_ context.Context, driverID, settlementID int64, amount decimal.Decimal) ([]*driver.LedgerEntry, error) {
	entries := driver.EscrowPostings(driverID, settlementID, amount)
	m.ledger = append(m.ledger, entries...)
	d := m.drivers[driverID]
	d.Cost = d.Cost.Add(amount)
	return entries, nil
}

func (m *memStore) StampLoads(_ context.Context, ids []int64, invoice *string, week *int) error {
	for _, l := range m.loads {
		for _, id := range ids {
			if l.ID == id {
				if invoice != nil {
					l.InvoiceNumber = invoice
				}
				if week != nil {
					l.WeeklyNumber = week
				}
			}
		}
	}
	return nil
}

func (m *memStore) StampExpenses(_ context.Context, ids []int64, invoice *string, week *int) error {
	for _, x := range m.expenses {
		for _, id := range ids {
			if x.ID == id {
				if invoice != nil {
					x.InvoiceNumber = invoice
				}
				if week != nil {
					x.WeeklyNumber = week
				}
			}
		}
	}
	return nil
}

func (m *memStore) StampIfta(_ context.Context, ids []int64, invoice *string) error {
	for _, r := range m.ifta {
		for _, id := range ids {
			if r.ID == id {
				r.InvoiceNumber = invoice
			}
		}
	}
	return nil
}

func (m *memStore) RecordAudit(_ context.Context, e *audit.Entry) error {
	m.audit = append(m.audit, e)
	return nil
}

func (m *memStore) GetSettlement(_ context.Context, id int64) (*settlement.Settlement, error) {
	for _, s := range m.settlements {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memStore) ListSettlements(_ context.Context, driverID int64, limit, offset int) ([]*settlement.Settlement, int, error) {
	var out []*settlement.Settlement
	for _, s := range m.settlements {
		if s.DriverID == driverID {
			out = append(out, s)
		}
	}
	return out, len(out), nil
}

func request(invoice *string, week *int) *settlement.CreateSettlementRequest {
	return &settlement.CreateSettlementRequest{
		DriverID:      7,
		PayFrom:       "2024-03-01",
		PayTo:         "2024-03-07",
		InvoiceNumber: invoice,
		WeeklyNumber:  week,
	}
}

func TestComputeSettlement_EscrowPostsToLedger(t *testing.T) {
	store := newMemStore()
	store.drivers[7].EscrowDeposit = decimal.NewNullDecimal(d("200"))
	store.loads = []*load.Load{haul(1, "L-100", "1250", 500)}

	svc := settlement.NewService(store, settlement.Options{}, nil)
	st, err := svc.ComputeSettlement(context.Background(), request(nil, nil))
	require.NoError(t, err)

	assert.Equal(t, "$0.00", st.Breakdown.TotalPay.Result)
	assert.True(t, st.Amount.IsZero())
	assert.True(t, store.drivers[7].Cost.Equal(d("200")))
	require.Len(t, store.ledger, 2)
	assert.Equal(t, driver.LedgerSettlementDeduction, store.ledger[0].Kind)
	assert.Equal(t, driver.LedgerEscrowBalanceCredit, store.ledger[1].Kind)
	assert.Equal(t, st.ID, *store.ledger[0].SettlementID)

	require.Len(t, store.audit, 1)
	assert.Equal(t, audit.ActionSettle, store.audit[0].Action)
	assert.Equal(t, int64(3), st.PayRateID)
}

func TestComputeSettlement_InvoicedRecordsAreNotBilledTwice(t *testing.T) {
	store := newMemStore()
	store.loads = []*load.Load{haul(1, "L-100", "1000", 500, item("DETENTION", "100"))}
	store.expenses = []*expense.Expense{
		{ID: 1, DriverID: 7, TransactionType: expense.TransactionExpense, Description: "Fuel", Amount: money.AmountFromString("30"), ExpenseDate: *day(time.March, 2)},
	}
	store.ifta = []*ifta.Record{
		{ID: 1, DriverID: 7, Quarter: ifta.Quarter1, State: "TX", WeeklyNumber: 10, Tax: d("2.00")},
	}
	svc := settlement.NewService(store, settlement.Options{}, nil)
	ctx := context.Background()
	week := 10

	first, err := svc.ComputeSettlement(ctx, request(strPtr("INV-1"), &week))
	require.NoError(t, err)
	assert.Equal(t, "$100.00", first.Breakdown.TotalPay.Result)
	assert.Equal(t, "INV-1", *store.loads[0].InvoiceNumber)
	assert.Equal(t, 10, *store.expenses[0].WeeklyNumber)
	assert.Equal(t, "INV-1", *store.ifta[0].InvoiceNumber)

	// a different invoice must not pick up what INV-1 billed
	second, err := svc.ComputeSettlement(ctx, request(strPtr("INV-2"), &week))
	require.NoError(t, err)
	assert.Empty(t, second.Breakdown.Loads)
	assert.Empty(t, second.Breakdown.Expenses)
	assert.Empty(t, second.Breakdown.Ifta)
	assert.Equal(t, "$0.00", second.Breakdown.TotalPay.Result)

	// re-running the same invoice reproduces the statement
	again, err := svc.ComputeSettlement(ctx, request(strPtr("INV-1"), &week))
	require.NoError(t, err)
	assert.Equal(t, first.Breakdown.TotalPay, again.Breakdown.TotalPay)
}

func TestComputeSettlement_ExtraLoads(t *testing.T) {
	store := newMemStore()
	outside := haul(2, "L-200", "500", 300)
	outside.Stops[0].AppointmentDate = day(time.January, 2)
	outside.Stops[1].AppointmentDate = day(time.January, 3)
	outside.InvoiceNumber = strPtr("INV-OLD")
	foreign := haul(3, "L-300", "900", 300)
	foreign.DriverID = 99
	store.loads = []*load.Load{haul(1, "L-100", "1000", 500), outside, foreign}

	svc := settlement.NewService(store, settlement.Options{}, nil)
	req := request(nil, nil)
	req.ExtraLoadIDs = []int64{2, 1, 3}

	st, err := svc.ComputeSettlement(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, st.Breakdown.Loads, 2)
	assert.Equal(t, "L-100", st.Breakdown.Loads[0].LoadNumber)
	assert.Equal(t, "L-200", st.Breakdown.Loads[1].LoadNumber)
	assert.Equal(t, "$180.00", st.Breakdown.TotalPay.Result)
}

func TestComputeSettlement_RequireInvoicePaid(t *testing.T) {
	store := newMemStore()
	paid := haul(1, "L-100", "1000", 500)
	paid.InvoiceStatus = load.InvoiceStatusPaid
	unpaid := haul(2, "L-200", "500", 300)
	unpaid.InvoiceStatus = load.InvoiceStatusUnpaid
	store.loads = []*load.Load{paid, unpaid}
	ctx := context.Background()

	strict := settlement.NewService(store, settlement.Options{RequireInvoicePaid: true}, nil)
	st, err := strict.ComputeSettlement(ctx, request(nil, nil))
	require.NoError(t, err)
	assert.Equal(t, "$120.00", st.Breakdown.TotalPay.Result)

	off := false
	req := request(nil, nil)
	req.RequireInvoicePaid = &off
	st, err = strict.ComputeSettlement(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "$180.00", st.Breakdown.TotalPay.Result)
}

func TestComputeSettlement_CompanyDriverPersistsMileage(t *testing.T) {
	store := newMemStore()
	store.drivers[7].DriverType = driver.DriverTypeCompanyDriver
	store.loads = []*load.Load{haul(1, "L-100", "1000", 420)}

	svc := settlement.NewService(store, settlement.Options{MilesRate: d("0.60")}, nil)
	st, err := svc.ComputeSettlement(context.Background(), request(nil, nil))
	require.NoError(t, err)

	require.NotNil(t, st.TotalMiles)
	assert.Equal(t, 420, *st.TotalMiles)
	assert.True(t, st.CompanyDriverPay.Decimal.Equal(d("252")))
	assert.Equal(t, "420 miles × $0.6 = $252.00", st.Breakdown.CompanyDriverData.CalculationSummary.Formula)

	override := d("0.70")
	req := request(nil, nil)
	req.MilesRate = &override
	st, err = svc.ComputeSettlement(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "$294.00", st.Breakdown.CompanyDriverData.CompanyDriverPay)
}

func TestComputeSettlement_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	svc := settlement.NewService(store, settlement.Options{}, nil)

	tests := []struct {
		name string
		req  *settlement.CreateSettlementRequest
	}{
		{name: "missing driver", req: &settlement.CreateSettlementRequest{PayFrom: "2024-03-01", PayTo: "2024-03-07"}},
		{name: "bad date", req: &settlement.CreateSettlementRequest{DriverID: 7, PayFrom: "03/01/2024", PayTo: "2024-03-07"}},
		{name: "reversed period", req: &settlement.CreateSettlementRequest{DriverID: 7, PayFrom: "2024-03-08", PayTo: "2024-03-07"}},
		{name: "week out of range", req: func() *settlement.CreateSettlementRequest {
			r := request(nil, nil)
			w := 60
			r.WeeklyNumber = &w
			return r
		}()},
		{name: "negative miles rate", req: func() *settlement.CreateSettlementRequest {
			r := request(nil, nil)
			neg := d("-1")
			r.MilesRate = &neg
			return r
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := svc.ComputeSettlement(context.Background(), tt.req)
			assert.Nil(t, st)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestComputeSettlement_NotFound(t *testing.T) {
	ctx := context.Background()

	t.Run("driver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().GetDriver(ctx, int64(7)).Return(nil, nil)

		_, err := settlement.NewService(store, settlement.Options{}, nil).ComputeSettlement(ctx, request(nil, nil))
		assert.ErrorIs(t, err, driver.ErrDriverNotFound)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("pay rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().GetDriver(ctx, int64(7)).Return(ownerOperator(7), nil)
		store.EXPECT().LatestPayRate(ctx, int64(7)).Return(nil, nil)

		_, err := settlement.NewService(store, settlement.Options{}, nil).ComputeSettlement(ctx, request(nil, nil))
		assert.ErrorIs(t, err, driver.ErrPayRateNotFound)
	})
}

func TestComputeSettlement_FailureInsideTransactionReturnsNoResult(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	boom := errors.New("connection reset")

	store.EXPECT().GetDriver(ctx, int64(7)).Return(ownerOperator(7), nil)
	store.EXPECT().LatestPayRate(ctx, int64(7)).Return(payRate("12"), nil)
	store.EXPECT().InTx(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(settlement.Store) error) error {
		return fn(store)
	})
	store.EXPECT().LockDriver(ctx, int64(7)).Return(ownerOperator(7), nil)
	store.EXPECT().LoadsForPeriod(ctx, int64(7), gomock.Any(), false).Return([]*load.Load{haul(1, "L-100", "1000", 500)}, nil)
	store.EXPECT().LoadsByIDs(ctx, int64(7), gomock.Nil()).Return(nil, nil)
	store.EXPECT().ExpensesForPeriod(ctx, int64(7), gomock.Any()).Return(nil, nil)
	store.EXPECT().Company(ctx).Return(nil, nil)
	store.EXPECT().CreateSettlement(ctx, gomock.Any()).Return(boom)

	st, err := settlement.NewService(store, settlement.Options{}, nil).ComputeSettlement(ctx, request(nil, nil))
	assert.Nil(t, st)
	assert.ErrorIs(t, err, boom)
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().GetSettlement(ctx, int64(42)).Return(nil, nil)

	_, err := settlement.NewService(store, settlement.Options{}, nil).GetByID(ctx, 42)
	assert.ErrorIs(t, err, settlement.ErrSettlementNotFound)
}

func TestService_ListByDriverClampsPaging(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().ListSettlements(ctx, int64(7), 20, 0).Return([]*settlement.Settlement{}, 0, nil)

	_, _, err := settlement.NewService(store, settlement.Options{}, nil).ListByDriver(ctx, 7, 0, 1000)
	require.NoError(t, err)
}
