package ifta_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fkhayef/haulledger/internal/audit"
	"github.com/fkhayef/haulledger/internal/ifta"
	"github.com/fkhayef/haulledger/internal/ifta/mocks"
	"github.com/fkhayef/haulledger/pkg/apperr"
)

type auditLog struct {
	entries []*audit.Entry
}

func (a *auditLog) Record(_ context.Context, e *audit.Entry) error {
	a.entries = append(a.entries, e)
	return nil
}

func ptr(v decimal.Decimal) *decimal.Decimal {
	return &v
}

// storedTX is a Texas record computed at $0.20/gal and 6.5 mpg: 650 miles,
// 80 gallons bought, 100 taxable, 20 net, $4.00 due.
func storedTX() *ifta.Record {
	return &ifta.Record{
		ID:               5,
		Quarter:          ifta.Quarter1,
		State:            "TX",
		DriverID:         3,
		WeeklyNumber:     10,
		TotalMiles:       d("650"),
		TaxPaidGallon:    decimal.NewNullDecimal(d("80")),
		TaxableGallon:    d("100"),
		NetTaxableGallon: d("20"),
		Tax:              d("4.00"),
		FuelTaxRateID:    9,
	}
}

func TestService_UpdateRecordRecomputes(t *testing.T) {
	tests := []struct {
		name    string
		req     ifta.UpdateRecordRequest
		taxable string
		net     string
		tax     string
	}{
		{
			name:    "more miles",
			req:     ifta.UpdateRecordRequest{TotalMiles: ptr(d("1300"))},
			taxable: "200.000",
			net:     "120.000",
			tax:     "24.00",
		},
		{
			name:    "more fuel bought turns into a credit",
			req:     ifta.UpdateRecordRequest{TaxPaidGallon: ptr(d("130"))},
			taxable: "100.000",
			net:     "-30.000",
			tax:     "-6.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockRecordStore(ctrl)
			rates := mocks.NewMockRateTable(ctrl)
			log := &auditLog{}

			var written *ifta.Record
			store.EXPECT().GetRecord(gomock.Any(), int64(5)).Return(storedTX(), nil)
			rates.EXPECT().RateFor(gomock.Any(), ifta.Quarter1, "TX").Return(rate("0.20", "6.5"), nil)
			store.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *ifta.Record) error {
				written = rec
				return nil
			})

			svc := ifta.NewService(store, rates, nil, log)
			rec, err := svc.UpdateRecord(context.Background(), 5, &tt.req)
			require.NoError(t, err)

			require.NotNil(t, written)
			assert.Equal(t, tt.taxable, written.TaxableGallon.StringFixed(3))
			assert.Equal(t, tt.net, written.NetTaxableGallon.StringFixed(3))
			assert.Equal(t, tt.tax, written.Tax.StringFixed(2))
			assert.Equal(t, int64(9), written.FuelTaxRateID)
			assert.Same(t, written, rec)

			require.Len(t, log.entries, 1)
			assert.Equal(t, audit.ActionUpdate, log.entries[0].Action)
		})
	}
}

func TestService_UpdateRecordWithRemovedRateWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	rates := mocks.NewMockRateTable(ctrl)
	log := &auditLog{}

	store.EXPECT().GetRecord(gomock.Any(), int64(5)).Return(storedTX(), nil)
	rates.EXPECT().RateFor(gomock.Any(), ifta.Quarter1, "TX").Return(nil, nil)
	store.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).Times(0)

	svc := ifta.NewService(store, rates, nil, log)
	rec, err := svc.UpdateRecord(context.Background(), 5, &ifta.UpdateRecordRequest{TotalMiles: ptr(d("700"))})

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ifta.ErrFuelTaxRateNotFound)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Empty(t, log.entries)
}

func TestService_UpdateRecordNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	store.EXPECT().GetRecord(gomock.Any(), int64(77)).Return(nil, nil)

	svc := ifta.NewService(store, mocks.NewMockRateTable(ctrl), nil, &auditLog{})
	_, err := svc.UpdateRecord(context.Background(), 77, &ifta.UpdateRecordRequest{})
	assert.ErrorIs(t, err, ifta.ErrRecordNotFound)
}

func TestService_UpdateRecordRejectsNegativeInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	store.EXPECT().GetRecord(gomock.Any(), int64(5)).Return(storedTX(), nil)

	svc := ifta.NewService(store, mocks.NewMockRateTable(ctrl), nil, &auditLog{})
	_, err := svc.UpdateRecord(context.Background(), 5, &ifta.UpdateRecordRequest{TaxPaidGallon: ptr(d("-1"))})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestService_BulkUpsertRatesInOneTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	tx := mocks.NewMockRecordStore(ctrl)
	log := &auditLog{}

	store.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ifta.RecordStore) error) error {
		return fn(tx)
	})
	gomock.InOrder(
		tx.EXPECT().UpsertRate(gomock.Any(), ifta.Quarter2, "TX", d("0.20"), decimal.NewNullDecimal(d("6.5"))).
			Return(&ifta.FuelTaxRate{ID: 1, Quarter: ifta.Quarter2, State: "TX", Rate: d("0.20")}, nil),
		tx.EXPECT().UpsertRate(gomock.Any(), ifta.Quarter2, ifta.KYSurcharge, d("0.102"), decimal.NullDecimal{}).
			Return(&ifta.FuelTaxRate{ID: 2, Quarter: ifta.Quarter2, State: ifta.KYSurcharge, Rate: d("0.102")}, nil),
	)

	svc := ifta.NewService(store, mocks.NewMockRateTable(ctrl), nil, log)
	rates, err := svc.BulkUpsertRates(context.Background(), &ifta.BulkUpsertRatesRequest{
		Quarter: ifta.Quarter2,
		Rates: []ifta.RateItem{
			{State: "tx", Rate: d("0.20"), MPG: ptr(d("6.5"))},
			{State: "ky surcharge", Rate: d("0.102")},
		},
	})
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, ifta.KYSurcharge, rates[1].State)
	assert.Len(t, log.entries, 2)
}

func TestService_BulkUpsertRatesRejectsBeforeWriting(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	store.EXPECT().InTx(gomock.Any(), gomock.Any()).Times(0)

	svc := ifta.NewService(store, mocks.NewMockRateTable(ctrl), nil, &auditLog{})
	_, err := svc.BulkUpsertRates(context.Background(), &ifta.BulkUpsertRatesRequest{
		Quarter: ifta.Quarter2,
		Rates: []ifta.RateItem{
			{State: "TX", Rate: d("0.20")},
			{State: "TX", Rate: d("-0.1")},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
