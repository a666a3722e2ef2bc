package ifta_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fkhayef/haulledger/internal/ifta"
	"github.com/fkhayef/haulledger/internal/ifta/mocks"
	"github.com/fkhayef/haulledger/pkg/apperr"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rate(r, mpg string) *ifta.FuelTaxRate {
	f := &ifta.FuelTaxRate{ID: 9, Quarter: ifta.Quarter1, State: "TX", Rate: d(r)}
	if mpg != "" {
		f.MPG = decimal.NewNullDecimal(d(mpg))
	}
	return f
}

func TestApportion(t *testing.T) {
	tests := []struct {
		name        string
		rate        *ifta.FuelTaxRate
		miles, fuel string
		taxable     string
		net         string
		tax         string
	}{
		{name: "tax owed", rate: rate("0.20", "6.5"), miles: "650", fuel: "80", taxable: "100.000", net: "20.000", tax: "4.00"},
		{name: "credit when more fuel bought than burned", rate: rate("0.20", "6.5"), miles: "650", fuel: "120", taxable: "100.000", net: "-20.000", tax: "-4.00"},
		{name: "gallons rounded to three places", rate: rate("0.20", "3"), miles: "100", fuel: "0", taxable: "33.333", net: "33.333", tax: "6.67"},
		{name: "missing mpg means no taxable gallons", rate: rate("0.30", ""), miles: "500", fuel: "10", taxable: "0.000", net: "-10.000", tax: "-3.00"},
		{name: "zero mpg means no taxable gallons", rate: rate("0.30", "0"), miles: "500", fuel: "0", taxable: "0.000", net: "0.000", tax: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ifta.Apportion(tt.rate, d(tt.miles), d(tt.fuel))
			assert.Equal(t, tt.taxable, a.TaxableGallons.StringFixed(3))
			assert.Equal(t, tt.net, a.NetTaxableGallons.StringFixed(3))
			assert.Equal(t, tt.tax, a.TaxDue.StringFixed(2))
		})
	}
}

func TestApportion_NetIsTaxableMinusFuel(t *testing.T) {
	r := rate("0.385", "5.9")
	for _, fuel := range []string{"0", "12.5", "99.999", "250"} {
		a := ifta.Apportion(r, d("1234.56"), d(fuel))
		assert.True(t, a.NetTaxableGallons.Equal(a.TaxableGallons.Sub(d(fuel)).Round(3)), "fuel %s", fuel)
		assert.True(t, a.TaxDue.Equal(a.NetTaxableGallons.Mul(r.Rate).Round(2)), "fuel %s", fuel)
	}
}

func TestComputeApportionment(t *testing.T) {
	ctx := context.Background()

	t.Run("uses the quarter and state rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rates := mocks.NewMockRateTable(ctrl)
		rates.EXPECT().RateFor(ctx, ifta.Quarter2, "OK").Return(rate("0.19", "6.5"), nil)

		got, a, err := ifta.ComputeApportionment(ctx, rates, "OK", ifta.Quarter2, d("1300"), d("150"))
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.ID)
		assert.Equal(t, "200.000", a.TaxableGallons.StringFixed(3))
		assert.Equal(t, "9.50", a.TaxDue.StringFixed(2))
	})

	t.Run("missing rate is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rates := mocks.NewMockRateTable(ctrl)
		rates.EXPECT().RateFor(ctx, ifta.Quarter3, ifta.KYSurcharge).Return(nil, nil)

		_, _, err := ifta.ComputeApportionment(ctx, rates, ifta.KYSurcharge, ifta.Quarter3, d("100"), d("0"))
		assert.ErrorIs(t, err, ifta.ErrFuelTaxRateNotFound)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rates := mocks.NewMockRateTable(ctrl)
		boom := errors.New("connection reset")
		rates.EXPECT().RateFor(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

		_, _, err := ifta.ComputeApportionment(ctx, rates, "TX", ifta.Quarter1, d("100"), d("0"))
		assert.ErrorIs(t, err, boom)
	})
}

func TestService_CreateRecordWithoutRateStoresNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	rates := mocks.NewMockRateTable(ctrl)
	rates.EXPECT().RateFor(gomock.Any(), ifta.Quarter4, "NM").Return(nil, nil)

	// No repository: reaching persistence would panic
	svc := ifta.NewService(nil, rates, nil, nil)
	rec, err := svc.CreateRecord(context.Background(), &ifta.CreateRecordRequest{
		Quarter:      ifta.Quarter4,
		State:        "nm",
		DriverID:     3,
		WeeklyNumber: 44,
		TotalMiles:   d("812"),
	})
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ifta.ErrFuelTaxRateNotFound)
}

func TestService_BulkCreateStopsAtFirstMissingRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	rates := mocks.NewMockRateTable(ctrl)
	gomock.InOrder(
		rates.EXPECT().RateFor(gomock.Any(), ifta.Quarter1, "TX").Return(rate("0.20", "6.5"), nil),
		rates.EXPECT().RateFor(gomock.Any(), ifta.Quarter1, "OK").Return(nil, nil),
	)

	svc := ifta.NewService(nil, rates, nil, nil)
	records, err := svc.BulkCreateRecords(context.Background(), &ifta.BulkCreateRecordsRequest{
		Quarter:      ifta.Quarter1,
		DriverID:     3,
		WeeklyNumber: 2,
		Records: []ifta.RecordItem{
			{State: "TX", TotalMiles: d("650")},
			{State: "OK", TotalMiles: d("120")},
			{State: "AR", TotalMiles: d("80")},
		},
	})
	assert.Nil(t, records)
	assert.ErrorIs(t, err, ifta.ErrFuelTaxRateNotFound)
}

func TestService_CreateRecordRejectsBadInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	rates := mocks.NewMockRateTable(ctrl)
	svc := ifta.NewService(nil, rates, nil, nil)

	tests := []struct {
		name string
		req  ifta.CreateRecordRequest
	}{
		{name: "unknown quarter", req: ifta.CreateRecordRequest{Quarter: "Q5", State: "TX", DriverID: 1, WeeklyNumber: 1}},
		{name: "bad state", req: ifta.CreateRecordRequest{Quarter: ifta.Quarter1, State: "Texas", DriverID: 1, WeeklyNumber: 1}},
		{name: "negative miles", req: ifta.CreateRecordRequest{Quarter: ifta.Quarter1, State: "TX", DriverID: 1, WeeklyNumber: 1, TotalMiles: d("-1")}},
		{name: "week out of range", req: ifta.CreateRecordRequest{Quarter: ifta.Quarter1, State: "TX", DriverID: 1, WeeklyNumber: 54}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRecord(context.Background(), &tt.req)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestNormalizeState(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "tx", want: "TX"},
		{in: " OK ", want: "OK"},
		{in: "ky surcharge", want: ifta.KYSurcharge},
		{in: "KY", want: "KY"},
		{in: "T1", wantErr: true},
		{in: "Texas", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ifta.NormalizeState(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
