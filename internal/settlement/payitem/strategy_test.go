package payitem

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rate(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(d(s))
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		assert.Equal(t, c, ParseCategory(string(c)))
	}
	assert.Equal(t, CategoryOther, ParseCategory("FUEL_ADVANCE"))
	assert.Equal(t, CategoryOther, ParseCategory("detention"))
	assert.Equal(t, CategoryOther, ParseCategory(""))
}

func TestFactory_EveryCategoryHasOneTreatment(t *testing.T) {
	f := NewFactory()
	want := map[Category]Treatment{
		CategoryDetention:    TreatmentPercentageAdded,
		CategoryLayover:      TreatmentPercentageAdded,
		CategoryChargeback:   TreatmentFullSubtracted,
		CategoryEquipment:    TreatmentFullAdded,
		CategoryLumper:       TreatmentFullAdded,
		CategoryDriverAssist: TreatmentFullAdded,
		CategoryTrailerWash:  TreatmentFullAdded,
		CategoryEscortFee:    TreatmentFullAdded,
		CategoryBonus:        TreatmentFullAdded,
		CategoryOther:        TreatmentFullAdded,
	}
	assert.Len(t, want, len(Categories))
	for _, c := range Categories {
		assert.Equal(t, want[c], f.Create(c).Treatment(), "category %s", c)
	}
}

func TestFactory_Classify(t *testing.T) {
	f := NewFactory()

	tests := []struct {
		name        string
		label       string
		amount      string
		rate        decimal.NullDecimal
		wantSigned  string
		wantFormula string
		wantResult  string
		wantCat     Category
	}{
		{name: "detention scaled by rate", label: "DETENTION", amount: "100", rate: rate("12"), wantSigned: "12", wantFormula: "$100.00 * 12%", wantResult: "$12.00", wantCat: CategoryDetention},
		{name: "layover scaled by fractional rate", label: "LAYOVER", amount: "150", rate: rate("12.5"), wantSigned: "18.75", wantFormula: "$150.00 * 12.5%", wantResult: "$18.75", wantCat: CategoryLayover},
		{name: "detention without rate passes through", label: "DETENTION", amount: "100", rate: decimal.NullDecimal{}, wantSigned: "100", wantFormula: "$100.00", wantResult: "$100.00", wantCat: CategoryDetention},
		{name: "detention with zero rate passes through", label: "DETENTION", amount: "40", rate: rate("0"), wantSigned: "40", wantFormula: "$40.00", wantResult: "$40.00", wantCat: CategoryDetention},
		{name: "lumper added in full", label: "LUMPER", amount: "25", rate: rate("12"), wantSigned: "25", wantFormula: "$25.00", wantResult: "$25.00", wantCat: CategoryLumper},
		{name: "unknown label treated as other", label: "FUEL_ADVANCE", amount: "60", rate: rate("12"), wantSigned: "60", wantFormula: "$60.00", wantResult: "$60.00", wantCat: CategoryOther},
		{name: "chargeback subtracted", label: "CHARGEBACK", amount: "50", rate: rate("12"), wantSigned: "-50", wantFormula: "-$50.00", wantResult: "-$50.00", wantCat: CategoryChargeback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Classify(tt.label, d(tt.amount), tt.rate)
			assert.True(t, got.Signed.Equal(d(tt.wantSigned)), "signed %s", got.Signed)
			assert.Equal(t, tt.wantFormula, got.Formula)
			assert.Equal(t, tt.wantResult, got.Result)
			assert.Equal(t, tt.wantCat, got.Category)
		})
	}
}

func TestChargebackIsNeverScaled(t *testing.T) {
	f := NewFactory()
	for _, r := range []decimal.NullDecimal{{}, rate("0"), rate("12"), rate("88"), rate("100")} {
		got := f.Classify("CHARGEBACK", d("75.40"), r)
		assert.True(t, got.IsDeduction())
		assert.True(t, got.Signed.Equal(d("-75.40")), "rate %v", r)
		assert.Equal(t, "-$75.40", got.Formula)
	}
}
