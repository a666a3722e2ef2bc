// Package payitem classifies the other-pay items attached to a load and
// computes each one's signed contribution to a settlement.
package payitem

import (
	"github.com/shopspring/decimal"
)

// Category is an other-pay category. Labels are matched case-sensitively.
type Category string

const (
	CategoryDetention    Category = "DETENTION"
	CategoryLayover      Category = "LAYOVER"
	CategoryChargeback   Category = "CHARGEBACK"
	CategoryEquipment    Category = "EQUIPMENT"
	CategoryLumper       Category = "LUMPER"
	CategoryDriverAssist Category = "DRIVERASSIST"
	CategoryTrailerWash  Category = "TRAILERWASH"
	CategoryEscortFee    Category = "ESCORTFEE"
	CategoryBonus        Category = "BONUS"
	// CategoryOther also receives every label not listed above
	CategoryOther Category = "OTHER"
)

// Categories lists every named category
var Categories = []Category{
	CategoryDetention,
	CategoryLayover,
	CategoryChargeback,
	CategoryEquipment,
	CategoryLumper,
	CategoryDriverAssist,
	CategoryTrailerWash,
	CategoryEscortFee,
	CategoryBonus,
	CategoryOther,
}

// ParseCategory maps a stored label to its category. Unknown labels,
// including differently cased known ones, are CategoryOther.
func ParseCategory(raw string) Category {
	for _, c := range Categories {
		if string(c) == raw {
			return c
		}
	}
	return CategoryOther
}

// Treatment is how an item's amount reaches the settlement total
type Treatment string

const (
	TreatmentPercentageAdded Treatment = "PERCENTAGE_ADDED"
	TreatmentFullAdded       Treatment = "FULL_ADDED"
	TreatmentFullSubtracted  Treatment = "FULL_SUBTRACTED"
)

// Contribution is the outcome of classifying one item
type Contribution struct {
	Category  Category
	Treatment Treatment
	// Signed is added to the load line; negative for deductions
	Signed  decimal.Decimal
	Formula string
	Result  string
}

// IsDeduction reports whether the item reduces pay
func (c Contribution) IsDeduction() bool {
	return c.Treatment == TreatmentFullSubtracted
}

// Strategy is implemented by each treatment
type Strategy interface {
	// Apply computes the contribution of amount under the driver's rate
	Apply(amount decimal.Decimal, rate decimal.NullDecimal) Contribution

	// Treatment returns the treatment identifier for this strategy
	Treatment() Treatment
}

// Factory picks the strategy for a category
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy for c. Every category has one.
func (f *Factory) Create(c Category) Strategy {
	switch c {
	case CategoryDetention, CategoryLayover:
		return &PercentageStrategy{}
	case CategoryChargeback:
		return &SubtractStrategy{}
	case CategoryEquipment, CategoryLumper, CategoryDriverAssist, CategoryTrailerWash,
		CategoryEscortFee, CategoryBonus, CategoryOther:
		return &AddStrategy{}
	default:
		return &AddStrategy{}
	}
}

// Classify parses the label and applies the matching strategy
func (f *Factory) Classify(label string, amount decimal.Decimal, rate decimal.NullDecimal) Contribution {
	c := ParseCategory(label)
	out := f.Create(c).Apply(amount, rate)
	out.Category = c
	return out
}

// rateConfigured reports whether a percentage rate is set and nonzero
func rateConfigured(rate decimal.NullDecimal) bool {
	return rate.Valid && !rate.Decimal.IsZero()
}
