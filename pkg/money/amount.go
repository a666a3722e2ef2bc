package money

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyAmount   = errors.New("amount is empty")
	ErrInvalidAmount = errors.New("amount is not a number")
)

// Amount is a monetary value stored as entered. Legacy imports left values
// like "$1,200.00", "(35.00)" or "n/a" in these columns, so parsing is
// deferred to the point of use where a bad value can be skipped.
type Amount struct {
	Raw   string
	Valid bool
}

// NewAmount builds a valid Amount from a decimal
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Raw: d.String(), Valid: true}
}

// AmountFromString builds an Amount from raw text; empty text is null
func AmountFromString(s string) Amount {
	s = strings.TrimSpace(s)
	return Amount{Raw: s, Valid: s != ""}
}

// Decimal parses the stored text. Currency symbols, thousands separators and
// surrounding whitespace are ignored; "(x)" and "-x" are negative.
func (a Amount) Decimal() (decimal.Decimal, error) {
	if !a.Valid {
		return decimal.Zero, ErrEmptyAmount
	}
	return ParseAmount(a.Raw)
}

// ParseAmount cleans and parses a free-form money string
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	}

	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// Scan implements sql.Scanner
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Amount{}
	case string:
		*a = AmountFromString(v)
	case []byte:
		*a = AmountFromString(string(v))
	case int64:
		*a = NewAmount(decimal.NewFromInt(v))
	case float64:
		*a = NewAmount(decimal.NewFromFloat(v))
	default:
		return fmt.Errorf("cannot scan %T into money.Amount", src)
	}
	return nil
}

// Value implements driver.Valuer
func (a Amount) Value() (driver.Value, error) {
	if !a.Valid {
		return nil, nil
	}
	return a.Raw, nil
}

// MarshalJSON writes parseable amounts as JSON numbers and anything else as
// the raw text.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	if d, err := a.Decimal(); err == nil {
		return []byte(d.String()), nil
	}
	return json.Marshal(a.Raw)
}

// UnmarshalJSON accepts a number, a string or null
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountFromString(s)
		return nil
	}
	*a = AmountFromString(string(data))
	return nil
}
