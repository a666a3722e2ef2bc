// Package period handles the inclusive calendar-date ranges settlements are
// computed over.
package period

import (
	"time"

	"github.com/fkhayef/haulledger/pkg/apperr"
)

// DateLayout is the wire format for dates
const DateLayout = "2006-01-02"

// Period is an inclusive range of calendar dates
type Period struct {
	From time.Time
	To   time.Time
}

// Parse validates two YYYY-MM-DD strings and requires from <= to
func Parse(from, to string) (Period, error) {
	f, err := time.Parse(DateLayout, from)
	if err != nil {
		return Period{}, apperr.Validationf("invalid period_start %q: expected YYYY-MM-DD", from)
	}
	t, err := time.Parse(DateLayout, to)
	if err != nil {
		return Period{}, apperr.Validationf("invalid period_end %q: expected YYYY-MM-DD", to)
	}
	if f.After(t) {
		return Period{}, apperr.Validation("period_start must not be after period_end")
	}
	return Period{From: f, To: t}, nil
}

// Date truncates t to its calendar date in t's own location, expressed in UTC
// so dates from different zones compare by their wall-clock day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether t's calendar date falls inside the period
func (p Period) Contains(t time.Time) bool {
	day := Date(t)
	return !day.Before(Date(p.From)) && !day.After(Date(p.To))
}

// Overlaps is the load selection test: the pickup date is in the period, or
// the delivery date is, or the pickup..delivery span encloses the period.
func (p Period) Overlaps(pickup, delivery time.Time) bool {
	if p.Contains(pickup) || p.Contains(delivery) {
		return true
	}
	return !Date(pickup).After(Date(p.From)) && !Date(delivery).Before(Date(p.To))
}

// String renders the period as "YYYY-MM-DD..YYYY-MM-DD"
func (p Period) String() string {
	return p.From.Format(DateLayout) + ".." + p.To.Format(DateLayout)
}
