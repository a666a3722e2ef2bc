package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/haulledger/pkg/apperr"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParse(t *testing.T) {
	p, err := Parse("2024-03-01", "2024-03-07")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01..2024-03-07", p.String())

	_, err = Parse("2024-03-08", "2024-03-07")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = Parse("03/01/2024", "2024-03-07")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = Parse("2024-03-01", "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	p, err = Parse("2024-03-05", "2024-03-05")
	require.NoError(t, err)
	assert.True(t, p.Contains(day("2024-03-05")))
}

func TestOverlaps(t *testing.T) {
	p := Period{From: day("2024-03-04"), To: day("2024-03-10")}

	tests := []struct {
		name     string
		pickup   string
		delivery string
		want     bool
	}{
		{"inside", "2024-03-05", "2024-03-06", true},
		{"pickup in range only", "2024-03-09", "2024-03-14", true},
		{"delivery in range only", "2024-02-28", "2024-03-04", true},
		{"span encloses period", "2024-03-01", "2024-03-15", true},
		{"entirely before", "2024-02-20", "2024-03-03", false},
		{"entirely after", "2024-03-11", "2024-03-12", false},
		{"boundary pickup on end date", "2024-03-10", "2024-03-20", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Overlaps(day(tt.pickup), day(tt.delivery)))
		})
	}
}

func TestContains_IgnoresTimeOfDay(t *testing.T) {
	p := Period{From: day("2024-03-04"), To: day("2024-03-10")}
	late := time.Date(2024, 3, 10, 23, 59, 0, 0, time.FixedZone("CST", -6*3600))
	assert.True(t, p.Contains(late))
}
