package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/haulledger/pkg/apperr"
)

type sample struct {
	DriverID int64  `json:"driver_id" validate:"required"`
	Quarter  string `json:"quarter" validate:"required,oneof='Quarter 1' 'Quarter 2'"`
	Note     string `json:"-"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(&sample{DriverID: 1, Quarter: "Quarter 1"}))

	err := Struct(&sample{Quarter: "Q9"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, map[string]string{"driver_id": "required", "quarter": "oneof"}, apperr.FieldsOf(err))
	assert.Equal(t, "invalid request: driver_id failed required, quarter failed oneof", err.Error())
}

func TestVar(t *testing.T) {
	require.NoError(t, Var("Quarter 3", "oneof='Quarter 3' 'Quarter 4'", "quarter"))

	err := Var("Q3", "oneof='Quarter 3' 'Quarter 4'", "quarter")
	require.Error(t, err)
	assert.Equal(t, map[string]string{"quarter": "oneof"}, apperr.FieldsOf(err))
}
