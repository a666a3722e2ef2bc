package driver

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver_Escrow(t *testing.T) {
	d := &Driver{}
	assert.True(t, d.Escrow().IsZero())

	d.EscrowDeposit = decimal.NewNullDecimal(decimal.NewFromInt(200))
	assert.True(t, d.Escrow().Equal(decimal.NewFromInt(200)))
}

func TestEscrowPostings(t *testing.T) {
	entries := EscrowPostings(7, 99, decimal.NewFromInt(200))
	require.Len(t, entries, 2)

	assert.Equal(t, LedgerSettlementDeduction, entries[0].Kind)
	assert.Equal(t, LedgerEscrowBalanceCredit, entries[1].Kind)
	for _, e := range entries {
		assert.Equal(t, int64(7), e.DriverID)
		require.NotNil(t, e.SettlementID)
		assert.Equal(t, int64(99), *e.SettlementID)
		assert.True(t, e.Amount.Equal(decimal.NewFromInt(200)))
	}
}
