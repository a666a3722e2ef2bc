package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInfo(t *testing.T) {
	assert.Equal(t, Info{}, (*Company)(nil).ToInfo())

	city := "Dallas"
	info := (&Company{ID: 1, CompanyName: "Lone Star Freight", City: &city}).ToInfo()
	require.NotNil(t, info.CompanyName)
	assert.Equal(t, "Lone Star Freight", *info.CompanyName)
	assert.Equal(t, &city, info.City)
	assert.Nil(t, info.Fax)
}
