package load

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/haulledger/internal/period"
)

func at(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func str(s string) *string { return &s }

func TestDerivedDates(t *testing.T) {
	l := &Load{Stops: []*Stop{
		{StopName: StopPickup, AppointmentDate: at("2024-03-05T10:00:00Z"), City: str("Reno"), State: str("NV")},
		{StopName: StopPickup, AppointmentDate: at("2024-03-04T08:00:00Z"), City: str("Sparks"), State: str("NV")},
		{StopName: StopSecond, AppointmentDate: at("2024-03-01T08:00:00Z")},
		{StopName: StopDelivery, AppointmentDate: at("2024-03-07T09:00:00Z"), Address1: str("12 Dock Rd")},
		{StopName: StopDelivery, AppointmentDate: nil, City: str("Ignored"), State: str("CA")},
	}}

	require.NotNil(t, l.PickupDate())
	assert.Equal(t, "2024-03-04", l.PickupDate().Format(period.DateLayout))
	require.NotNil(t, l.DeliveryDate())
	assert.Equal(t, "2024-03-07", l.DeliveryDate().Format(period.DateLayout))

	assert.Equal(t, "2024-03-04, Sparks, NV", l.PickupStop().Display())
	assert.Equal(t, "2024-03-07, 12 Dock Rd", l.DeliveryStop().Display())
}

func TestStopDisplay_Fallbacks(t *testing.T) {
	var missing *Stop
	assert.Equal(t, "N/A", missing.Display())
	assert.Equal(t, "N/A", missing.Location())

	unscheduled := &Stop{StopName: StopPickup, City: str("Reno"), State: str("NV")}
	assert.Equal(t, "N/A", unscheduled.Display())
	assert.Equal(t, "Reno, NV", unscheduled.Location())

	bare := &Stop{StopName: StopPickup, AppointmentDate: at("2024-03-04T08:00:00Z")}
	assert.Equal(t, "2024-03-04, N/A", bare.Display())
}

func TestInPeriod(t *testing.T) {
	p, err := period.Parse("2024-03-04", "2024-03-10")
	require.NoError(t, err)

	noDelivery := &Load{Stops: []*Stop{{StopName: StopPickup, AppointmentDate: at("2024-03-05T08:00:00Z")}}}
	assert.False(t, noDelivery.InPeriod(p))

	enclosing := &Load{Stops: []*Stop{
		{StopName: StopPickup, AppointmentDate: at("2024-03-01T08:00:00Z")},
		{StopName: StopDelivery, AppointmentDate: at("2024-03-12T08:00:00Z")},
	}}
	assert.True(t, enclosing.InPeriod(p))

	before := &Load{Stops: []*Stop{
		{StopName: StopPickup, AppointmentDate: at("2024-02-20T08:00:00Z")},
		{StopName: StopDelivery, AppointmentDate: at("2024-03-03T23:00:00Z")},
	}}
	assert.False(t, before.InPeriod(p))
}
