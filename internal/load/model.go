package load

import (
	"fmt"
	"strings"
	"time"

	"github.com/fkhayef/haulledger/internal/period"
	"github.com/fkhayef/haulledger/pkg/money"
)

// InvoiceStatus tracks where a load is in billing
type InvoiceStatus string

const (
	InvoiceStatusUnpaid   InvoiceStatus = "Unpaid"
	InvoiceStatusInvoiced InvoiceStatus = "Invoiced"
	InvoiceStatusPaid     InvoiceStatus = "Paid"
)

// StopRole tags what a stop is for
type StopRole string

const (
	StopPickup   StopRole = "PICKUP"
	StopDelivery StopRole = "DELIVERY"
	StopSecond   StopRole = "Stop-2"
	StopThird    StopRole = "Stop-3"
)

// Stop is one location event of a load
type Stop struct {
	ID              int64      `json:"id"`
	LoadID          int64      `json:"load_id"`
	StopName        StopRole   `json:"stop_name"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	Address1        *string    `json:"address1,omitempty"`
	City            *string    `json:"city,omitempty"`
	State           *string    `json:"state,omitempty"`
	ZipCode         *string    `json:"zip_code,omitempty"`
	CompanyName     *string    `json:"company_name,omitempty"`
}

// OtherPay is an ad-hoc charge or credit attached to a load. PayType is kept
// as entered and classified when a settlement is computed.
type OtherPay struct {
	ID      int64        `json:"id"`
	LoadID  int64        `json:"load_id"`
	PayType string       `json:"pay_type"`
	Amount  money.Amount `json:"amount"`
	Note    *string      `json:"note,omitempty"`
}

// Load is one freight movement
type Load struct {
	ID            int64         `json:"id"`
	LoadID        string        `json:"load_id"`
	DriverID      int64         `json:"driver_id"`
	LoadPay       money.Amount  `json:"load_pay"`
	Mile          int           `json:"mile"`
	TotalMiles    int           `json:"total_miles"`
	InvoiceStatus InvoiceStatus `json:"invoice_status"`
	InvoiceNumber *string       `json:"invoice_number,omitempty"`
	WeeklyNumber  *int          `json:"weekly_number,omitempty"`
	Note          *string       `json:"note,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`

	Stops     []*Stop     `json:"stops"`
	OtherPays []*OtherPay `json:"other_pays"`
}

// PickupStop is the earliest PICKUP stop with an appointment
func (l *Load) PickupStop() *Stop {
	var best *Stop
	for _, s := range l.Stops {
		if s.StopName != StopPickup || s.AppointmentDate == nil {
			continue
		}
		if best == nil || s.AppointmentDate.Before(*best.AppointmentDate) {
			best = s
		}
	}
	return best
}

// DeliveryStop is the latest DELIVERY stop with an appointment
func (l *Load) DeliveryStop() *Stop {
	var best *Stop
	for _, s := range l.Stops {
		if s.StopName != StopDelivery || s.AppointmentDate == nil {
			continue
		}
		if best == nil || s.AppointmentDate.After(*best.AppointmentDate) {
			best = s
		}
	}
	return best
}

// PickupDate is the derived pickup time, nil when no pickup is scheduled
func (l *Load) PickupDate() *time.Time {
	if s := l.PickupStop(); s != nil {
		return s.AppointmentDate
	}
	return nil
}

// DeliveryDate is the derived delivery time, nil when no delivery is scheduled
func (l *Load) DeliveryDate() *time.Time {
	if s := l.DeliveryStop(); s != nil {
		return s.AppointmentDate
	}
	return nil
}

// InPeriod reports whether the load has both derived dates and they overlap p.
// It mirrors the predicate Repository.ForPeriod evaluates in SQL; change
// both together.
func (l *Load) InPeriod(p period.Period) bool {
	pickup, delivery := l.PickupDate(), l.DeliveryDate()
	if pickup == nil || delivery == nil {
		return false
	}
	return p.Overlaps(*pickup, *delivery)
}

// Location renders a stop as "City, ST", falling back to the street address
// and then "N/A".
func (s *Stop) Location() string {
	if s == nil {
		return "N/A"
	}
	if s.City != nil && strings.TrimSpace(*s.City) != "" {
		state := ""
		if s.State != nil {
			state = *s.State
		}
		return fmt.Sprintf("%s, %s", *s.City, state)
	}
	if s.Address1 != nil && strings.TrimSpace(*s.Address1) != "" {
		return *s.Address1
	}
	return "N/A"
}

// Display renders a stop as "YYYY-MM-DD, City, ST", or "N/A" when the stop
// is missing or unscheduled.
func (s *Stop) Display() string {
	if s == nil || s.AppointmentDate == nil {
		return "N/A"
	}
	return s.AppointmentDate.Format(period.DateLayout) + ", " + s.Location()
}
