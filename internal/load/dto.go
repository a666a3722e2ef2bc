package load

import (
	"time"

	"github.com/fkhayef/haulledger/pkg/money"
)

// CreateStopRequest represents one stop in a load request
type CreateStopRequest struct {
	StopName        StopRole   `json:"stop_name" validate:"required,oneof=PICKUP DELIVERY Stop-2 Stop-3"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	Address1        *string    `json:"address1,omitempty"`
	City            *string    `json:"city,omitempty"`
	State           *string    `json:"state,omitempty" validate:"omitempty,max=32"`
	ZipCode         *string    `json:"zip_code,omitempty" validate:"omitempty,max=10"`
	CompanyName     *string    `json:"company_name,omitempty"`
}

// CreateOtherPayRequest represents an ad-hoc pay item. Amount is always
// positive; the pay type decides whether it is added or deducted.
type CreateOtherPayRequest struct {
	PayType string       `json:"pay_type" validate:"required,max=32"`
	Amount  money.Amount `json:"amount"`
	Note    *string      `json:"note,omitempty"`
}

// CreateLoadRequest represents the request body for creating a load
type CreateLoadRequest struct {
	LoadID        string                  `json:"load_id" validate:"required,max=64"`
	DriverID      int64                   `json:"driver_id" validate:"required,gt=0"`
	LoadPay       money.Amount            `json:"load_pay"`
	Mile          int                     `json:"mile" validate:"gte=0"`
	TotalMiles    int                     `json:"total_miles" validate:"gte=0"`
	InvoiceStatus InvoiceStatus           `json:"invoice_status,omitempty" validate:"omitempty,oneof=Unpaid Invoiced Paid"`
	Note          *string                 `json:"note,omitempty"`
	Stops         []CreateStopRequest     `json:"stops" validate:"dive"`
	OtherPays     []CreateOtherPayRequest `json:"other_pays" validate:"dive"`
}

// UpdateInvoiceStatusRequest moves a load through billing
type UpdateInvoiceStatusRequest struct {
	InvoiceStatus InvoiceStatus `json:"invoice_status" validate:"required,oneof=Unpaid Invoiced Paid"`
}

// LoadResponse adds the derived dates to a load
type LoadResponse struct {
	*Load
	PickupDate   *time.Time `json:"pickup_date"`
	DeliveryDate *time.Time `json:"delivery_date"`
}

// ToResponse converts a Load to a LoadResponse
func (l *Load) ToResponse() *LoadResponse {
	return &LoadResponse{
		Load:         l,
		PickupDate:   l.PickupDate(),
		DeliveryDate: l.DeliveryDate(),
	}
}
