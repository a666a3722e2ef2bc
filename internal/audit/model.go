package audit

import "time"

// Action is what happened to the audited entity
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionSettle Action = "settle"
)

// Entity types recorded in the log
const (
	EntityUser       = "USER"
	EntityCompany    = "COMPANY"
	EntityDriver     = "DRIVER"
	EntityPayRate    = "PAY_RATE"
	EntityLoad       = "LOAD"
	EntityExpense    = "DRIVER_EXPENSE"
	EntityFuelTax    = "FUEL_TAX_RATE"
	EntityIftaRecord = "IFTA_RECORD"
	EntitySettlement = "DRIVER_PAY"
)

// Entry is one append-only audit log row
type Entry struct {
	ID         int64     `json:"id"`
	ActorID    *int64    `json:"actor_id,omitempty"`
	Action     Action    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   *int64    `json:"entity_id,omitempty"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewEntry builds an entry for a single entity
func NewEntry(actorID *int64, action Action, entityType string, entityID int64, details string) *Entry {
	return &Entry{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   &entityID,
		Details:    details,
	}
}
