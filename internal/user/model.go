package user

import "time"

// User is a back-office account. Drivers link to one for their name and
// contact details.
type User struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Telephone   *string   `json:"telephone,omitempty"`
	Address     *string   `json:"address,omitempty"`
	CompanyName *string   `json:"company_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
