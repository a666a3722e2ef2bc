package user

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	FirstName   string  `json:"first_name" validate:"required,max=100"`
	LastName    string  `json:"last_name" validate:"required,max=100"`
	Telephone   *string `json:"telephone,omitempty" validate:"omitempty,max=32"`
	Address     *string `json:"address,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
}

// UpdateUserRequest represents the request body for updating a user
type UpdateUserRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Telephone   *string `json:"telephone,omitempty" validate:"omitempty,max=32"`
	Address     *string `json:"address,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
}

// UserResponse represents the response for a single user
type UserResponse struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Telephone   *string `json:"telephone,omitempty"`
	Address     *string `json:"address,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// ToResponse converts a User model to a UserResponse DTO
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Telephone:   u.Telephone,
		Address:     u.Address,
		CompanyName: u.CompanyName,
		CreatedAt:   u.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
