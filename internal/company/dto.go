package company

// UpsertCompanyRequest replaces the company profile
type UpsertCompanyRequest struct {
	CompanyName string  `json:"company_name" validate:"required,max=200"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Fax         *string `json:"fax,omitempty" validate:"omitempty,max=32"`
	Address     *string `json:"address,omitempty"`
	State       *string `json:"state,omitempty" validate:"omitempty,len=2"`
	City        *string `json:"city,omitempty"`
	Zip         *string `json:"zip,omitempty" validate:"omitempty,max=10"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
}
