package company

// Company is the carrier's own profile, printed on settlement statements
type Company struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"company_name"`
	Phone       *string `json:"phone,omitempty"`
	Fax         *string `json:"fax,omitempty"`
	Address     *string `json:"address,omitempty"`
	State       *string `json:"state,omitempty"`
	City        *string `json:"city,omitempty"`
	Zip         *string `json:"zip,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

// Info is the company block of a settlement statement. Every field is null
// when no company profile exists.
type Info struct {
	CompanyName *string `json:"company_name"`
	Phone       *string `json:"phone"`
	Fax         *string `json:"fax"`
	State       *string `json:"state"`
	City        *string `json:"city"`
	Zip         *string `json:"zip"`
	CompanyLogo *string `json:"company_logo"`
}

// ToInfo converts a profile into its statement block; nil yields empty Info
func (c *Company) ToInfo() Info {
	if c == nil {
		return Info{}
	}
	name := c.CompanyName
	return Info{
		CompanyName: &name,
		Phone:       c.Phone,
		Fax:         c.Fax,
		State:       c.State,
		City:        c.City,
		Zip:         c.Zip,
		CompanyLogo: c.LogoURL,
	}
}
