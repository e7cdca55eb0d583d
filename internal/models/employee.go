package models

// Employee is a person on the HR roster.
type Employee struct {
	ID                   string  `db:"id" json:"Id"`
	FirstName            string  `db:"first_name" json:"FirstName"`
	LastName             string  `db:"last_name" json:"LastName"`
	SocialSecurityNumber *string `db:"social_security_number" json:"SocialSecurityNumber"`
	Address1             *string `db:"address1" json:"Address1"`
	Address2             *string `db:"address2" json:"Address2"`
	City                 *string `db:"city" json:"City"`
	State                *string `db:"state" json:"State"`
	ZipCode              *string `db:"zip_code" json:"ZipCode"`
	PhoneNumber          *string `db:"phone_number" json:"PhoneNumber"`
	Email                *string `db:"email" json:"Email"`
	AuditFields
}

// EmployeeFilter captures paging and substring filters for listing employees.
type EmployeeFilter struct {
	FirstNameContains string
	LastNameContains  string
	Page              int
	PageSize          int
}
