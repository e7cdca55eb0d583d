package models

// Benefit is an entry in the benefits catalogue.
type Benefit struct {
	ID          string  `db:"id" json:"Id"`
	Name        string  `db:"name" json:"Name"`
	Description *string `db:"description" json:"Description"`
	BaseCost    float64 `db:"base_cost" json:"BaseCost"`
}

// EmployeeBenefit enrolls an employee in a benefit, optionally overriding its cost.
type EmployeeBenefit struct {
	ID             string   `db:"id" json:"Id"`
	EmployeeID     string   `db:"employee_id" json:"EmployeeId"`
	BenefitID      string   `db:"benefit_id" json:"BenefitId"`
	CostToEmployee *float64 `db:"cost_to_employee" json:"CostToEmployee"`
	AuditFields
}

// EmployeeBenefitDetail joins an enrollment with its catalogue entry.
type EmployeeBenefitDetail struct {
	EmployeeBenefit
	Name        string  `db:"name" json:"Name"`
	Description *string `db:"description" json:"Description"`
	BaseCost    float64 `db:"base_cost" json:"BaseCost"`
}

// Cost is the enrollment override when present, otherwise the catalogue base cost.
func (d EmployeeBenefitDetail) Cost() float64 {
	if d.CostToEmployee != nil {
		return *d.CostToEmployee
	}
	return d.BaseCost
}
