package dto

import (
	"time"

	"github.com/samber/lo"

	"github.com/noah-isme/hr-records-api/internal/models"
)

// CreateEmployeeRequest is the body accepted by POST /employees.
type CreateEmployeeRequest struct {
	FirstName            *string `json:"FirstName" validate:"required,notblank"`
	LastName             *string `json:"LastName" validate:"required,notblank"`
	SocialSecurityNumber *string `json:"SocialSecurityNumber" validate:"omitempty,max=11"`
	Address1             *string `json:"Address1" validate:"omitempty,max=200"`
	Address2             *string `json:"Address2" validate:"omitempty,max=200"`
	City                 *string `json:"City" validate:"omitempty,max=100"`
	State                *string `json:"State" validate:"omitempty,max=50"`
	ZipCode              *string `json:"ZipCode" validate:"omitempty,max=10"`
	PhoneNumber          *string `json:"PhoneNumber" validate:"omitempty,max=20"`
	Email                *string `json:"Email" validate:"omitempty,email"`
}

// UpdateEmployeeRequest is the body accepted by PUT /employees/{id}. It
// replaces the contact block; names and social security number are immutable.
type UpdateEmployeeRequest struct {
	Address1    *string `json:"Address1" validate:"omitempty,max=200"`
	Address2    *string `json:"Address2" validate:"omitempty,max=200"`
	City        *string `json:"City" validate:"omitempty,max=100"`
	State       *string `json:"State" validate:"omitempty,max=50"`
	ZipCode     *string `json:"ZipCode" validate:"omitempty,max=10"`
	PhoneNumber *string `json:"PhoneNumber" validate:"omitempty,max=20"`
	Email       *string `json:"Email" validate:"omitempty,email"`
}

// GetAllEmployeesRequest carries the query string of GET /employees.
type GetAllEmployeesRequest struct {
	Page              *int   `form:"page" json:"Page" validate:"omitempty,gte=1"`
	RecordsPerPage    *int   `form:"recordsPerPage" json:"RecordsPerPage" validate:"omitempty,gte=1,lte=100"`
	FirstNameContains string `form:"firstNameContains" json:"FirstNameContains" validate:"omitempty,max=100"`
	LastNameContains  string `form:"lastNameContains" json:"LastNameContains" validate:"omitempty,max=100"`
}

// Defaults applied when the list query omits paging.
const (
	DefaultPage           = 1
	DefaultRecordsPerPage = 100
)

// Filter converts the query into repository filters.
func (r GetAllEmployeesRequest) Filter() models.EmployeeFilter {
	return models.EmployeeFilter{
		FirstNameContains: r.FirstNameContains,
		LastNameContains:  r.LastNameContains,
		Page:              lo.FromPtrOr(r.Page, DefaultPage),
		PageSize:          lo.FromPtrOr(r.RecordsPerPage, DefaultRecordsPerPage),
	}
}

// ExportEmployeesRequest carries the query string of GET /employees/export.
type ExportEmployeesRequest struct {
	Format string `form:"format" json:"Format" validate:"omitempty,oneof=csv pdf"`
}

// EmployeeResponse is the external representation of an employee.
type EmployeeResponse struct {
	ID             string     `json:"Id"`
	FirstName      string     `json:"FirstName"`
	LastName       string     `json:"LastName"`
	Address1       *string    `json:"Address1"`
	Address2       *string    `json:"Address2"`
	City           *string    `json:"City"`
	State          *string    `json:"State"`
	ZipCode        *string    `json:"ZipCode"`
	PhoneNumber    *string    `json:"PhoneNumber"`
	Email          *string    `json:"Email"`
	CreatedBy      *string    `json:"CreatedBy"`
	CreatedOn      *time.Time `json:"CreatedOn"`
	LastModifiedBy *string    `json:"LastModifiedBy"`
	LastModifiedOn *time.Time `json:"LastModifiedOn"`
}

// NewEmployee builds the entity for a validated create request.
func NewEmployee(req CreateEmployeeRequest) *models.Employee {
	return &models.Employee{
		FirstName:            lo.FromPtr(req.FirstName),
		LastName:             lo.FromPtr(req.LastName),
		SocialSecurityNumber: req.SocialSecurityNumber,
		Address1:             req.Address1,
		Address2:             req.Address2,
		City:                 req.City,
		State:                req.State,
		ZipCode:              req.ZipCode,
		PhoneNumber:          req.PhoneNumber,
		Email:                req.Email,
	}
}

// ApplyUpdate replaces the contact block of e with req. Absent fields clear
// the stored value.
func ApplyUpdate(e *models.Employee, req UpdateEmployeeRequest) {
	e.Address1 = req.Address1
	e.Address2 = req.Address2
	e.City = req.City
	e.State = req.State
	e.ZipCode = req.ZipCode
	e.PhoneNumber = req.PhoneNumber
	e.Email = req.Email
}

// ToEmployeeResponse maps an entity for output. The social security number is never echoed.
func ToEmployeeResponse(e models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Address1:       e.Address1,
		Address2:       e.Address2,
		City:           e.City,
		State:          e.State,
		ZipCode:        e.ZipCode,
		PhoneNumber:    e.PhoneNumber,
		Email:          e.Email,
		CreatedBy:      e.CreatedBy,
		CreatedOn:      e.CreatedOn,
		LastModifiedBy: e.LastModifiedBy,
		LastModifiedOn: e.LastModifiedOn,
	}
}

// ToEmployeeResponses maps a page of entities.
func ToEmployeeResponses(items []models.Employee) []EmployeeResponse {
	return lo.Map(items, func(item models.Employee, _ int) EmployeeResponse {
		return ToEmployeeResponse(item)
	})
}
