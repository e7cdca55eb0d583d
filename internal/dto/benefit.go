package dto

import (
	"time"

	"github.com/samber/lo"

	"github.com/noah-isme/hr-records-api/internal/models"
)

// EnrollBenefitRequest is the body accepted by POST /employees/{id}/benefits.
type EnrollBenefitRequest struct {
	BenefitID      *string  `json:"BenefitId" validate:"required,notblank,uuid"`
	CostToEmployee *float64 `json:"CostToEmployee" validate:"omitempty,gte=0"`
}

// BenefitResponse is a catalogue entry.
type BenefitResponse struct {
	ID          string  `json:"Id"`
	Name        string  `json:"Name"`
	Description *string `json:"Description"`
	BaseCost    float64 `json:"BaseCost"`
}

// EmployeeBenefitResponse is one enrollment with its effective cost.
type EmployeeBenefitResponse struct {
	ID             string     `json:"Id"`
	EmployeeID     string     `json:"EmployeeId"`
	BenefitID      string     `json:"BenefitId"`
	Name           string     `json:"Name"`
	Description    *string    `json:"Description"`
	Cost           float64    `json:"Cost"`
	CreatedBy      *string    `json:"CreatedBy"`
	CreatedOn      *time.Time `json:"CreatedOn"`
	LastModifiedBy *string    `json:"LastModifiedBy"`
	LastModifiedOn *time.Time `json:"LastModifiedOn"`
}

// ToBenefitResponses maps the catalogue.
func ToBenefitResponses(items []models.Benefit) []BenefitResponse {
	return lo.Map(items, func(item models.Benefit, _ int) BenefitResponse {
		return BenefitResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			BaseCost:    item.BaseCost,
		}
	})
}

// ToEmployeeBenefitResponse maps an enrollment, resolving its effective cost.
func ToEmployeeBenefitResponse(d models.EmployeeBenefitDetail) EmployeeBenefitResponse {
	return EmployeeBenefitResponse{
		ID:             d.ID,
		EmployeeID:     d.EmployeeID,
		BenefitID:      d.BenefitID,
		Name:           d.Name,
		Description:    d.Description,
		Cost:           d.Cost(),
		CreatedBy:      d.CreatedBy,
		CreatedOn:      d.CreatedOn,
		LastModifiedBy: d.LastModifiedBy,
		LastModifiedOn: d.LastModifiedOn,
	}
}

// ToEmployeeBenefitResponses maps all enrollments of an employee.
func ToEmployeeBenefitResponses(items []models.EmployeeBenefitDetail) []EmployeeBenefitResponse {
	return lo.Map(items, func(item models.EmployeeBenefitDetail, _ int) EmployeeBenefitResponse {
		return ToEmployeeBenefitResponse(item)
	})
}
