package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/samber/lo"

	"github.com/noah-isme/hr-records-api/internal/dto"
	"github.com/noah-isme/hr-records-api/internal/models"
	"github.com/noah-isme/hr-records-api/internal/validation"
	appErrors "github.com/noah-isme/hr-records-api/pkg/errors"
)

type benefitFinder interface {
	FindBenefit(ctx context.Context, id string) (*models.Benefit, error)
}

// RegisterValidators binds the request payload validators. Rules that need
// stored state read through employees and benefits.
func RegisterValidators(reg *validation.Registry, rules *validation.StructRules, employees employeeFinder, benefits benefitFinder) {
	validation.Register(reg, validation.Func[dto.CreateEmployeeRequest](func(_ context.Context, _ validation.Call, req dto.CreateEmployeeRequest) ([]validation.Violation, error) {
		return rules.Check(req)
	}))

	validation.Register(reg, validation.Func[dto.UpdateEmployeeRequest](func(ctx context.Context, call validation.Call, req dto.UpdateEmployeeRequest) ([]validation.Violation, error) {
		violations, err := rules.Check(req)
		if err != nil {
			return nil, err
		}
		if !isBlank(req.Address1) {
			return violations, nil
		}
		current, err := employees.FindByID(ctx, call.Param("id"))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "employee not found")
			}
			return nil, err
		}
		if !isBlank(current.Address1) {
			violations = append(violations, validation.Violation{Field: "Address1", Message: "Address1 must not be empty."})
		}
		return violations, nil
	}))

	validation.Register(reg, validation.Func[dto.GetAllEmployeesRequest](func(_ context.Context, _ validation.Call, req dto.GetAllEmployeesRequest) ([]validation.Violation, error) {
		return rules.Check(req)
	}))

	validation.Register(reg, validation.Func[dto.ExportEmployeesRequest](func(_ context.Context, _ validation.Call, req dto.ExportEmployeesRequest) ([]validation.Violation, error) {
		return rules.Check(req)
	}))

	validation.Register(reg, validation.Func[dto.EnrollBenefitRequest](func(ctx context.Context, _ validation.Call, req dto.EnrollBenefitRequest) ([]validation.Violation, error) {
		violations, err := rules.Check(req)
		if err != nil {
			return nil, err
		}
		if req.BenefitID == nil || hasViolation(violations, "BenefitId") {
			return violations, nil
		}
		if _, err := benefits.FindBenefit(ctx, *req.BenefitID); err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return nil, err
			}
			violations = append(violations, validation.Violation{Field: "BenefitId", Message: "'Benefit Id' must reference an existing benefit."})
		}
		return violations, nil
	}))
}

func isBlank(v *string) bool {
	return v == nil || strings.TrimSpace(*v) == ""
}

func hasViolation(violations []validation.Violation, field string) bool {
	return lo.ContainsBy(violations, func(v validation.Violation) bool { return v.Field == field })
}
