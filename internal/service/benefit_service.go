package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/hr-records-api/internal/dto"
	"github.com/noah-isme/hr-records-api/internal/models"
	"github.com/noah-isme/hr-records-api/internal/repository"
	appErrors "github.com/noah-isme/hr-records-api/pkg/errors"
)

type benefitRepository interface {
	ListBenefits(ctx context.Context) ([]models.Benefit, error)
	FindBenefit(ctx context.Context, id string) (*models.Benefit, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]models.EmployeeBenefitDetail, error)
	FindEnrollment(ctx context.Context, employeeID, benefitID string) (*models.EmployeeBenefitDetail, error)
	Enroll(t repository.Tracker, enrollment *models.EmployeeBenefit)
	Unenroll(t repository.Tracker, enrollment *models.EmployeeBenefit)
}

type employeeFinder interface {
	FindByID(ctx context.Context, id string) (*models.Employee, error)
}

// BenefitService handles the catalogue and employee enrollments.
type BenefitService struct {
	benefits  benefitRepository
	employees employeeFinder
	uow       unitOfWorkFactory
	logger    *zap.Logger
}

// NewBenefitService constructs the benefit service.
func NewBenefitService(benefits benefitRepository, employees employeeFinder, uow unitOfWorkFactory, logger *zap.Logger) *BenefitService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BenefitService{benefits: benefits, employees: employees, uow: uow, logger: logger}
}

// ListBenefits returns the catalogue.
func (s *BenefitService) ListBenefits(ctx context.Context) ([]dto.BenefitResponse, error) {
	benefits, err := s.benefits.ListBenefits(ctx)
	if err != nil {
		s.logger.Error("list benefits failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list benefits")
	}
	return dto.ToBenefitResponses(benefits), nil
}

// ListForEmployee returns the enrollments of an existing employee.
func (s *BenefitService) ListForEmployee(ctx context.Context, employeeID string) ([]dto.EmployeeBenefitResponse, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	details, err := s.benefits.ListForEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list employee benefits failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list employee benefits")
	}
	return dto.ToEmployeeBenefitResponses(details), nil
}

// Enroll adds a benefit to an employee. Enrolling twice in the same benefit is a conflict.
func (s *BenefitService) Enroll(ctx context.Context, employeeID string, req dto.EnrollBenefitRequest) (*dto.EmployeeBenefitResponse, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	benefitID := *req.BenefitID
	benefit, err := s.benefits.FindBenefit(ctx, benefitID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "benefit not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load benefit")
	}

	enrollment := &models.EmployeeBenefit{
		EmployeeID:     employeeID,
		BenefitID:      benefit.ID,
		CostToEmployee: req.CostToEmployee,
	}
	uow := s.uow.Begin()
	s.benefits.Enroll(uow, enrollment)
	if _, err := uow.SaveChanges(ctx); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "employee is already enrolled in this benefit")
		}
		if repository.IsForeignKeyViolation(err) {
			s.logger.Warn("employee vanished before enrollment", zap.String("employee_id", employeeID), zap.String("benefit_id", benefitID))
			return nil, appErrors.Clone(appErrors.ErrNotFound, "employee not found")
		}
		s.logger.Error("enroll benefit failed", zap.String("employee_id", employeeID), zap.String("benefit_id", benefitID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enroll benefit")
	}
	s.logger.Info("benefit enrolled", zap.String("employee_id", employeeID), zap.String("benefit_id", benefitID))

	resp := dto.ToEmployeeBenefitResponse(models.EmployeeBenefitDetail{
		EmployeeBenefit: *enrollment,
		Name:            benefit.Name,
		Description:     benefit.Description,
		BaseCost:        benefit.BaseCost,
	})
	return &resp, nil
}

// Unenroll removes a benefit from an employee.
func (s *BenefitService) Unenroll(ctx context.Context, employeeID, benefitID string) error {
	detail, err := s.benefits.FindEnrollment(ctx, employeeID, benefitID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollment")
	}
	uow := s.uow.Begin()
	s.benefits.Unenroll(uow, &detail.EmployeeBenefit)
	if _, err := uow.SaveChanges(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
		}
		s.logger.Error("unenroll benefit failed", zap.String("employee_id", employeeID), zap.String("benefit_id", benefitID), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove enrollment")
	}
	s.logger.Info("benefit unenrolled", zap.String("employee_id", employeeID), zap.String("benefit_id", benefitID))
	return nil
}

func (s *BenefitService) requireEmployee(ctx context.Context, id string) error {
	if _, err := s.employees.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "employee not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employee")
	}
	return nil
}
