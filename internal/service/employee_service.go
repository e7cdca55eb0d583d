package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/hr-records-api/internal/dto"
	"github.com/noah-isme/hr-records-api/internal/models"
	"github.com/noah-isme/hr-records-api/internal/repository"
	appErrors "github.com/noah-isme/hr-records-api/pkg/errors"
	"github.com/noah-isme/hr-records-api/pkg/logger"
)

type employeeRepository interface {
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, int, error)
	FindByID(ctx context.Context, id string) (*models.Employee, error)
	Add(t repository.Tracker, employee *models.Employee)
	Update(t repository.Tracker, employee *models.Employee)
	Remove(t repository.Tracker, employee *models.Employee)
}

type unitOfWorkFactory interface {
	Begin() repository.UnitOfWork
}

const employeeCachePrefix = "employees:"

func employeeCacheKey(id string) string {
	return employeeCachePrefix + id
}

// EmployeeService handles employee use-cases. Payloads reach it already validated.
type EmployeeService struct {
	repo     employeeRepository
	uow      unitOfWorkFactory
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewEmployeeService constructs the employee service. cache may be nil.
func NewEmployeeService(repo employeeRepository, uow unitOfWorkFactory, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *EmployeeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{repo: repo, uow: uow, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// List returns one page of employees and its pagination metadata.
func (s *EmployeeService) List(ctx context.Context, req dto.GetAllEmployeesRequest) ([]dto.EmployeeResponse, *models.Pagination, error) {
	filter := req.Filter()
	employees, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list employees")
	}
	pagination := &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}
	return dto.ToEmployeeResponses(employees), pagination, nil
}

// Get returns one employee, reporting whether it was served from cache.
func (s *EmployeeService) Get(ctx context.Context, id string) (*dto.EmployeeResponse, bool, error) {
	var cached dto.EmployeeResponse
	if s.cache.Get(ctx, employeeCacheKey(id), &cached) {
		return &cached, true, nil
	}
	employee, err := s.find(ctx, id)
	if err != nil {
		return nil, false, err
	}
	resp := dto.ToEmployeeResponse(*employee)
	s.cache.Set(ctx, employeeCacheKey(id), resp, s.cacheTTL)
	return &resp, false, nil
}

// Create persists a new employee; creation provenance is stamped at commit.
func (s *EmployeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee := dto.NewEmployee(req)
	uow := s.uow.Begin()
	s.repo.Add(uow, employee)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, s.persistenceError(ctx, err, "create", employee.ID)
	}
	s.logger.Info("employee created", zap.String("employee_id", employee.ID))
	resp := dto.ToEmployeeResponse(*employee)
	return &resp, nil
}

// Update replaces the contact block of an employee.
func (s *EmployeeService) Update(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	dto.ApplyUpdate(employee, req)

	uow := s.uow.Begin()
	s.repo.Update(uow, employee)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, s.persistenceError(ctx, err, "update", id)
	}
	s.cache.Invalidate(ctx, employeeCacheKey(id))
	s.logger.Info("employee updated", zap.String("employee_id", id))
	resp := dto.ToEmployeeResponse(*employee)
	return &resp, nil
}

// Delete removes an employee and its enrollments.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	employee, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	uow := s.uow.Begin()
	s.repo.Remove(uow, employee)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return s.persistenceError(ctx, err, "delete", id)
	}
	s.cache.Invalidate(ctx, employeeCacheKey(id))
	s.logger.Info("employee deleted", zap.String("employee_id", id))
	return nil
}

func (s *EmployeeService) find(ctx context.Context, id string) (*models.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.WithContext(ctx, s.logger).Warn("employee not found", zap.String("employee_id", id))
			return nil, appErrors.Clone(appErrors.ErrNotFound, "employee not found")
		}
		logger.WithContext(ctx, s.logger).Error("load employee failed", zap.String("employee_id", id), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employee")
	}
	return employee, nil
}

func (s *EmployeeService) persistenceError(ctx context.Context, err error, op, id string) error {
	log := logger.WithContext(ctx, s.logger)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn("employee vanished before commit", zap.String("op", op), zap.String("employee_id", id))
		return appErrors.Clone(appErrors.ErrNotFound, "employee not found")
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	log.Error("employee commit failed", zap.String("op", op), zap.String("employee_id", id), zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save employee")
}
