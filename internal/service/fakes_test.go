package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hr-records-api/internal/audit"
	"github.com/noah-isme/hr-records-api/internal/models"
	"github.com/noah-isme/hr-records-api/internal/repository"
	"github.com/noah-isme/hr-records-api/pkg/clock"
)

var (
	jan1 = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	feb1 = time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)
)

type trackedChange struct {
	entity any
	state  audit.State
	write  repository.WriteFunc
}

// memoryUnitOfWork stamps and applies writes without a database.
type memoryUnitOfWork struct {
	stamper *audit.Stamper
	pending []trackedChange
	err     error
}

func (u *memoryUnitOfWork) Track(entity any, state audit.State, write repository.WriteFunc) {
	u.pending = append(u.pending, trackedChange{entity: entity, state: state, write: write})
}

func (u *memoryUnitOfWork) Entries() []audit.Entry {
	out := make([]audit.Entry, len(u.pending))
	for i, p := range u.pending {
		out[i] = audit.Entry{Entity: p.entity, State: p.state}
	}
	return out
}

func (u *memoryUnitOfWork) SaveChanges(ctx context.Context) (audit.Result, error) {
	if u.err != nil {
		return audit.Result{}, u.err
	}
	result := u.stamper.Stamp(u)
	for _, p := range u.pending {
		if err := p.write(ctx, nil); err != nil {
			return audit.Result{}, err
		}
	}
	u.pending = nil
	return result, nil
}

type memoryUnitOfWorkFactory struct {
	stamper *audit.Stamper
	err     error
	opened  int
}

func newMemoryUnitOfWorkFactory(clk clock.Clock) *memoryUnitOfWorkFactory {
	return &memoryUnitOfWorkFactory{stamper: audit.NewStamper(clk, audit.Actors{})}
}

func (f *memoryUnitOfWorkFactory) Begin() repository.UnitOfWork {
	f.opened++
	return &memoryUnitOfWork{stamper: f.stamper, err: f.err}
}

type fakeEmployeeRepo struct {
	employees  map[string]models.Employee
	lookups    int
	lastFilter models.EmployeeFilter
	listErr    error
}

func newFakeEmployeeRepo(seed ...models.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]models.Employee)}
	for _, e := range seed {
		repo.employees[e.ID] = e
	}
	return repo
}

func (r *fakeEmployeeRepo) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, int, error) {
	r.lastFilter = filter
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	out := make([]models.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, len(out), nil
}

func (r *fakeEmployeeRepo) ListAll(ctx context.Context) ([]models.Employee, error) {
	out, _, err := r.List(ctx, models.EmployeeFilter{})
	return out, err
}

func (r *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	r.lookups++
	e, ok := r.employees[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &e, nil
}

func (r *fakeEmployeeRepo) Add(t repository.Tracker, employee *models.Employee) {
	if employee.ID == "" {
		employee.ID = "generated"
	}
	t.Track(employee, audit.Added, func(context.Context, sqlx.ExtContext) error {
		r.employees[employee.ID] = *employee
		return nil
	})
}

func (r *fakeEmployeeRepo) Update(t repository.Tracker, employee *models.Employee) {
	t.Track(employee, audit.Modified, func(context.Context, sqlx.ExtContext) error {
		if _, ok := r.employees[employee.ID]; !ok {
			return sql.ErrNoRows
		}
		r.employees[employee.ID] = *employee
		return nil
	})
}

func (r *fakeEmployeeRepo) Remove(t repository.Tracker, employee *models.Employee) {
	t.Track(employee, audit.Removed, func(context.Context, sqlx.ExtContext) error {
		delete(r.employees, employee.ID)
		return nil
	})
}

type fakeBenefitRepo struct {
	benefits    map[string]models.Benefit
	enrollments []models.EmployeeBenefit
	enrollErr   error
}

func (r *fakeBenefitRepo) ListBenefits(ctx context.Context) ([]models.Benefit, error) {
	out := make([]models.Benefit, 0, len(r.benefits))
	for _, b := range r.benefits {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBenefitRepo) FindBenefit(ctx context.Context, id string) (*models.Benefit, error) {
	b, ok := r.benefits[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &b, nil
}

func (r *fakeBenefitRepo) ListForEmployee(ctx context.Context, employeeID string) ([]models.EmployeeBenefitDetail, error) {
	var out []models.EmployeeBenefitDetail
	for _, eb := range r.enrollments {
		if eb.EmployeeID != employeeID {
			continue
		}
		b := r.benefits[eb.BenefitID]
		out = append(out, models.EmployeeBenefitDetail{EmployeeBenefit: eb, Name: b.Name, Description: b.Description, BaseCost: b.BaseCost})
	}
	return out, nil
}

func (r *fakeBenefitRepo) FindEnrollment(ctx context.Context, employeeID, benefitID string) (*models.EmployeeBenefitDetail, error) {
	for _, eb := range r.enrollments {
		if eb.EmployeeID == employeeID && eb.BenefitID == benefitID {
			b := r.benefits[eb.BenefitID]
			return &models.EmployeeBenefitDetail{EmployeeBenefit: eb, Name: b.Name, BaseCost: b.BaseCost}, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeBenefitRepo) Enroll(t repository.Tracker, enrollment *models.EmployeeBenefit) {
	if enrollment.ID == "" {
		enrollment.ID = "eb-generated"
	}
	t.Track(enrollment, audit.Added, func(context.Context, sqlx.ExtContext) error {
		if r.enrollErr != nil {
			return r.enrollErr
		}
		r.enrollments = append(r.enrollments, *enrollment)
		return nil
	})
}

func (r *fakeBenefitRepo) Unenroll(t repository.Tracker, enrollment *models.EmployeeBenefit) {
	t.Track(enrollment, audit.Removed, func(context.Context, sqlx.ExtContext) error {
		for i, eb := range r.enrollments {
			if eb.ID == enrollment.ID {
				r.enrollments = append(r.enrollments[:i], r.enrollments[i+1:]...)
				return nil
			}
		}
		return sql.ErrNoRows
	})
}

func strPtr(v string) *string { return &v }
