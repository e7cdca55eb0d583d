package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hr-records-api/internal/audit"
	"github.com/noah-isme/hr-records-api/internal/models"
)

const enrollmentSelect = `SELECT eb.id, eb.employee_id, eb.benefit_id, eb.cost_to_employee,
        eb.created_by, eb.created_on, eb.last_modified_by, eb.last_modified_on,
        b.name, b.description, b.base_cost
        FROM employee_benefits eb
        JOIN benefits b ON b.id = eb.benefit_id`

// BenefitRepository manages the benefits catalogue and employee enrollments.
type BenefitRepository struct {
	db *sqlx.DB
}

// NewBenefitRepository constructs a BenefitRepository.
func NewBenefitRepository(db *sqlx.DB) *BenefitRepository {
	return &BenefitRepository{db: db}
}

// ListBenefits returns the whole catalogue ordered by name.
func (r *BenefitRepository) ListBenefits(ctx context.Context) ([]models.Benefit, error) {
	benefits := []models.Benefit{}
	if err := r.db.SelectContext(ctx, &benefits, "SELECT id, name, description, base_cost FROM benefits ORDER BY name"); err != nil {
		return nil, fmt.Errorf("list benefits: %w", err)
	}
	return benefits, nil
}

// FindBenefit fetches one catalogue entry.
func (r *BenefitRepository) FindBenefit(ctx context.Context, id string) (*models.Benefit, error) {
	if err := keyLookup(id); err != nil {
		return nil, fmt.Errorf("find benefit %s: %w", id, err)
	}
	var benefit models.Benefit
	if err := r.db.GetContext(ctx, &benefit, "SELECT id, name, description, base_cost FROM benefits WHERE id = $1", id); err != nil {
		return nil, fmt.Errorf("find benefit %s: %w", id, err)
	}
	return &benefit, nil
}

// ListForEmployee returns the enrollments of an employee joined with the catalogue.
func (r *BenefitRepository) ListForEmployee(ctx context.Context, employeeID string) ([]models.EmployeeBenefitDetail, error) {
	details := []models.EmployeeBenefitDetail{}
	if err := r.db.SelectContext(ctx, &details, enrollmentSelect+" WHERE eb.employee_id = $1 ORDER BY b.name", employeeID); err != nil {
		return nil, fmt.Errorf("list employee benefits: %w", err)
	}
	return details, nil
}

// FindEnrollment fetches the enrollment of an employee in a benefit.
func (r *BenefitRepository) FindEnrollment(ctx context.Context, employeeID, benefitID string) (*models.EmployeeBenefitDetail, error) {
	if err := keyLookup(employeeID, benefitID); err != nil {
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	var detail models.EmployeeBenefitDetail
	if err := r.db.GetContext(ctx, &detail, enrollmentSelect+" WHERE eb.employee_id = $1 AND eb.benefit_id = $2", employeeID, benefitID); err != nil {
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	return &detail, nil
}

// Enroll tracks a new enrollment.
func (r *BenefitRepository) Enroll(t Tracker, enrollment *models.EmployeeBenefit) {
	if enrollment.ID == "" {
		enrollment.ID = uuid.NewString()
	}
	t.Track(enrollment, audit.Added, func(ctx context.Context, tx sqlx.ExtContext) error {
		const query = `INSERT INTO employee_benefits (id, employee_id, benefit_id, cost_to_employee, created_by, created_on, last_modified_by, last_modified_on)
        VALUES (:id, :employee_id, :benefit_id, :cost_to_employee, :created_by, :created_on, :last_modified_by, :last_modified_on)`
		if _, err := sqlx.NamedExecContext(ctx, tx, query, enrollment); err != nil {
			return fmt.Errorf("insert employee benefit: %w", err)
		}
		return nil
	})
}

// Unenroll tracks removal of an enrollment.
func (r *BenefitRepository) Unenroll(t Tracker, enrollment *models.EmployeeBenefit) {
	t.Track(enrollment, audit.Removed, func(ctx context.Context, tx sqlx.ExtContext) error {
		if err := ensureAffected(tx.ExecContext(ctx, "DELETE FROM employee_benefits WHERE id = $1", enrollment.ID)); err != nil {
			return fmt.Errorf("delete employee benefit: %w", err)
		}
		return nil
	})
}
