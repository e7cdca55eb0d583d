package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hr-records-api/internal/audit"
	"github.com/noah-isme/hr-records-api/internal/models"
)

const employeeColumns = `id, first_name, last_name, social_security_number, address1, address2, city, state, zip_code, phone_number, email,
        created_by, created_on, last_modified_by, last_modified_on`

// EmployeeRepository manages persistence for employee records.
type EmployeeRepository struct {
	db *sqlx.DB
}

// NewEmployeeRepository constructs an EmployeeRepository.
func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// List returns one page of employees matching the substring filters, ordered by id.
func (r *EmployeeRepository) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, int, error) {
	var args []interface{}
	conditions := []string{"1=1"}

	if filter.FirstNameContains != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(first_name) LIKE $%d", len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.FirstNameContains)+"%")
	}
	if filter.LastNameContains != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(last_name) LIKE $%d", len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.LastNameContains)+"%")
	}
	where := strings.Join(conditions, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 100
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s FROM employees WHERE %s ORDER BY last_name, first_name, id LIMIT %d OFFSET %d", employeeColumns, where, size, offset)
	employees := []models.Employee{}
	if err := r.db.SelectContext(ctx, &employees, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM employees WHERE "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}
	return employees, total, nil
}

// ListAll returns every employee for exports.
func (r *EmployeeRepository) ListAll(ctx context.Context) ([]models.Employee, error) {
	employees := []models.Employee{}
	query := fmt.Sprintf("SELECT %s FROM employees ORDER BY last_name, first_name, id", employeeColumns)
	if err := r.db.SelectContext(ctx, &employees, query); err != nil {
		return nil, fmt.Errorf("list all employees: %w", err)
	}
	return employees, nil
}

// FindByID fetches an employee. A missing row, or an id that is not a UUID,
// is reported as sql.ErrNoRows.
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	if err := keyLookup(id); err != nil {
		return nil, fmt.Errorf("find employee %s: %w", id, err)
	}
	var employee models.Employee
	query := fmt.Sprintf("SELECT %s FROM employees WHERE id = $1", employeeColumns)
	if err := r.db.GetContext(ctx, &employee, query, id); err != nil {
		return nil, fmt.Errorf("find employee %s: %w", id, err)
	}
	return &employee, nil
}

// Add tracks a new employee. The ID is assigned immediately so callers can
// reference it before commit.
func (r *EmployeeRepository) Add(t Tracker, employee *models.Employee) {
	if employee.ID == "" {
		employee.ID = uuid.NewString()
	}
	t.Track(employee, audit.Added, func(ctx context.Context, tx sqlx.ExtContext) error {
		const query = `INSERT INTO employees (id, first_name, last_name, social_security_number, address1, address2, city, state, zip_code, phone_number, email,
        created_by, created_on, last_modified_by, last_modified_on)
        VALUES (:id, :first_name, :last_name, :social_security_number, :address1, :address2, :city, :state, :zip_code, :phone_number, :email,
        :created_by, :created_on, :last_modified_by, :last_modified_on)`
		if _, err := sqlx.NamedExecContext(ctx, tx, query, employee); err != nil {
			return fmt.Errorf("insert employee: %w", err)
		}
		return nil
	})
}

// Update tracks a modified employee. Creation provenance is never rewritten.
func (r *EmployeeRepository) Update(t Tracker, employee *models.Employee) {
	t.Track(employee, audit.Modified, func(ctx context.Context, tx sqlx.ExtContext) error {
		const query = `UPDATE employees SET address1 = :address1, address2 = :address2, city = :city, state = :state, zip_code = :zip_code,
        phone_number = :phone_number, email = :email, last_modified_by = :last_modified_by, last_modified_on = :last_modified_on WHERE id = :id`
		if err := ensureAffected(sqlx.NamedExecContext(ctx, tx, query, employee)); err != nil {
			return fmt.Errorf("update employee: %w", err)
		}
		return nil
	})
}

// Remove tracks an employee deletion. Enrollments cascade in the schema.
func (r *EmployeeRepository) Remove(t Tracker, employee *models.Employee) {
	t.Track(employee, audit.Removed, func(ctx context.Context, tx sqlx.ExtContext) error {
		if err := ensureAffected(tx.ExecContext(ctx, "DELETE FROM employees WHERE id = $1", employee.ID)); err != nil {
			return fmt.Errorf("delete employee: %w", err)
		}
		return nil
	})
}
