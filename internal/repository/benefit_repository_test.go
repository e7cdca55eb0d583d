package repository

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenefitRepositoryListForEmployee(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewBenefitRepository(db)

	rows := sqlmock.NewRows([]string{"id", "employee_id", "benefit_id", "cost_to_employee", "created_by", "created_on", "last_modified_by", "last_modified_on", "name", "description", "base_cost"}).
		AddRow("eb1", "e1", "b1", nil, nil, nil, nil, nil, "Health", "Medical plan", 100.0).
		AddRow("eb2", "e1", "b2", 25.5, nil, nil, nil, nil, "Dental", nil, 50.0)
	mock.ExpectQuery("FROM employee_benefits eb\\s+JOIN benefits b ON b.id = eb.benefit_id WHERE eb.employee_id = \\$1").
		WithArgs("e1").
		WillReturnRows(rows)

	details, err := repo.ListForEmployee(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, 100.0, details[0].Cost())
	assert.Equal(t, 25.5, details[1].Cost())
	assert.Equal(t, "Medical plan", *details[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBenefitRepositoryFindBenefit(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewBenefitRepository(db)

	const healthID = "6f2d4c3e-0a51-4d55-9a7e-2b8f3c1d0e01"
	mock.ExpectQuery("FROM benefits WHERE id = \\$1").
		WithArgs(healthID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "base_cost"}).AddRow(healthID, "Health", nil, 100.0))

	benefit, err := repo.FindBenefit(context.Background(), healthID)
	require.NoError(t, err)
	assert.Equal(t, "Health", benefit.Name)
	assert.Nil(t, benefit.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBenefitRepositoryMalformedIDsMatchNothing(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewBenefitRepository(db)

	_, err := repo.FindBenefit(context.Background(), "b1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = repo.FindEnrollment(context.Background(), "not-a-uuid", "6f2d4c3e-0a51-4d55-9a7e-2b8f3c1d0e01")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
