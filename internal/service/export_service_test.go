package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-records-api/internal/models"
	"github.com/noah-isme/hr-records-api/pkg/clock"
	appErrors "github.com/noah-isme/hr-records-api/pkg/errors"
)

func TestExportServiceCSV(t *testing.T) {
	created := jan1
	repo := newFakeEmployeeRepo(models.Employee{
		ID: "e1", FirstName: "Ada", LastName: "Lovelace", Email: strPtr("ada@example.com"),
		AuditFields: models.AuditFields{CreatedOn: &created},
	})
	svc := NewExportService(repo, clock.NewFixed(feb1), zap.NewNop())

	result, err := svc.EmployeeRoster(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "employees-20220201.csv", result.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", result.ContentType)

	lines := strings.Split(strings.TrimSpace(string(result.Body)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Id,First Name,Last Name,Email,Phone Number,City,State,Created On,Last Modified On", lines[0])
	assert.Equal(t, "e1,Ada,Lovelace,ada@example.com,,,,2022-01-01T00:00:00Z,", lines[1])
}

func TestExportServicePDF(t *testing.T) {
	svc := NewExportService(newFakeEmployeeRepo(), clock.NewFixed(feb1), nil)

	result, err := svc.EmployeeRoster(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "employees-20220201.pdf", result.Filename)
	assert.True(t, strings.HasPrefix(string(result.Body), "%PDF-"))
}

func TestExportServiceFailures(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewExportService(repo, clock.NewFixed(feb1), nil)

	_, err := svc.EmployeeRoster(context.Background(), "xlsx")
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)

	repo.listErr = errors.New("db down")
	_, err = svc.EmployeeRoster(context.Background(), "csv")
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}
