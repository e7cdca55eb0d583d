package audit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-records-api/internal/audit"
	"github.com/noah-isme/hr-records-api/internal/models"
	"github.com/noah-isme/hr-records-api/pkg/clock"
)

type report []audit.Entry

func (r report) Entries() []audit.Entry { return r }

var (
	jan = clock.MustParse("2022-01-01T00:00:00Z")
	feb = clock.MustParse("2022-02-01T00:00:00Z")
)

func TestStampAddedSetsCreationOnly(t *testing.T) {
	employee := &models.Employee{FirstName: "John", LastName: "Doe"}
	stamper := audit.NewStamper(clock.NewFixed(jan), audit.Actors{})

	res := stamper.Stamp(report{{Entity: employee, State: audit.Added}})

	assert.Equal(t, audit.Result{Created: 1}, res)
	require.NotNil(t, employee.CreatedOn)
	assert.Equal(t, jan, *employee.CreatedOn)
	assert.Equal(t, audit.DefaultCreateActor, *employee.CreatedBy)
	assert.Nil(t, employee.LastModifiedOn)
	assert.Nil(t, employee.LastModifiedBy)
}

func TestStampModifiedLeavesCreationUntouched(t *testing.T) {
	c := clock.NewFixed(jan)
	stamper := audit.NewStamper(c, audit.Actors{Create: "creator", Update: "updater"})
	employee := &models.Employee{FirstName: "John", LastName: "Doe"}

	stamper.Stamp(report{{Entity: employee, State: audit.Added}})
	c.Set(feb)
	res := stamper.Stamp(report{{Entity: employee, State: audit.Modified}})

	assert.Equal(t, audit.Result{Modified: 1}, res)
	assert.Equal(t, jan, *employee.CreatedOn)
	assert.Equal(t, "creator", *employee.CreatedBy)
	assert.Equal(t, feb, *employee.LastModifiedOn)
	assert.Equal(t, "updater", *employee.LastModifiedBy)
}

func TestStampIgnoresUnchangedAndRemoved(t *testing.T) {
	createdBy := "someone"
	created := jan
	unchanged := &models.Employee{AuditFields: models.AuditFields{CreatedBy: &createdBy, CreatedOn: &created}}
	removed := &models.Employee{}
	stamper := audit.NewStamper(clock.NewFixed(feb), audit.Actors{})

	res := stamper.Stamp(report{
		{Entity: unchanged, State: audit.Unchanged},
		{Entity: removed, State: audit.Removed},
	})

	assert.Equal(t, audit.Result{}, res)
	assert.Equal(t, jan, *unchanged.CreatedOn)
	assert.Nil(t, unchanged.LastModifiedOn)
	assert.Equal(t, models.AuditFields{}, removed.AuditFields)
}

func TestStampRepeatedRefreshesTimestamp(t *testing.T) {
	c := clock.NewFixed(jan)
	stamper := audit.NewStamper(c, audit.Actors{})
	employee := &models.Employee{}
	pending := report{{Entity: employee, State: audit.Added}}

	stamper.Stamp(pending)
	c.Advance(time.Minute)
	stamper.Stamp(pending)

	assert.Equal(t, jan.Add(time.Minute), *employee.CreatedOn)
}

func TestStampSkipsEntitiesWithoutCapability(t *testing.T) {
	benefit := &models.Benefit{Name: "Dental"}
	enrollment := &models.EmployeeBenefit{BenefitID: "b1"}
	stamper := audit.NewStamper(clock.NewFixed(jan), audit.Actors{})

	res := stamper.Stamp(report{
		{Entity: benefit, State: audit.Added},
		{Entity: enrollment, State: audit.Added},
	})

	assert.Equal(t, audit.Result{Created: 1}, res)
	assert.Equal(t, jan, *enrollment.CreatedOn)
}

func TestStampNilReport(t *testing.T) {
	stamper := audit.NewStamper(nil, audit.Actors{})
	assert.Equal(t, audit.Result{}, stamper.Stamp(nil))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "added", audit.Added.String())
	assert.Equal(t, "modified", audit.Modified.String())
	assert.Equal(t, "removed", audit.Removed.String())
	assert.Equal(t, "unchanged", audit.Unchanged.String())
}
