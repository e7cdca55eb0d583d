package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rulesPayload struct {
	FirstName      *string  `json:"FirstName" validate:"required,notblank"`
	Email          *string  `json:"Email" validate:"omitempty,email"`
	ZipCode        *string  `json:"ZipCode" validate:"omitempty,max=5"`
	CostToEmployee *float64 `json:"CostToEmployee" validate:"omitempty,gte=0"`
	BenefitID      *string  `json:"BenefitId" validate:"omitempty,uuid"`
}

func strPtr(s string) *string { return &s }

func TestStructRulesMessages(t *testing.T) {
	rules := NewStructRules(nil)
	cost := -1.0

	violations, err := rules.Check(rulesPayload{
		Email:          strPtr("nope"),
		ZipCode:        strPtr("1234567"),
		CostToEmployee: &cost,
		BenefitID:      strPtr("x"),
	})
	require.NoError(t, err)

	assert.Equal(t, []Violation{
		{Field: "FirstName", Message: "'First Name' must not be empty."},
		{Field: "Email", Message: "'Email' is not a valid email address."},
		{Field: "ZipCode", Message: "The length of 'Zip Code' must be 5 characters or fewer. You entered 7 characters."},
		{Field: "CostToEmployee", Message: "'Cost To Employee' must be greater than or equal to '0'."},
		{Field: "BenefitId", Message: "'Benefit Id' is not in the correct format."},
	}, violations)
}

func TestStructRulesBlankString(t *testing.T) {
	rules := NewStructRules(nil)

	violations, err := rules.Check(rulesPayload{FirstName: strPtr("   ")})
	require.NoError(t, err)
	assert.Equal(t, []Violation{{Field: "FirstName", Message: "'First Name' must not be empty."}}, violations)
}

func TestStructRulesValid(t *testing.T) {
	rules := NewStructRules(nil)

	violations, err := rules.Check(rulesPayload{FirstName: strPtr("John"), Email: strPtr("john@example.com")})
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestStructRulesRejectsNonStruct(t *testing.T) {
	rules := NewStructRules(nil)

	_, err := rules.Check(42)
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"FirstName":            "First Name",
		"SocialSecurityNumber": "Social Security Number",
		"Address1":             "Address1",
		"BenefitId":            "Benefit Id",
		"RecordsPerPage":       "Records Per Page",
		"HTTPStatus":           "HTTP Status",
		"Email":                "Email",
	}
	for in, want := range cases {
		assert.Equal(t, want, DisplayName(in), in)
	}
}
