package validation

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeGroupsByFieldInEncounterOrder(t *testing.T) {
	var o Outcome
	assert.True(t, o.Valid())

	o.Add(
		Violation{Field: "LastName", Message: "b"},
		Violation{Field: "FirstName", Message: "a"},
		Violation{Field: "LastName", Message: "c"},
		Violation{Field: "LastName", Message: "c"},
	)

	assert.False(t, o.Valid())
	assert.Equal(t, []string{"LastName", "FirstName"}, o.Fields())
	assert.Equal(t, []string{"b", "c", "c"}, o.Messages("LastName"))
	assert.Equal(t, 4, o.Len())
	assert.Empty(t, o.Messages("Missing"))
}

func TestProblemShape(t *testing.T) {
	var o Outcome
	o.Add(
		Violation{Field: "FirstName", Message: "'First Name' must not be empty."},
		Violation{Field: "LastName", Message: "'Last Name' must not be empty."},
	)

	body, err := json.Marshal(NewProblem(o))
	require.NoError(t, err)

	assert.Equal(t,
		`{"status":400,"title":"One or more validation errors occurred.","errors":{"FirstName":["'First Name' must not be empty."],"LastName":["'Last Name' must not be empty."]}}`,
		string(body))
}

func TestProblemKeepsProductionOrderNotAlphabetical(t *testing.T) {
	var o Outcome
	o.Add(
		Violation{Field: "Zip", Message: "z1"},
		Violation{Field: "Address1", Message: "a1"},
		Violation{Field: "Zip", Message: "z2"},
	)

	p := NewProblem(o)
	assert.Equal(t, http.StatusBadRequest, p.Status)

	body, err := json.Marshal(p.Errors)
	require.NoError(t, err)
	assert.Equal(t, `{"Zip":["z1","z2"],"Address1":["a1"]}`, string(body))
}

func TestProblemEmptyErrors(t *testing.T) {
	body, err := json.Marshal(NewProblem(Outcome{}).Errors)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(body))
}
