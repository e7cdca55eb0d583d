package validation

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// ProblemTitle is the fixed title of every validation problem.
const ProblemTitle = "One or more validation errors occurred."

// Problem is the canonical body returned for an invalid request.
type Problem struct {
	Status int           `json:"status"`
	Title  string        `json:"title"`
	Errors ProblemErrors `json:"errors"`
}

// ProblemErrors maps fields to messages and marshals in violation order.
type ProblemErrors struct {
	outcome Outcome
}

// NewProblem translates an invalid outcome into its problem document.
func NewProblem(outcome Outcome) Problem {
	return Problem{
		Status: http.StatusBadRequest,
		Title:  ProblemTitle,
		Errors: ProblemErrors{outcome: outcome},
	}
}

// MarshalJSON writes the errors object without reordering keys.
func (e ProblemErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range e.outcome.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		msgs, err := json.Marshal(e.outcome.messages[field])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(msgs)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
