package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/hr-records-api/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestErrorHidesInternalCause(t *testing.T) {
	c, w := newContext()

	Error(c, errors.New("pq: connection refused"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, appErrors.ErrInternal.Code, env.Error.Code)
}

func TestErrorKeepsDomainStatus(t *testing.T) {
	c, w := newContext()

	Error(c, appErrors.Clone(appErrors.ErrNotFound, "employee not found"))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "employee not found")
}

func TestProblemWritesBodyVerbatim(t *testing.T) {
	c, w := newContext()

	Problem(c, http.StatusBadRequest, map[string]int{"status": 400})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ProblemContentType, w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":400}`, w.Body.String())
}

func TestCreatedSetsLocation(t *testing.T) {
	c, w := newContext()

	Created(c, "/employees/e1", gin.H{"Id": "e1"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/employees/e1", w.Header().Get("Location"))
}
