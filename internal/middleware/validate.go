package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-records-api/internal/validation"
	appErrors "github.com/noah-isme/hr-records-api/pkg/errors"
	"github.com/noah-isme/hr-records-api/pkg/logger"
	"github.com/noah-isme/hr-records-api/pkg/response"
)

const argumentKeyPrefix = "validated_argument:"

// Binder materialises one named handler argument from the request.
type Binder struct {
	name string
	bind func(c *gin.Context) (any, error)
}

// Body binds the JSON request body into a T.
func Body[T any](name string) Binder {
	return Binder{name: name, bind: func(c *gin.Context) (any, error) {
		var payload T
		if err := c.ShouldBindJSON(&payload); err != nil {
			return nil, err
		}
		return payload, nil
	}}
}

// Query binds the query string into a T using its form tags.
func Query[T any](name string) Binder {
	return Binder{name: name, bind: func(c *gin.Context) (any, error) {
		var payload T
		if err := c.ShouldBindQuery(&payload); err != nil {
			return nil, err
		}
		return payload, nil
	}}
}

// Validate binds the handler arguments, runs their registered validators and
// only calls the handler when every argument is valid. Invalid input ends the
// request with a 400 problem document; a validator that cannot run ends it
// with the error's own status.
func Validate(exec *validation.Executor, binders ...Binder) gin.HandlerFunc {
	return func(c *gin.Context) {
		args := make([]validation.Argument, 0, len(binders))
		for _, b := range binders {
			value, err := b.bind(c)
			if err != nil {
				response.Error(c, appErrors.Wrap(err, appErrors.ErrBadRequest.Code, appErrors.ErrBadRequest.Status, "malformed "+b.name))
				c.Abort()
				return
			}
			args = append(args, validation.Argument{Name: b.name, Value: value})
		}

		call := validation.Call{Params: make(map[string]string, len(c.Params))}
		for _, p := range c.Params {
			call.Params[p.Key] = p.Value
		}

		outcome, err := exec.Execute(c.Request.Context(), call, args)
		if err != nil {
			response.Error(c, executionFailure(err))
			c.Abort()
			return
		}
		if !outcome.Valid() {
			logger.MarkRejected(c, outcome.Fields())
			response.Problem(c, http.StatusBadRequest, validation.NewProblem(outcome))
			c.Abort()
			return
		}

		for _, arg := range args {
			c.Set(argumentKeyPrefix+arg.Name, arg.Value)
		}
		c.Next()
	}
}

func executionFailure(err error) *appErrors.Error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return appErrors.Wrap(err, appErrors.ErrValidatorExecution.Code, appErrors.ErrValidatorExecution.Status, appErrors.ErrValidatorExecution.Message)
}

// Argument returns the validated argument bound under name.
func Argument[T any](c *gin.Context, name string) (T, bool) {
	value, exists := c.Get(argumentKeyPrefix + name)
	if !exists {
		var zero T
		return zero, false
	}
	typed, ok := value.(T)
	return typed, ok
}
