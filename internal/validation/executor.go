package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/hr-records-api/pkg/logger"
)

// ErrExecution marks failures where validation could not be performed, as
// opposed to validation that ran and found problems.
var ErrExecution = errors.New("validation could not be performed")

// ExecutionError reports a validator that failed for the named argument.
type ExecutionError struct {
	Argument string
	Payload  TypeID
	Err      error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("validate argument %q (%s): %v", e.Argument, e.Payload, e.Err)
}

// Unwrap exposes both ErrExecution and the underlying cause.
func (e *ExecutionError) Unwrap() []error {
	return []error{ErrExecution, e.Err}
}

// Argument is one named, already-bound handler argument.
type Argument struct {
	Name  string
	Value any
}

// Observer receives one notification per validated payload.
type Observer interface {
	ObserveValidation(payload string, result string, duration time.Duration)
}

// Observation results reported to an Observer.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// ExecutorOption customises an Executor.
type ExecutorOption func(*Executor)

// WithParallel runs the validators of different arguments concurrently.
func WithParallel(parallel bool) ExecutorOption {
	return func(e *Executor) { e.parallel = parallel }
}

// WithLogger sets the executor logger.
func WithLogger(logger *zap.Logger) ExecutorOption {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithObserver reports per-payload outcomes, typically to metrics.
func WithObserver(observer Observer) ExecutorOption {
	return func(e *Executor) { e.observer = observer }
}

// Executor validates every argument of a call against the registry.
type Executor struct {
	registry *Registry
	parallel bool
	logger   *zap.Logger
	observer Observer
}

// NewExecutor constructs an Executor over registry.
func NewExecutor(registry *Registry, opts ...ExecutorOption) *Executor {
	e := &Executor{registry: registry, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute validates args and aggregates their violations in argument
// declaration order. The returned error is non-nil only when validation could
// not be performed, including when ctx is cancelled.
func (e *Executor) Execute(ctx context.Context, call Call, args []Argument) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, &ExecutionError{Argument: "*", Err: err}
	}

	results := make([][]Violation, len(args))
	if e.parallel && len(args) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		for i, arg := range args {
			i, arg := i, arg
			g.Go(func() error {
				violations, err := e.run(gctx, call, arg)
				results[i] = violations
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return Outcome{}, err
		}
	} else {
		for i, arg := range args {
			violations, err := e.run(ctx, call, arg)
			if err != nil {
				return Outcome{}, err
			}
			results[i] = violations
		}
	}

	if err := ctx.Err(); err != nil {
		return Outcome{}, &ExecutionError{Argument: "*", Err: err}
	}

	var outcome Outcome
	for _, violations := range results {
		outcome.Add(violations...)
	}
	return outcome, nil
}

func (e *Executor) run(ctx context.Context, call Call, arg Argument) ([]Violation, error) {
	if isNil(arg.Value) {
		return nil, nil
	}
	id := TypeIDOf(arg.Value)
	validator, ok := e.registry.Resolve(id)
	if !ok {
		return nil, nil
	}

	start := time.Now()
	violations, err := validator.Validate(ctx, call, arg.Value)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		e.observe(id, ResultError, elapsed)
		logger.WithContext(ctx, e.logger).Warn("validator could not run",
			zap.String("argument", arg.Name),
			zap.Stringer("payload", id),
			zap.Error(err),
		)
		return nil, &ExecutionError{Argument: arg.Name, Payload: id, Err: err}
	case len(violations) > 0:
		e.observe(id, ResultInvalid, elapsed)
	default:
		e.observe(id, ResultValid, elapsed)
	}

	e.logger.Debug("argument validated",
		zap.String("argument", arg.Name),
		zap.Stringer("payload", id),
		zap.Int("violations", len(violations)),
	)
	return violations, nil
}

func (e *Executor) observe(id TypeID, result string, d time.Duration) {
	if e.observer != nil {
		e.observer.ObserveValidation(id.String(), result, d)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
