// Package validation resolves and runs per-payload validators before a
// handler executes and renders their violations as a problem document.
package validation

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// TypeID identifies the exact runtime type of a payload.
type TypeID struct {
	t reflect.Type
}

// TypeOf returns the TypeID of T.
func TypeOf[T any]() TypeID {
	return TypeID{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// TypeIDOf returns the TypeID of v's dynamic type. A nil interface yields the zero TypeID.
func TypeIDOf(v any) TypeID {
	if v == nil {
		return TypeID{}
	}
	return TypeID{t: reflect.TypeOf(v)}
}

// String names the type, mostly for logs and metrics labels.
func (id TypeID) String() string {
	if id.t == nil {
		return "<nil>"
	}
	return id.t.String()
}

// Call is the ambient context of the call being validated.
type Call struct {
	Params map[string]string
}

// Param returns the named route parameter, or "" when absent.
func (c Call) Param(name string) string {
	return c.Params[name]
}

// Validator inspects one payload and reports its violations. A non-nil error
// means the validation could not be performed at all.
type Validator interface {
	Validate(ctx context.Context, call Call, payload any) ([]Violation, error)
}

// Func adapts a typed validation function to Validator.
type Func[T any] func(ctx context.Context, call Call, payload T) ([]Violation, error)

// Validate implements Validator.
func (f Func[T]) Validate(ctx context.Context, call Call, payload any) ([]Violation, error) {
	typed, ok := payload.(T)
	if !ok {
		return nil, fmt.Errorf("validator for %s received %T", TypeOf[T](), payload)
	}
	return f(ctx, call, typed)
}

// Registry maps payload types to validators. It is populated during startup
// and only read afterwards.
type Registry struct {
	mu         sync.RWMutex
	validators map[TypeID]Validator
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{validators: make(map[TypeID]Validator)}
}

// Register binds a validator to a payload type. Registering the same type twice panics.
func (r *Registry) Register(id TypeID, v Validator) {
	if id.t == nil || v == nil {
		panic("validation: register requires a type and a validator")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.validators[id]; exists {
		panic(fmt.Sprintf("validation: validator for %s already registered", id))
	}
	r.validators[id] = v
}

// Resolve returns the validator registered for exactly id.
func (r *Registry) Resolve(id TypeID) (Validator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[id]
	return v, ok
}

// Len reports the number of registered payload types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.validators)
}

// Register binds fn as the validator for payloads of type T.
func Register[T any](r *Registry, fn Func[T]) {
	r.Register(TypeOf[T](), fn)
}
