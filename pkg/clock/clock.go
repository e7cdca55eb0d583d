// Package clock supplies the current instant to every time-dependent component.
package clock

import (
	"sync/atomic"
	"time"
)

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// System reads wall-clock time in UTC.
type System struct{}

// Now returns the current UTC time.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the instant it was installed with until Set replaces it.
type Fixed struct {
	at atomic.Pointer[time.Time]
}

// NewFixed builds a Fixed clock pinned at t.
func NewFixed(t time.Time) *Fixed {
	f := &Fixed{}
	f.Set(t)
	return f
}

// Now returns the installed instant.
func (f *Fixed) Now() time.Time {
	if at := f.at.Load(); at != nil {
		return *at
	}
	return time.Time{}
}

// Set replaces the installed instant.
func (f *Fixed) Set(t time.Time) {
	utc := t.UTC()
	f.at.Store(&utc)
}

// Advance moves the installed instant forward by d and returns the new value.
// Concurrent calls each apply their own step.
func (f *Fixed) Advance(d time.Duration) time.Time {
	for {
		cur := f.at.Load()
		var base time.Time
		if cur != nil {
			base = *cur
		}
		next := base.Add(d).UTC()
		if f.at.CompareAndSwap(cur, &next) {
			return next
		}
	}
}

// MustParse parses an RFC3339 instant, panicking on malformed input. Intended for tests and startup wiring.
func MustParse(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}
