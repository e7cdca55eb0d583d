// Package audit stamps creation and modification provenance onto entities
// right before their unit of work is committed.
package audit

import (
	"time"

	"github.com/noah-isme/hr-records-api/pkg/clock"
)

// Default placeholder identities used while no caller identity is propagated.
const (
	DefaultCreateActor = "the create user"
	DefaultUpdateActor = "the update user"
)

// State classifies a pending entity as reported by the persistence layer.
type State int

const (
	Unchanged State = iota
	Added
	Modified
	Removed
)

func (s State) String() string {
	switch s {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Removed:
		return "removed"
	default:
		return "unchanged"
	}
}

// Auditable is implemented by entities carrying provenance fields, usually by
// embedding models.AuditFields.
type Auditable interface {
	MarkCreated(actor string, at time.Time)
	MarkModified(actor string, at time.Time)
}

// Entry pairs a pending entity with its classification.
type Entry struct {
	Entity any
	State  State
}

// ChangeReport enumerates the pending change set of a unit of work.
type ChangeReport interface {
	Entries() []Entry
}

// Actors names who is recorded as creator and modifier.
type Actors struct {
	Create string
	Update string
}

// Result counts what a single Stamp call touched.
type Result struct {
	Created  int
	Modified int
}

// Stamper writes provenance fields using an injected Clock.
type Stamper struct {
	clock  clock.Clock
	actors Actors
}

// NewStamper constructs a Stamper. Empty actor names fall back to the placeholder identities.
func NewStamper(c clock.Clock, actors Actors) *Stamper {
	if c == nil {
		c = clock.System{}
	}
	if actors.Create == "" {
		actors.Create = DefaultCreateActor
	}
	if actors.Update == "" {
		actors.Update = DefaultUpdateActor
	}
	return &Stamper{clock: c, actors: actors}
}

// Stamp scans the current pending set and stamps every Auditable entry that is
// Added or Modified. Classification is read fresh on each call, so stamping
// twice before the durable write simply refreshes the timestamps.
func (s *Stamper) Stamp(report ChangeReport) Result {
	var res Result
	if report == nil {
		return res
	}
	now := s.clock.Now()
	for _, entry := range report.Entries() {
		auditable, ok := entry.Entity.(Auditable)
		if !ok {
			continue
		}
		switch entry.State {
		case Added:
			auditable.MarkCreated(s.actors.Create, now)
			res.Created++
		case Modified:
			auditable.MarkModified(s.actors.Update, now)
			res.Modified++
		}
	}
	return res
}
