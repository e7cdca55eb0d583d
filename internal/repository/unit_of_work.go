package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-records-api/internal/audit"
	"github.com/noah-isme/hr-records-api/pkg/logger"
)

// WriteFunc persists one tracked entity using the commit transaction.
type WriteFunc func(ctx context.Context, tx sqlx.ExtContext) error

// Tracker records pending mutations for a later commit.
type Tracker interface {
	Track(entity any, state audit.State, write WriteFunc)
}

// UnitOfWork collects pending mutations and commits them atomically.
type UnitOfWork interface {
	Tracker
	audit.ChangeReport
	SaveChanges(ctx context.Context) (audit.Result, error)
}

// CommitObserver receives commit instrumentation.
type CommitObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
	ObserveAuditStamps(created, modified int)
}

// UnitOfWorkFactory opens units of work sharing one database, stamper and observer.
type UnitOfWorkFactory struct {
	db       *sqlx.DB
	stamper  *audit.Stamper
	observer CommitObserver
	logger   *zap.Logger
}

// NewUnitOfWorkFactory constructs a UnitOfWorkFactory.
func NewUnitOfWorkFactory(db *sqlx.DB, stamper *audit.Stamper, observer CommitObserver, logger *zap.Logger) *UnitOfWorkFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UnitOfWorkFactory{db: db, stamper: stamper, observer: observer, logger: logger}
}

// Begin opens an empty unit of work.
func (f *UnitOfWorkFactory) Begin() UnitOfWork {
	return &SQLUnitOfWork{db: f.db, stamper: f.stamper, observer: f.observer, logger: f.logger}
}

type pendingChange struct {
	entity any
	state  audit.State
	write  WriteFunc
}

// SQLUnitOfWork tracks entities with explicit classification and writes them
// in a single transaction after stamping.
type SQLUnitOfWork struct {
	db       *sqlx.DB
	stamper  *audit.Stamper
	observer CommitObserver
	logger   *zap.Logger

	mu      sync.Mutex
	pending []pendingChange
}

// Track records entity with the given classification. Entities are matched by
// pointer identity: an Added entity stays Added when modified again, and an
// Added entity that is removed before commit is forgotten.
func (u *SQLUnitOfWork) Track(entity any, state audit.State, write WriteFunc) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i, p := range u.pending {
		if p.entity != entity {
			continue
		}
		switch {
		case state == audit.Removed && p.state == audit.Added:
			u.pending = append(u.pending[:i], u.pending[i+1:]...)
		case state == audit.Removed:
			u.pending[i] = pendingChange{entity: entity, state: state, write: write}
		case p.state == audit.Unchanged:
			u.pending[i] = pendingChange{entity: entity, state: state, write: write}
		}
		return
	}
	u.pending = append(u.pending, pendingChange{entity: entity, state: state, write: write})
}

// Entries reports the current pending set.
func (u *SQLUnitOfWork) Entries() []audit.Entry {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.entries()
}

func (u *SQLUnitOfWork) entries() []audit.Entry {
	out := make([]audit.Entry, len(u.pending))
	for i, p := range u.pending {
		out[i] = audit.Entry{Entity: p.entity, State: p.state}
	}
	return out
}

// SaveChanges stamps the pending set and writes it in one transaction. On
// success every entry becomes Unchanged and is dropped; on failure nothing is
// written and the pending set is kept.
func (u *SQLUnitOfWork) SaveChanges(ctx context.Context) (audit.Result, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return audit.Result{}, err
	}
	if len(u.pending) == 0 {
		return audit.Result{}, nil
	}

	result := u.stamper.Stamp(changeSet(u.entries()))

	start := time.Now()
	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		return audit.Result{}, fmt.Errorf("begin unit of work: %w", err)
	}
	for _, p := range u.pending {
		if p.write == nil {
			continue
		}
		if err := p.write(ctx, tx); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.WithContext(ctx, u.logger).Error("rollback unit of work", zap.Error(rbErr))
			}
			return audit.Result{}, fmt.Errorf("write %s %T: %w", p.state, p.entity, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return audit.Result{}, fmt.Errorf("commit unit of work: %w", err)
	}

	if u.observer != nil {
		u.observer.ObserveDBQuery("unit_of_work_commit", time.Since(start))
		u.observer.ObserveAuditStamps(result.Created, result.Modified)
	}
	logger.WithContext(ctx, u.logger).Debug("unit of work committed",
		zap.Int("changes", len(u.pending)),
		zap.Int("created", result.Created),
		zap.Int("modified", result.Modified),
	)
	u.pending = nil
	return result, nil
}

type changeSet []audit.Entry

func (c changeSet) Entries() []audit.Entry { return c }

// IsUniqueViolation reports whether err carries a Postgres unique_violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// IsForeignKeyViolation reports whether err carries a Postgres foreign_key_violation,
// raised when a write references a row that no longer exists.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

// keyLookup returns sql.ErrNoRows for ids that cannot be a UUID key. Postgres
// rejects such values with invalid_text_representation instead of matching
// no row.
func keyLookup(ids ...string) error {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return sql.ErrNoRows
		}
	}
	return nil
}

// ensureAffected turns a write that matched no row into sql.ErrNoRows.
func ensureAffected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
