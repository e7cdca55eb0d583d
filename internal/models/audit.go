package models

import "time"

// AuditFields carries creation and modification provenance. Entities opt into
// auditing by embedding it; the fields stay nil until first stamped.
type AuditFields struct {
	CreatedBy      *string    `db:"created_by" json:"CreatedBy"`
	CreatedOn      *time.Time `db:"created_on" json:"CreatedOn"`
	LastModifiedBy *string    `db:"last_modified_by" json:"LastModifiedBy"`
	LastModifiedOn *time.Time `db:"last_modified_on" json:"LastModifiedOn"`
}

// MarkCreated records the first persistence of the entity.
func (a *AuditFields) MarkCreated(actor string, at time.Time) {
	a.CreatedBy = &actor
	a.CreatedOn = &at
}

// MarkModified records a subsequent persisted mutation. Creation fields are left alone.
func (a *AuditFields) MarkModified(actor string, at time.Time) {
	a.LastModifiedBy = &actor
	a.LastModifiedOn = &at
}
