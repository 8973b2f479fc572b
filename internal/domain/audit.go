package domain

import "time"

// AuditInfo records who performed a change, on behalf of which group, and
// when. Every aggregate carries two: one stamped at creation and never
// touched again, one refreshed on each mutation.
type AuditInfo struct {
	UserID  string    `json:"user_id"`
	GroupID string    `json:"group_id"`
	At      time.Time `json:"at"`
}

// NewAuditInfo creates an audit stamp.
func NewAuditInfo(userID, groupID string, at time.Time) AuditInfo {
	return AuditInfo{UserID: userID, GroupID: groupID, At: at}
}

// Tombstone marks an aggregate as soft-deleted. Nothing is ever physically
// erased; DeletedAt is non-nil exactly when Deleted is true.
type Tombstone struct {
	Deleted   bool       `json:"deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// ActiveTombstone returns the marker for a live aggregate.
func ActiveTombstone() Tombstone {
	return Tombstone{}
}

// DeletedTombstone returns the marker for a soft-deleted aggregate,
// stamped with the deletion time.
func DeletedTombstone(at time.Time) Tombstone {
	return Tombstone{Deleted: true, DeletedAt: &at}
}
