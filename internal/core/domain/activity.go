package domain

import "time"

// Activity types recorded to the append-only audit trail.
const (
	ActivityUserRegistered = "user_registered"
	ActivityRoleChanged    = "role_changed"
	ActivityEventCreated   = "event_created"
	ActivityEventUpdated   = "event_updated"
	ActivityEventDeleted   = "event_deleted"
	ActivityBookingCreated = "booking_created"
)

// ActivityEntry is one audit-trail record. ActorID is the identity that
// performed the action; SubjectID is the record acted upon (may equal
// ActorID, e.g. self-registration).
type ActivityEntry struct {
	Type      string
	ActorID   string
	SubjectID string
	Detail    string
	Timestamp time.Time
}
