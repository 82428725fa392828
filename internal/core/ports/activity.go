package ports

import (
	"context"

	"github.com/eventhub/booking-system/internal/core/domain"
)

// ActivityRecorder persists audit-trail entries.
type ActivityRecorder interface {
	Record(ctx context.Context, entry *domain.ActivityEntry) error
}

// ActivitySink accepts audit-trail entries for asynchronous persistence.
// Submit never blocks request handling on the audit write and never
// surfaces persistence failures to the caller.
type ActivitySink interface {
	Submit(entry domain.ActivityEntry)
}
