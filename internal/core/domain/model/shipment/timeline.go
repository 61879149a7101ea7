package shipment

import (
	"time"

	"globaledge/internal/pkg/errs"
)

// TimelineEntry is one event in a shipment's audit log: the status at that
// moment, when it was recorded, and a human note. Entries are immutable and
// the timeline itself is append-only.
type TimelineEntry struct {
	status Status
	at     time.Time
	note   string
}

// NewTimelineEntry builds a timeline entry. The status must be a valid code
// and the timestamp must be set; the note may be empty.
func NewTimelineEntry(status Status, at time.Time, note string) (TimelineEntry, error) {
	if err := status.Validate(); err != nil {
		return TimelineEntry{}, err
	}
	if at.IsZero() {
		return TimelineEntry{}, errs.NewValueIsRequiredError("timeline entry timestamp")
	}

	return TimelineEntry{status: status, at: at, note: note}, nil
}

// Status returns the shipment status recorded by this entry.
func (e TimelineEntry) Status() Status {
	return e.status
}

// At returns when the entry was recorded.
func (e TimelineEntry) At() time.Time {
	return e.at
}

// Note returns the human-readable description of the event.
func (e TimelineEntry) Note() string {
	return e.note
}
