// README: Booking aggregate, status definitions, and the transition policy.
package booking

import (
	"time"

	"courier/internal/types"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusInProgress  Status = "in_progress"
	StatusDelivered   Status = "delivered"
	StatusNotAccepted Status = "not_accepted"
	StatusCancelled   Status = "cancelled"
)

// AllStatuses lists every status in display order.
var AllStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusDelivered,
	StatusNotAccepted,
	StatusCancelled,
}

var statusLabels = map[Status]string{
	StatusPending:     "Pending",
	StatusConfirmed:   "Confirmed",
	StatusInProgress:  "In Progress",
	StatusDelivered:   "Delivered",
	StatusNotAccepted: "Not Accepted",
	StatusCancelled:   "Cancelled",
}

// Label returns the human-facing label downstream consumers rely on verbatim.
func (s Status) Label() string {
	return statusLabels[s]
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Terminal reports whether the status has no outgoing transitions.
func (s Status) Terminal() bool {
	return len(AllowedTransitions[s]) == 0
}

// AllowedTransitions represents the booking state flow (diagram) as code.
// not_accepted and cancelled are recoverable re-entry points; delivered is
// the only terminal state.
var AllowedTransitions = map[Status][]Status{
	StatusPending:     {StatusConfirmed, StatusNotAccepted, StatusCancelled},
	StatusConfirmed:   {StatusInProgress, StatusNotAccepted, StatusCancelled},
	StatusInProgress:  {StatusDelivered, StatusCancelled},
	StatusDelivered:   {},
	StatusNotAccepted: {StatusCancelled, StatusPending},
	StatusCancelled:   {StatusPending},
}

// AllowedNextStatuses returns the statuses reachable from current.
// A same-status update (rider reassignment) is a separate carve-out in the
// transition engine, not part of the graph.
func AllowedNextStatuses(current Status) []Status {
	return AllowedTransitions[current]
}

func CanTransition(from, to Status) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID         types.ID
	TrackingID string

	SenderName     string
	SenderPhone    string
	SenderWhatsApp *string

	ReceiverName     string
	ReceiverPhone    string
	ReceiverWhatsApp *string

	PickupAddress   string
	PickupLandmark  *string
	DropoffAddress  string
	DropoffLandmark *string

	ItemCategoryID *types.ID
	ItemNotes      *string

	PriceBase   int64
	PriceAddons int64
	PriceTotal  int64
	Currency    string

	RiderName  *string
	RiderPhone *string

	Status        Status
	StatusVersion int
	CreatedAt     time.Time
}

// StatusHistoryEntry is one immutable audit record of a status change.
type StatusHistoryEntry struct {
	ID        types.ID
	BookingID types.ID
	Status    Status
	Note      string
	CreatedBy string
	CreatedAt time.Time
}
