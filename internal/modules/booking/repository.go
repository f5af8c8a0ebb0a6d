// README: Repository contract the booking core requires from its storage collaborator.
package booking

import (
	"context"

	"courier/internal/types"
)

// Repository is the storage boundary for bookings and their audit trail.
// UpdateStatusAndRider must offer read-then-conditional-write semantics:
// the update applies only when the stored status and version still match
// what the caller read, so concurrent transitions on the same booking are
// serialized by the store.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	Get(ctx context.Context, id types.ID) (*Booking, error)
	List(ctx context.Context) ([]*Booking, error)

	// UpdateStatusAndRider conditionally moves the booking from (from, version)
	// to status to, overwriting the rider fields. It returns false when the
	// compare-and-swap did not match, without error.
	UpdateStatusAndRider(ctx context.Context, id types.ID, from, to Status, version int, riderName, riderPhone *string) (bool, error)

	AppendHistory(ctx context.Context, e *StatusHistoryEntry) error
	ListHistory(ctx context.Context, bookingID types.ID) ([]StatusHistoryEntry, error)
}
