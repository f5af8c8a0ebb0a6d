// README: Audit trail recorder; append-only history entries per booking.
package booking

import (
	"context"
	"time"

	"courier/internal/types"
)

// Recorder appends immutable history entries. It does not validate
// transitions; that is the transition engine's job.
type Recorder struct {
	repo Repository
}

func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

// RecordTransition constructs and appends one history entry for the
// resulting status. Prior entries are never touched.
func (r *Recorder) RecordTransition(ctx context.Context, bookingID types.ID, status Status, note, actor string) (*StatusHistoryEntry, error) {
	e := &StatusHistoryEntry{
		ID:        types.NewID(),
		BookingID: bookingID,
		Status:    status,
		Note:      note,
		CreatedBy: actor,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.repo.AppendHistory(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// History returns the booking's entries oldest first.
func (r *Recorder) History(ctx context.Context, bookingID types.ID) ([]StatusHistoryEntry, error) {
	return r.repo.ListHistory(ctx, bookingID)
}
