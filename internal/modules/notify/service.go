// README: Notification dispatcher; best-effort side channel, never blocks a transition.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier/internal/modules/booking"
	"courier/internal/types"
)

var ErrNotificationFailed = errors.New("notification failed")

type Service struct {
	log    MessageLog
	sender Sender
}

func NewService(log MessageLog, sender Sender) *Service {
	return &Service{log: log, sender: sender}
}

// Dispatch builds the tracking SMS for the booking's sender, logs it with
// lifecycle pending, and submits it for delivery. The message is logged
// whether or not the submit succeeds; a submit failure comes back as
// ErrNotificationFailed together with the failed request, and is never a
// transition failure. One call makes at most one delivery attempt.
func (s *Service) Dispatch(ctx context.Context, b *booking.Booking, actor string) (*Request, error) {
	req := &Request{
		ID:           types.NewID(),
		MessageType:  MessageTypeSMS,
		Recipient:    b.SenderPhone,
		BookingID:    b.ID,
		TemplateCode: TemplateTrackingNotification,
		Body:         TrackingBody(b.TrackingID),
		Status:       StatusPending,
		TriggeredBy:  actor,
		Cost:         0,
		CreatedAt:    time.Now().UTC(),
	}

	logErr := s.log.LogMessage(ctx, req)

	if err := s.sender.Send(ctx, req); err != nil {
		req.Status = StatusFailed
		if logErr == nil {
			_ = s.log.UpdateStatus(ctx, req.ID, StatusFailed)
		}
		return req, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}
	if logErr != nil {
		return req, fmt.Errorf("%w: message queued but not logged: %v", ErrNotificationFailed, logErr)
	}
	return req, nil
}
