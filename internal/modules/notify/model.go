// README: Notification request model and the tracking SMS template.
package notify

import (
	"fmt"
	"time"

	"courier/internal/types"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

const (
	MessageTypeSMS = "sms"

	TemplateTrackingNotification = "tracking_notification"
)

// Request is one outbound message. It is transient from the core's point of
// view; only the message log row persists.
type Request struct {
	ID           types.ID
	MessageType  string
	Recipient    string
	BookingID    types.ID
	TemplateCode string
	Subject      *string
	Body         string
	Status       Status
	TriggeredBy  string
	Cost         int64
	CreatedAt    time.Time
}

// TrackingBody renders the tracking SMS. Downstream consumers rely on this
// wording verbatim.
func TrackingBody(trackingID string) string {
	return fmt.Sprintf("Your parcel tracking ID: %s. Track it on our website.", trackingID)
}
