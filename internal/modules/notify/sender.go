// README: Queue sender; hands rendered messages to the delivery worker via Redis.
package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const DefaultQueue = "notify:sms"

// Sender is the external notification boundary. Send hands the message off
// for delivery; it does not wait for the delivery outcome.
type Sender interface {
	Send(ctx context.Context, req *Request) error
}

// QueueSender pushes messages onto a Redis list consumed by the SMS worker.
type QueueSender struct {
	redis *redis.Client
	queue string
}

func NewQueueSender(client *redis.Client, queue string) *QueueSender {
	if queue == "" {
		queue = DefaultQueue
	}
	return &QueueSender{redis: client, queue: queue}
}

type queuedMessage struct {
	ID           string `json:"id"`
	MessageType  string `json:"message_type"`
	Recipient    string `json:"recipient"`
	BookingID    string `json:"booking_id"`
	TemplateCode string `json:"template_code"`
	Body         string `json:"body"`
	TriggeredBy  string `json:"triggered_by"`
}

func (s *QueueSender) Send(ctx context.Context, req *Request) error {
	payload, err := json.Marshal(queuedMessage{
		ID:           string(req.ID),
		MessageType:  req.MessageType,
		Recipient:    req.Recipient,
		BookingID:    string(req.BookingID),
		TemplateCode: req.TemplateCode,
		Body:         req.Body,
		TriggeredBy:  req.TriggeredBy,
	})
	if err != nil {
		return err
	}
	return s.redis.LPush(ctx, s.queue, payload).Err()
}
