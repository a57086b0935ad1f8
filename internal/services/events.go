package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/deepdating/deep-dating-api/internal/logger"
)

// EventWriter defines a Kafka writer abstraction for domain events.
// A nil EventWriter disables publishing.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MatchCreatedEvent is published when a reciprocal like pair exists after a
// like action. Consumers use it for notification fan-out.
type MatchCreatedEvent struct {
	Type    string `json:"type"`
	User1ID int64  `json:"user1_id"`
	User2ID int64  `json:"user2_id"`
}

// MessageCreatedEvent is published on every sent message.
type MessageCreatedEvent struct {
	Type      string `json:"type"`
	MessageID int64  `json:"message_id"`
	MatchID   int64  `json:"match_id"`
	SenderID  int64  `json:"sender_id"`
}

// publishEvent writes one event keyed by the given id. Publishing is best
// effort: failures are logged and never fail the caller's request.
func publishEvent(ctx context.Context, w EventWriter, key int64, payload any) {
	if w == nil {
		return
	}

	b, err := json.Marshal(payload)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(key, 10)),
		Value: b,
	}
	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "err", err)
	}
}
