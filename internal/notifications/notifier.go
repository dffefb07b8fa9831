// Package notifications publishes domain events to Redis pub/sub.
package notifications

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"picshare/internal/middleware"
	"picshare/internal/models"

	"github.com/redis/go-redis/v9"
)

// EventsChannel is the Redis pub/sub channel domain events are published on.
const EventsChannel = "picshare:events"

// Event is the wire format for every published event.
type Event struct {
	Type      string    `json:"type"`
	UserID    uint      `json:"user_id,omitempty"`
	PictureID uint      `json:"picture_id,omitempty"`
	Added     bool      `json:"added,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Notifier publishes events. A Notifier with a nil client (or a nil Notifier)
// drops everything silently so callers never need to guard.
type Notifier struct {
	client *redis.Client
	logger *slog.Logger
}

// NewNotifier returns a Notifier publishing through the given client.
func NewNotifier(client *redis.Client) *Notifier {
	return &Notifier{client: client, logger: middleware.Logger}
}

// PublishPictureCreated announces a newly uploaded picture.
func (n *Notifier) PublishPictureCreated(ctx context.Context, picture *models.Picture) {
	if picture == nil {
		return
	}
	n.publish(ctx, Event{
		Type:      "picture.created",
		UserID:    picture.UserID,
		PictureID: picture.ID,
		Timestamp: time.Now().UTC(),
	})
}

// PublishFavoriteToggled announces a favorite being added or removed.
func (n *Notifier) PublishFavoriteToggled(ctx context.Context, userID, pictureID uint, added bool) {
	n.publish(ctx, Event{
		Type:      "favorite.toggled",
		UserID:    userID,
		PictureID: pictureID,
		Added:     added,
		Timestamp: time.Now().UTC(),
	})
}

func (n *Notifier) publish(ctx context.Context, event Event) {
	if n == nil || n.client == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to marshal event", slog.String("type", event.Type), slog.String("error", err.Error()))
		return
	}
	if err := n.client.Publish(ctx, EventsChannel, payload).Err(); err != nil {
		// Events are best effort, the write that triggered them already succeeded.
		n.logger.WarnContext(ctx, "Failed to publish event", slog.String("type", event.Type), slog.String("error", err.Error()))
	}
}

// StartSubscriber consumes events and hands them to the callback until the
// context is cancelled. Intended for sidecar consumers and tests.
func (n *Notifier) StartSubscriber(ctx context.Context, handle func(Event)) error {
	if n == nil || n.client == nil {
		return nil
	}
	sub := n.client.Subscribe(ctx, EventsChannel)
	if _, err := sub.Receive(ctx); err != nil {
		return err
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					n.logger.Warn("Dropping malformed event", slog.String("error", err.Error()))
					continue
				}
				handle(event)
			}
		}
	}()
	return nil
}
