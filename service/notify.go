package service

import (
	"Crewly/pkg/log"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Notification categories members can mute downstream; the dispatcher may
// silently drop a muted category.
const (
	NotifyCategoryStreak = "streak"
	NotifyCategoryBadge  = "badge"
	NotifyCategoryHealth = "health"
)

type NotificationPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

// Notifier is the outbound push capability. Delivery mechanics live outside
// this engine; failures here are logged by callers and never propagated.
type Notifier interface {
	SendToMember(ctx context.Context, memberID int64, payload NotificationPayload, category string) error
}

// ChatPoster posts a system-authored message into a group channel, used only
// for badge announcements.
type ChatPoster interface {
	PostSystemMessage(ctx context.Context, channelID int64, content string) error
}

// RedisNotifier publishes to the channels the delivery tier subscribes to.
type RedisNotifier struct {
	Redis *redis.Client
}

var _ Notifier = (*RedisNotifier)(nil)
var _ ChatPoster = (*RedisNotifier)(nil)

type notifyEnvelope struct {
	ID       string              `json:"id"`
	MemberID int64               `json:"member_id"`
	Category string              `json:"category"`
	Payload  NotificationPayload `json:"payload"`
	SentAt   time.Time           `json:"sent_at"`
}

func (n *RedisNotifier) SendToMember(ctx context.Context, memberID int64, payload NotificationPayload, category string) error {
	env := notifyEnvelope{
		ID:       uuid.NewString(),
		MemberID: memberID,
		Category: category,
		Payload:  payload,
		SentAt:   time.Now().UTC(),
	}
	body, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return n.Redis.Publish(ctx, fmt.Sprintf("crewly:notify:%d", memberID), body).Err()
}

type systemMessage struct {
	ID        string    `json:"id"`
	ChannelID int64     `json:"channel_id"`
	Content   string    `json:"content"`
	SentAt    time.Time `json:"sent_at"`
}

func (n *RedisNotifier) PostSystemMessage(ctx context.Context, channelID int64, content string) error {
	msg := systemMessage{
		ID:        uuid.NewString(),
		ChannelID: channelID,
		Content:   content,
		SentAt:    time.Now().UTC(),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return n.Redis.Publish(ctx, fmt.Sprintf("crewly:channel:%d", channelID), body).Err()
}

// fireAndForget runs a side effect in its own goroutine with a bounded
// context; the outcome is logged, never returned to the trigger.
func fireAndForget(name string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := fn(ctx); err != nil {
			log.L.Warn("side effect failed", zap.String("effect", name), zap.Error(err))
		}
	}()
}
