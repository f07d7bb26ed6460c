package notify

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"

	"github.com/avolkov/storefront-service/internal/application/ports"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

const eventsChannel = "storefront:events"

// RedisNotifier publishes notifications on a pub/sub channel so other
// processes (or a separate UI gateway) can observe them.
type RedisNotifier struct {
	client *goredis.Client
	log    *logger.Logger
}

func NewRedisNotifier(client *goredis.Client, log *logger.Logger) *RedisNotifier {
	return &RedisNotifier{
		client: client,
		log:    log,
	}
}

func (n *RedisNotifier) Notify(ctx context.Context, notification ports.Notification) {
	data, err := json.Marshal(notification)
	if err != nil {
		n.log.Error("Failed to encode notification", "error", err.Error())
		return
	}

	if err := n.client.Publish(ctx, eventsChannel, data).Err(); err != nil {
		n.log.Warn("Failed to publish notification", "event", notification.Event, "error", err.Error())
	}
}
