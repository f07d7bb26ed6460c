package notify

import (
	"context"

	"github.com/avolkov/storefront-service/internal/application/ports"
)

// MultiNotifier fans a notification out to every configured sink.
type MultiNotifier struct {
	sinks []ports.Notifier
}

func NewMultiNotifier(sinks ...ports.Notifier) *MultiNotifier {
	return &MultiNotifier{sinks: sinks}
}

func (m *MultiNotifier) Notify(ctx context.Context, n ports.Notification) {
	for _, sink := range m.sinks {
		sink.Notify(ctx, n)
	}
}
