package notify

import (
	"context"

	"github.com/tair/storefront/internal/shop/domain"
	"github.com/tair/storefront/pkg/logger"
)

// Notifier delivers shop mutation events to a transient-message surface.
// Delivery is best-effort: a sink that cannot deliver must not fail the
// mutation that produced the event.
type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}

// LogNotifier writes events to the structured log. In a headless
// deployment this is the toast surface.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, event domain.Event) {
	logger.Info(ctx).
		Str("event_type", string(event.Type)).
		Str("session_id", event.SessionID).
		Uint("product_id", event.ProductID).
		Str("title", event.Title).
		Msg(event.Description)
}

// Multi fans an event out to several sinks in order
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, event domain.Event) {
	for _, n := range m {
		n.Notify(ctx, event)
	}
}
