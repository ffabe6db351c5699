package notify

import (
	"context"

	"github.com/gosm1/pureperfumes/internal/model"
)

// Notifier announces a freshly persisted order to an external channel.
// Delivery is best-effort: the order is already the source of truth, so a
// failed notification is logged by the caller and never retried.
type Notifier interface {
	NotifyOrder(ctx context.Context, order *model.Order) error
}
