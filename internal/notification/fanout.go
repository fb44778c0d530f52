package notification

import (
	"context"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/Jairobuifranco/A2-Group17/internal/service/ports"
)

// Fanout delivers every notification to each wrapped notifier in order.
type Fanout []ports.OrderNotifier

func (f Fanout) NotifyOrderPlaced(ctx context.Context, user *domain.User, event *domain.Event, order *domain.Order) {
	for _, n := range f {
		n.NotifyOrderPlaced(ctx, user, event, order)
	}
}

func (f Fanout) NotifyOrderCancelled(ctx context.Context, user *domain.User, event *domain.Event, order *domain.Order) {
	for _, n := range f {
		n.NotifyOrderCancelled(ctx, user, event, order)
	}
}
