package ports

import (
	"context"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
)

type OrderNotifier interface {
	NotifyOrderPlaced(ctx context.Context, user *domain.User, event *domain.Event, order *domain.Order)
	NotifyOrderCancelled(ctx context.Context, user *domain.User, event *domain.Event, order *domain.Order)
}
