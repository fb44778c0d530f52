package ports

import (
	"context"
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
)

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// Deactivate flips an active order to cancelled and reports whether a row changed.
	Deactivate(ctx context.Context, id string, at time.Time) (bool, error)
	SumActive(ctx context.Context, eventID string, tier domain.Tier) (int, error)
	SumActiveByTier(ctx context.Context, eventID string) (domain.TierCounts, error)
	SumActiveByEvents(ctx context.Context, eventIDs []string) (map[string]domain.TierCounts, error)
	ListActiveByEvent(ctx context.Context, eventID string) ([]*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
}
