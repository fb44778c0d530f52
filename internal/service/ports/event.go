package ports

import (
	"context"
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// GetByIDForUpdate locks the event row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error
	List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error)
	MarkExpired(ctx context.Context, now time.Time) ([]*domain.Event, error)
}
