package ports

import (
	"context"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
)

// AvailabilityCache stores computed availability per event. Every Invalidate
// bumps the event's version; Set only stores a value computed under the
// version that is still current.
type AvailabilityCache interface {
	Get(ctx context.Context, eventID string) (*domain.Availability, bool, error)
	Version(ctx context.Context, eventID string) (int64, error)
	Set(ctx context.Context, eventID string, version int64, a domain.Availability) (bool, error)
	Invalidate(ctx context.Context, eventID string) error
}
