// Package inventory derives ticket availability and the display status of an
// event from its active orders. Nothing here writes to storage.
package inventory

import (
	"context"
	"fmt"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
)

// Ledger is the read side of the order table.
type Ledger interface {
	SumActive(ctx context.Context, eventID string, tier domain.Tier) (int, error)
	SumActiveByTier(ctx context.Context, eventID string) (domain.TierCounts, error)
	SumActiveByEvents(ctx context.Context, eventIDs []string) (map[string]domain.TierCounts, error)
}

type Calculator struct {
	ledger Ledger
}

func NewCalculator(ledger Ledger) *Calculator {
	return &Calculator{ledger: ledger}
}

// Sold returns the number of tickets held by active orders for one tier.
func (c *Calculator) Sold(ctx context.Context, eventID string, tier domain.Tier) (int, error) {
	if !tier.Valid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTier, string(tier))
	}

	sold, err := c.ledger.SumActive(ctx, eventID, tier)
	if err != nil {
		return 0, fmt.Errorf("sum active orders: %w", err)
	}
	return sold, nil
}

func (c *Calculator) Availability(ctx context.Context, e *domain.Event) (domain.Availability, error) {
	sold, err := c.ledger.SumActiveByTier(ctx, e.ID)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("sum active orders by tier: %w", err)
	}
	return Compute(e, sold), nil
}

// AvailabilityFor computes availability for many events with one ledger query.
func (c *Calculator) AvailabilityFor(ctx context.Context, events []*domain.Event) (map[string]domain.Availability, error) {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}

	sold, err := c.ledger.SumActiveByEvents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("sum active orders by event: %w", err)
	}

	res := make(map[string]domain.Availability, len(events))
	for _, e := range events {
		res[e.ID] = Compute(e, sold[e.ID])
	}
	return res, nil
}

// Compute floors every remaining count at zero, so an oversold tier never
// reports negative availability.
func Compute(e *domain.Event, sold domain.TierCounts) domain.Availability {
	capacity := e.Capacity()
	remaining := domain.TierCounts{
		General: max(capacity.General-sold.General, 0),
		VIP:     max(capacity.VIP-sold.VIP, 0),
	}

	return domain.Availability{
		Sold:           sold,
		Remaining:      remaining,
		TotalSold:      sold.Total(),
		TotalRemaining: remaining.Total(),
	}
}
