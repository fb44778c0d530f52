package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Jairobuifranco/A2-Group17/internal/clock"
	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/Jairobuifranco/A2-Group17/internal/inventory"
	"github.com/Jairobuifranco/A2-Group17/internal/metrics"
	"github.com/Jairobuifranco/A2-Group17/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultMaxEventCapacity = 10000
	maxCategoryLen          = 60
)

type EventService struct {
	tx          ports.TxManager
	repo        ports.EventRepo
	orderRepo   ports.OrderRepo
	commentRepo ports.CommentRepo
	calc        *inventory.Calculator
	cache       ports.AvailabilityCache
	clock       clock.Clock
	logger      logger.Logger
	maxCapacity int
}

type EventOption func(*EventService)

// WithMaxEventCapacity bounds the sum of both tier capacities of one event.
func WithMaxEventCapacity(n int) EventOption {
	return func(s *EventService) {
		if n > 0 {
			s.maxCapacity = n
		}
	}
}

func WithEventCache(c ports.AvailabilityCache) EventOption {
	return func(s *EventService) {
		s.cache = c
	}
}

func WithEventClock(clk clock.Clock) EventOption {
	return func(s *EventService) {
		s.clock = clk
	}
}

func NewEventService(
	tx ports.TxManager,
	repo ports.EventRepo,
	orderRepo ports.OrderRepo,
	commentRepo ports.CommentRepo,
	logger logger.Logger,
	opts ...EventOption,
) *EventService {
	s := &EventService{
		tx:          tx,
		repo:        repo,
		orderRepo:   orderRepo,
		commentRepo: commentRepo,
		calc:        inventory.NewCalculator(orderRepo),
		clock:       clock.NewSystem(),
		logger:      logger,
		maxCapacity: defaultMaxEventCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrValidation)
	}
	if err := s.validate(input.EventInput); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if !input.StartsAt.After(now) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:        uuid.New().String(),
		OwnerID:   input.OwnerID,
		Status:    domain.EventStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	apply(event, input.EventInput)

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("owner_id", event.OwnerID),
		logger.Int("capacity", event.Capacity().Total()),
	)

	return event, nil
}

// UpdateEvent replaces the editable fields of an event. A tier cannot shrink
// below the tickets already sold in it.
func (s *EventService) UpdateEvent(ctx context.Context, id, actorID string, input domain.EventInput) (*domain.Event, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	var out *domain.Event
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		e, err := s.lockOwned(txCtx, id, actorID)
		if err != nil {
			return err
		}
		if e.Status == domain.EventStatusCancelled {
			return fmt.Errorf("%w: cancelled events cannot be edited", domain.ErrInvalidState)
		}

		sold, err := s.orderRepo.SumActiveByTier(txCtx, e.ID)
		if err != nil {
			return fmt.Errorf("sum active orders by tier: %w", err)
		}
		if input.General.Capacity < sold.General {
			return fmt.Errorf("%w: general capacity below %d tickets already sold", domain.ErrValidation, sold.General)
		}
		if input.VIP.Capacity < sold.VIP {
			return fmt.Errorf("%w: vip capacity below %d tickets already sold", domain.ErrValidation, sold.VIP)
		}

		apply(e, input)
		e.Status = inventory.Settle(e.Status, inventory.Compute(e, sold).TotalRemaining)
		e.UpdatedAt = s.clock.Now()

		if err = s.repo.Update(txCtx, e); err != nil {
			return fmt.Errorf("update event: %w", err)
		}

		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, out.ID)
	s.logger.Info("event updated",
		logger.String("event_id", out.ID),
		logger.String("status", string(out.Status)),
	)

	return out, nil
}

// CancelEvent closes an event for booking. Existing orders are kept.
func (s *EventService) CancelEvent(ctx context.Context, id, actorID string) (*domain.Event, error) {
	var out *domain.Event
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		e, err := s.lockOwned(txCtx, id, actorID)
		if err != nil {
			return err
		}

		if e.Status != domain.EventStatusCancelled {
			if err = s.repo.UpdateStatus(txCtx, e.ID, domain.EventStatusCancelled); err != nil {
				return fmt.Errorf("cancel event: %w", err)
			}
			e.Status = domain.EventStatusCancelled
		}

		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("event cancelled", logger.String("event_id", out.ID))
	return out, nil
}

// ReopenEvent brings a cancelled or inactive event back. The new label is
// Sold Out when no tickets remain.
func (s *EventService) ReopenEvent(ctx context.Context, id, actorID string) (*domain.Event, error) {
	var out *domain.Event
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		e, err := s.lockOwned(txCtx, id, actorID)
		if err != nil {
			return err
		}

		if e.Status != domain.EventStatusCancelled && e.Status != domain.EventStatusInactive {
			return fmt.Errorf("%w: event is %s", domain.ErrInvalidState, e.Status)
		}
		if inventory.IsExpired(e, s.clock.Now()) {
			return fmt.Errorf("%w: event has already ended", domain.ErrInvalidState)
		}

		avail, err := s.calc.Availability(txCtx, e)
		if err != nil {
			return err
		}

		next := domain.EventStatusOpen
		if avail.TotalRemaining <= 0 {
			next = domain.EventStatusSoldOut
		}
		if err = s.repo.UpdateStatus(txCtx, e.ID, next); err != nil {
			return fmt.Errorf("reopen event: %w", err)
		}
		e.Status = next

		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("event reopened",
		logger.String("event_id", out.ID),
		logger.String("status", string(out.Status)),
	)
	return out, nil
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	avail, err := s.availability(ctx, e)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListActiveByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	comments, err := s.commentRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	details := &domain.EventDetails{
		EventSummary: domain.EventSummary{
			Event:        *e,
			Availability: avail,
			Status:       inventory.Status(e, avail, s.clock.Now()),
		},
		Orders:   make([]domain.Order, len(orders)),
		Comments: make([]domain.Comment, len(comments)),
	}
	for i, o := range orders {
		details.Orders[i] = *o
	}
	for i, c := range comments {
		details.Comments[i] = *c
	}

	return details, nil
}

// List returns the events matching f, split at their expiry. Upcoming events
// that can still be booked come first.
func (s *EventService) List(ctx context.Context, f domain.EventFilter) (*domain.EventListing, error) {
	f.Query = strings.TrimSpace(f.Query)
	f.Category = strings.TrimSpace(f.Category)

	events, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	avail, err := s.calc.AvailabilityFor(ctx, events)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := &domain.EventListing{
		Upcoming: make([]*domain.EventSummary, 0, len(events)),
		Past:     make([]*domain.EventSummary, 0),
	}
	for _, e := range events {
		a := avail[e.ID]
		sum := &domain.EventSummary{
			Event:        *e,
			Availability: a,
			Status:       inventory.Status(e, a, now),
		}
		if inventory.IsExpired(e, now) {
			out.Past = append(out.Past, sum)
			continue
		}
		out.Upcoming = append(out.Upcoming, sum)
	}

	byStart := func(list []*domain.EventSummary) func(i, j int) bool {
		return func(i, j int) bool { return list[i].StartsAt.Before(list[j].StartsAt) }
	}
	sort.SliceStable(out.Past, byStart(out.Past))
	sort.SliceStable(out.Upcoming, func(i, j int) bool {
		bi, bj := inventory.Bookable(out.Upcoming[i].Status), inventory.Bookable(out.Upcoming[j].Status)
		if bi != bj {
			return bi
		}
		return out.Upcoming[i].StartsAt.Before(out.Upcoming[j].StartsAt)
	})

	return out, nil
}

// ExpirePast marks Open and Sold Out events whose time has passed as Inactive.
func (s *EventService) ExpirePast(ctx context.Context) ([]*domain.Event, error) {
	expired, err := s.repo.MarkExpired(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("mark expired: %w", err)
	}

	if len(expired) > 0 {
		metrics.RecordEventsExpired(len(expired))
		s.logger.Info("past events marked inactive",
			logger.Int("count", len(expired)),
		)
	}

	return expired, nil
}

func (s *EventService) lockOwned(ctx context.Context, id, actorID string) (*domain.Event, error) {
	e, err := s.repo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if e.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the event owner can manage this event", domain.ErrForbidden)
	}
	return e, nil
}

// availability reads through the cache when one is configured. Cache failures
// fall back to the ledger. The version is read before the ledger so a value
// computed across an Invalidate is never stored.
func (s *EventService) availability(ctx context.Context, e *domain.Event) (domain.Availability, error) {
	cacheable := false
	var version int64
	if s.cache != nil {
		v, err := s.cache.Version(ctx, e.ID)
		if err != nil {
			s.logger.Warn("availability cache version read failed",
				logger.String("event_id", e.ID),
				logger.String("error", err.Error()),
			)
		} else {
			cacheable, version = true, v
		}
	}

	if cacheable {
		cached, ok, err := s.cache.Get(ctx, e.ID)
		if err != nil {
			s.logger.Warn("availability cache read failed",
				logger.String("event_id", e.ID),
				logger.String("error", err.Error()),
			)
		} else if ok {
			return *cached, nil
		}
	}

	avail, err := s.calc.Availability(ctx, e)
	if err != nil {
		return domain.Availability{}, err
	}

	if cacheable {
		stored, err := s.cache.Set(ctx, e.ID, version, avail)
		switch {
		case err != nil:
			s.logger.Warn("availability cache write failed",
				logger.String("event_id", e.ID),
				logger.String("error", err.Error()),
			)
		case !stored:
			s.logger.Debug("availability cache write skipped, invalidated meanwhile",
				logger.String("event_id", e.ID),
			)
		}
	}

	return avail, nil
}

func (s *EventService) invalidate(ctx context.Context, eventID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, eventID); err != nil {
		s.logger.Warn("availability cache invalidate failed",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *EventService) validate(in domain.EventInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Venue) == "" {
		return fmt.Errorf("%w: venue is required", domain.ErrValidation)
	}
	if in.StartsAt.IsZero() {
		return fmt.Errorf("%w: starts_at is required", domain.ErrValidation)
	}
	if in.EndsAt != nil && !in.EndsAt.After(in.StartsAt) {
		return fmt.Errorf("%w: ends_at must be after starts_at", domain.ErrValidation)
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Category)) > maxCategoryLen {
		return fmt.Errorf("%w: category exceeds %d characters", domain.ErrValidation, maxCategoryLen)
	}
	if in.General.Capacity < 0 || in.VIP.Capacity < 0 {
		return fmt.Errorf("%w: capacity cannot be negative", domain.ErrValidation)
	}
	if in.General.Capacity == 0 && in.VIP.Capacity == 0 {
		return fmt.Errorf("%w: at least one tier needs capacity", domain.ErrValidation)
	}
	if in.General.Capacity+in.VIP.Capacity > s.maxCapacity {
		return fmt.Errorf("%w: total capacity exceeds %d", domain.ErrValidation, s.maxCapacity)
	}
	if in.General.PriceCents < 0 || in.VIP.PriceCents < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	return nil
}

func apply(e *domain.Event, in domain.EventInput) {
	e.Title = strings.TrimSpace(in.Title)
	e.Description = in.Description
	e.Venue = strings.TrimSpace(in.Venue)
	e.Category = strings.TrimSpace(in.Category)
	e.StartsAt = in.StartsAt
	e.EndsAt = in.EndsAt
	e.General = in.General
	e.VIP = in.VIP
}
