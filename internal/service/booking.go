package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jairobuifranco/A2-Group17/internal/clock"
	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/Jairobuifranco/A2-Group17/internal/inventory"
	"github.com/Jairobuifranco/A2-Group17/internal/metrics"
	"github.com/Jairobuifranco/A2-Group17/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const defaultMaxTicketsPerOrder = 8

type BookingService struct {
	tx          ports.TxManager
	eventRepo   ports.EventRepo
	orderRepo   ports.OrderRepo
	userRepo    ports.UserRepo
	calc        *inventory.Calculator
	cache       ports.AvailabilityCache
	notifier    ports.OrderNotifier
	clock       clock.Clock
	logger      logger.Logger
	maxQuantity int
}

type BookingOption func(*BookingService)

// WithMaxTicketsPerOrder caps the quantity of a single order.
func WithMaxTicketsPerOrder(n int) BookingOption {
	return func(s *BookingService) {
		if n > 0 {
			s.maxQuantity = n
		}
	}
}

// WithAvailabilityCache invalidates cached availability after every change.
func WithAvailabilityCache(c ports.AvailabilityCache) BookingOption {
	return func(s *BookingService) {
		s.cache = c
	}
}

func WithBookingClock(clk clock.Clock) BookingOption {
	return func(s *BookingService) {
		s.clock = clk
	}
}

func NewBookingService(
	tx ports.TxManager,
	eventRepo ports.EventRepo,
	orderRepo ports.OrderRepo,
	userRepo ports.UserRepo,
	notifier ports.OrderNotifier,
	logger logger.Logger,
	opts ...BookingOption,
) *BookingService {
	s := &BookingService{
		tx:          tx,
		eventRepo:   eventRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		calc:        inventory.NewCalculator(orderRepo),
		notifier:    notifier,
		clock:       clock.NewSystem(),
		logger:      logger,
		maxQuantity: defaultMaxTicketsPerOrder,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Book places an order for in.Quantity tickets of in.Tier. The event row stays
// locked from the capacity check until the order is committed, so two
// bookings for the last tickets cannot both succeed. An unknown event is
// reported before any problem with the tier or quantity.
func (s *BookingService) Book(ctx context.Context, in domain.BookInput) (*domain.Order, error) {
	var (
		order *domain.Order
		event *domain.Event
		user  *domain.User
	)

	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		e, err := s.eventRepo.GetByIDForUpdate(txCtx, in.EventID)
		if err != nil {
			return fmt.Errorf("check event: %w", err)
		}

		if !in.Tier.Valid() {
			return fmt.Errorf("%w: %q", domain.ErrInvalidTier, string(in.Tier))
		}
		if in.Quantity < 1 || in.Quantity > s.maxQuantity {
			return fmt.Errorf("%w: must be between 1 and %d", domain.ErrInvalidQuantity, s.maxQuantity)
		}

		u, err := s.userRepo.GetByID(txCtx, in.UserID)
		if err != nil {
			return fmt.Errorf("check user: %w", err)
		}

		avail, err := s.calc.Availability(txCtx, e)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if status := inventory.Status(e, avail, now); !inventory.Bookable(status) {
			return fmt.Errorf("%w: event is %s", domain.ErrBookingUnavailable, status)
		}

		spec, err := e.Tier(in.Tier)
		if err != nil {
			return err
		}
		remaining, err := avail.Remaining.Get(in.Tier)
		if err != nil {
			return err
		}
		if in.Quantity > remaining {
			return &domain.CapacityExceededError{
				Tier:      in.Tier,
				Requested: in.Quantity,
				Remaining: remaining,
			}
		}

		o := &domain.Order{
			ID:             uuid.New().String(),
			EventID:        e.ID,
			UserID:         u.ID,
			Tier:           in.Tier,
			Quantity:       in.Quantity,
			UnitPriceCents: spec.PriceCents,
			Active:         true,
			CreatedAt:      now,
		}
		if err = s.orderRepo.Create(txCtx, o); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if err = s.settleStatus(txCtx, e); err != nil {
			return err
		}

		order, event, user = o, e, u
		return nil
	})
	if err != nil {
		metrics.RecordBookingRejected(rejectReason(err))
		return nil, err
	}

	s.invalidate(ctx, event.ID)
	metrics.RecordTicketsBooked(string(order.Tier), order.Quantity)

	s.logger.Info("order placed",
		logger.String("order_id", order.ID),
		logger.String("event_id", event.ID),
		logger.String("user_id", user.ID),
		logger.String("tier", string(order.Tier)),
		logger.Int("quantity", order.Quantity),
		logger.String("event_status", string(event.Status)),
	)

	go s.notifier.NotifyOrderPlaced(context.WithoutCancel(ctx), user, event, order)

	return order, nil
}

// Cancel marks an order inactive. The order's owner and the event's owner may
// cancel it. Cancelling an already cancelled order succeeds without changing
// anything.
func (s *BookingService) Cancel(ctx context.Context, orderID, actorID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	var (
		event   *domain.Event
		changed bool
	)

	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		e, err := s.eventRepo.GetByIDForUpdate(txCtx, order.EventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}

		if actorID != order.UserID && actorID != e.OwnerID {
			return fmt.Errorf("%w: only the ticket holder or the event owner can cancel an order", domain.ErrForbidden)
		}

		now := s.clock.Now()
		changed, err = s.orderRepo.Deactivate(txCtx, order.ID, now)
		if err != nil {
			return fmt.Errorf("deactivate order: %w", err)
		}
		if !changed {
			return nil
		}
		order.Active = false
		order.CancelledAt = &now

		if err = s.settleStatus(txCtx, e); err != nil {
			return err
		}

		event = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !changed {
		s.logger.Debug("order already cancelled", logger.String("order_id", order.ID))
		return order, nil
	}

	s.invalidate(ctx, event.ID)
	metrics.RecordTicketsReleased(string(order.Tier), order.Quantity)

	s.logger.Info("order cancelled",
		logger.String("order_id", order.ID),
		logger.String("event_id", event.ID),
		logger.String("actor_id", actorID),
		logger.String("event_status", string(event.Status)),
	)

	user, err := s.userRepo.GetByID(ctx, order.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", order.UserID),
			logger.String("error", err.Error()),
		)
		return order, nil
	}

	go s.notifier.NotifyOrderCancelled(context.WithoutCancel(ctx), user, event, order)

	return order, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// settleStatus re-reads the ledger and moves the stored label between Open and
// Sold Out when the remaining count requires it.
func (s *BookingService) settleStatus(ctx context.Context, e *domain.Event) error {
	avail, err := s.calc.Availability(ctx, e)
	if err != nil {
		return err
	}

	next := inventory.Settle(e.Status, avail.TotalRemaining)
	if next == e.Status {
		return nil
	}

	if err = s.eventRepo.UpdateStatus(ctx, e.ID, next); err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	e.Status = next
	return nil
}

func (s *BookingService) invalidate(ctx context.Context, eventID string) {
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

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, domain.ErrBookingUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrEventNotFound), errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid_input"
	default:
		return "error"
	}
}
