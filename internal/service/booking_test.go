package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/clock"
	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/Jairobuifranco/A2-Group17/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingDeps struct {
	eventRepo *mocks.MockEventRepo
	orderRepo *mocks.MockOrderRepo
	userRepo  *mocks.MockUserRepo
	notifier  *mocks.MockOrderNotifier
}

func newBookingService(t *testing.T, opts ...BookingOption) (*BookingService, bookingDeps) {
	t.Helper()
	d := bookingDeps{
		eventRepo: mocks.NewMockEventRepo(t),
		orderRepo: mocks.NewMockOrderRepo(t),
		userRepo:  mocks.NewMockUserRepo(t),
		notifier:  mocks.NewMockOrderNotifier(t),
	}
	opts = append([]BookingOption{WithBookingClock(clock.NewFixed(testNow))}, opts...)
	svc := NewBookingService(passthroughTx(t), d.eventRepo, d.orderRepo, d.userRepo, d.notifier, newTestLogger(t), opts...)
	return svc, d
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, d := newBookingService(t)

	event := openEvent(10, 5)
	user := &domain.User{ID: "u1", Username: "alice"}

	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(event, nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.orderRepo.EXPECT().SumActiveByTier(mock.Anything, "e1").Return(domain.TierCounts{General: 2}, nil).Once()
	d.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.orderRepo.EXPECT().SumActiveByTier(mock.Anything, "e1").Return(domain.TierCounts{General: 5}, nil).Once()
	d.notifier.EXPECT().NotifyOrderPlaced(mock.Anything, user, event, mock.Anything).Return()

	order, err := svc.Book(context.Background(), domain.BookInput{
		EventID: "e1", UserID: "u1", Tier: domain.TierGeneral, Quantity: 3,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "e1", order.EventID)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, int64(3000), order.UnitPriceCents)
	assert.Equal(t, int64(9000), order.TotalCents())
	assert.True(t, order.Active)
	assert.Equal(t, testNow, order.CreatedAt)
	assert.Equal(t, domain.EventStatusOpen, event.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_LastTicketsFlipSoldOut(t *testing.T) {
	svc, d := newBookingService(t)

	event := openEvent(2, 0)
	user := &domain.User{ID: "u1"}

	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(event, nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.orderRepo.EXPECT().SumActiveByTier(mock.Anything, "e1").Return(domain.TierCounts{General: 1}, nil).Once()
	d.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.orderRepo.EXPECT().SumActiveByTier(mock.Anything, "e1").Return(domain.TierCounts{General: 2}, nil).Once()
	d.eventRepo.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusSoldOut).Return(nil)
	d.notifier.EXPECT().NotifyOrderPlaced(mock.Anything, user, event, mock.Anything).Return()

	_, err := svc.Book(context.Background(), domain.BookInput{
		EventID: "e1", UserID: "u1", Tier: domain.TierGeneral, Quantity: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusSoldOut, event.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_CapacityExceeded(t *testing.T) {
	svc, d := newBookingService(t)

	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(openEvent(100, 5), nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.orderRepo.EXPECT().SumActiveByTier(mock.Anything, "e1").Return(domain.TierCounts{VIP: 4}, nil).Once()

	_, err := svc.Book(context.Background(), domain.BookInput{
		EventID: "e1", UserID: "u1", Tier: domain.TierVIP, Quantity: 3,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	var capErr *domain.CapacityExceededError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 1, capErr.Remaining)
	assert.Equal(t, 3, capErr.Requested)
	assert.Equal(t, domain.TierVIP, capErr.Tier)
}

func TestBookingService_Book_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input domain.BookInput
	}{
		{"unknown tier", domain.BookInput{EventID: "e1", UserID: "u1", Tier: "balcony", Quantity: 1}},
		{"zero quantity", domain.BookInput{EventID: "e1", UserID: "u1", Tier: domain.TierGeneral, Quantity: 0}},
		{"negative quantity", domain.BookInput{EventID: "e1", UserID: "u1", Tier: domain.TierGeneral, Quantity: -2}},
		{"above limit", domain.BookInput{EventID: "e1", UserID: "u1", Tier: domain.TierVIP, Quantity: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newBookingService(t)

			d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(openEvent(10, 10), nil)

			_, err := svc.Book(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			d.userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
			d.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestBookingService_Book_UnknownEventBeforeInputChecks(t *testing.T) {
	svc, d := newBookingService(t)

	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Book(context.Background(), domain.BookInput{
		EventID: "missing", UserID: "u1", Tier: "balcony", Quantity: 99,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_ConfiguredLimit(t *testing.T) {
	svc, d := newBookingService(t, WithMaxTicketsPerOrder(2))

	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(openEvent(10, 0), nil)

	_, err := svc.Book(context.Background(), domain.BookInput{
		EventID: "e1", UserID: "u1", Tier: domain.TierGeneral, Quantity: 3,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestBookingService_Book_EventNotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Book(context.Background(), domain.BookInput{
		EventID: "missing", UserID: "u1", Tier: domain.TierGeneral, Quantity: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Book_UserNotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(openEvent(10, 0), nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Book(context.Background(), domain.BookInput{
		EventID: "e1", UserID: "missing", Tier: domain.TierGeneral, Quantity: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Book_Unavailable(t *testing.T) {
	cancelled := openEvent(10, 10)
	cancelled.Status = domain.EventStatusCancelled

	soldOut := openEvent(10, 10)
	soldOut.Status = domain.EventStatusSoldOut

	expired := openEvent(10, 10)
	expired.StartsAt = testNow.Add(-time.Hour)

	tests := []struct {
		name  string
		event *domain.Event
		sold  domain.TierCounts
	}{
		{"cancelled", cancelled, domain.TierCounts{}},
		{"stored sold out", soldOut, domain.TierCounts{General: 1}},
		{"nothing left", openEvent(3, 0), domain.TierCounts{General: 3}},
		{"expired", expired, domain.TierCounts{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newBookingService(t)

			d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(tt.event, nil)
			d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
			d.orderRepo.EXPECT().SumActiveByTier(mock.Anything, "e1").Return(tt.sold, nil).Once()

			_, err := svc.Book(context.Background(), domain.BookInput{
				EventID: "e1", UserID: "u1", Tier: domain.TierGeneral, Quantity: 1,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrBookingUnavailable)
		})
	}
}

func TestBookingService_Book_CreateError(t *testing.T) {
	svc, d := newBookingService(t)

	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(openEvent(10, 0), nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.orderRepo.EXPECT().SumActiveByTier(mock.Anything, "e1").Return(domain.TierCounts{}, nil).Once()
	d.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := svc.Book(context.Background(), domain.BookInput{
		EventID: "e1", UserID: "u1", Tier: domain.TierGeneral, Quantity: 1,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create order")
}

func TestBookingService_Book_InvalidatesCache(t *testing.T) {
	cache := mocks.NewMockAvailabilityCache(t)
	svc, d := newBookingService(t, WithAvailabilityCache(cache))

	event := openEvent(10, 0)
	user := &domain.User{ID: "u1"}

	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(event, nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.orderRepo.EXPECT().SumActiveByTier(mock.Anything, "e1").Return(domain.TierCounts{}, nil).Once()
	d.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.orderRepo.EXPECT().SumActiveByTier(mock.Anything, "e1").Return(domain.TierCounts{General: 1}, nil).Once()
	cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	d.notifier.EXPECT().NotifyOrderPlaced(mock.Anything, user, event, mock.Anything).Return()

	_, err := svc.Book(context.Background(), domain.BookInput{
		EventID: "e1", UserID: "u1", Tier: domain.TierGeneral, Quantity: 1,
	})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_ReopensSoldOutEvent(t *testing.T) {
	svc, d := newBookingService(t)

	event := openEvent(2, 0)
	event.Status = domain.EventStatusSoldOut
	order := &domain.Order{ID: "o1", EventID: "e1", UserID: "u1", Tier: domain.TierGeneral, Quantity: 1, Active: true}
	user := &domain.User{ID: "u1"}

	d.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(event, nil)
	d.orderRepo.EXPECT().Deactivate(mock.Anything, "o1", testNow).Return(true, nil)
	d.orderRepo.EXPECT().SumActiveByTier(mock.Anything, "e1").Return(domain.TierCounts{General: 1}, nil)
	d.eventRepo.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusOpen).Return(nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.notifier.EXPECT().NotifyOrderCancelled(mock.Anything, user, event, order).Return()

	res, err := svc.Cancel(context.Background(), "o1", "u1")

	require.NoError(t, err)
	assert.False(t, res.Active)
	require.NotNil(t, res.CancelledAt)
	assert.Equal(t, testNow, *res.CancelledAt)
	assert.Equal(t, domain.EventStatusOpen, event.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_ByEventOwner(t *testing.T) {
	svc, d := newBookingService(t)

	event := openEvent(10, 0)
	order := &domain.Order{ID: "o1", EventID: "e1", UserID: "u1", Tier: domain.TierGeneral, Quantity: 2, Active: true}
	user := &domain.User{ID: "u1"}

	d.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(event, nil)
	d.orderRepo.EXPECT().Deactivate(mock.Anything, "o1", testNow).Return(true, nil)
	d.orderRepo.EXPECT().SumActiveByTier(mock.Anything, "e1").Return(domain.TierCounts{General: 3}, nil)
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.notifier.EXPECT().NotifyOrderCancelled(mock.Anything, user, event, order).Return()

	_, err := svc.Cancel(context.Background(), "o1", "owner")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Forbidden(t *testing.T) {
	svc, d := newBookingService(t)

	order := &domain.Order{ID: "o1", EventID: "e1", UserID: "u1", Tier: domain.TierGeneral, Quantity: 1, Active: true}

	d.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(openEvent(10, 0), nil)

	_, err := svc.Cancel(context.Background(), "o1", "stranger")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, d := newBookingService(t)

	cancelledAt := testNow.Add(-time.Hour)
	order := &domain.Order{
		ID: "o1", EventID: "e1", UserID: "u1", Tier: domain.TierGeneral, Quantity: 1,
		Active: false, CancelledAt: &cancelledAt,
	}

	d.orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	d.eventRepo.EXPECT().GetByIDForUpdate(mock.Anything, "e1").Return(openEvent(10, 0), nil)
	d.orderRepo.EXPECT().Deactivate(mock.Anything, "o1", testNow).Return(false, nil)

	res, err := svc.Cancel(context.Background(), "o1", "u1")

	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.Equal(t, cancelledAt, *res.CancelledAt)
}

func TestBookingService_Cancel_OrderNotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.orderRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrOrderNotFound)

	_, err := svc.Cancel(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestBookingService_ListByUser_Success(t *testing.T) {
	svc, d := newBookingService(t)

	orders := []*domain.Order{
		{ID: "o1", EventID: "e1", UserID: "u1", Tier: domain.TierVIP, Quantity: 1, Active: true},
	}
	d.orderRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(orders, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestRejectReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&domain.CapacityExceededError{Tier: domain.TierVIP, Requested: 3, Remaining: 1}, "capacity_exceeded"},
		{domain.ErrBookingUnavailable, "unavailable"},
		{domain.ErrEventNotFound, "not_found"},
		{domain.ErrInvalidQuantity, "invalid_input"},
		{domain.ErrInvalidTier, "invalid_input"},
		{errors.New("db down"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, rejectReason(tt.err))
		})
	}
}
