package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/Jairobuifranco/A2-Group17/internal/service/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// passthroughTx runs the transaction body directly on the caller's context.
func passthroughTx(t *testing.T) *mocks.MockTxManager {
	t.Helper()
	tx := mocks.NewMockTxManager(t)
	tx.EXPECT().WithTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	return tx
}

func openEvent(general, vip int) *domain.Event {
	return &domain.Event{
		ID:       "e1",
		OwnerID:  "owner",
		Title:    "Jazz Night",
		Venue:    "Main Hall",
		StartsAt: testNow.Add(48 * time.Hour),
		General:  domain.TierSpec{PriceCents: 3000, Capacity: general},
		VIP:      domain.TierSpec{PriceCents: 12000, Capacity: vip},
		Status:   domain.EventStatusOpen,
	}
}

// memStore is an in-memory ledger used to run whole booking scenarios.
type memStore struct {
	mu     sync.Mutex
	events map[string]*domain.Event
	orders map[string]*domain.Order
	users  map[string]*domain.User
}

func newMemStore() *memStore {
	return &memStore{
		events: map[string]*domain.Event{},
		orders: map[string]*domain.Order{},
		users:  map[string]*domain.User{},
	}
}

func (m *memStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memEvents struct{ *memStore }

func (m memEvents) Create(_ context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *e
	m.events[e.ID] = &cp
	return nil
}

func (m memEvents) GetByID(_ context.Context, id string) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (m memEvents) GetByIDForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	return m.GetByID(ctx, id)
}

func (m memEvents) Update(ctx context.Context, e *domain.Event) error {
	return m.Create(ctx, e)
}

func (m memEvents) UpdateStatus(_ context.Context, id string, status domain.EventStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	e.Status = status
	return nil
}

func (m memEvents) List(_ context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := strings.ToLower(f.Query)
	res := make([]*domain.Event, 0, len(m.events))
	for _, e := range m.events {
		if f.Category != "" && !strings.EqualFold(e.Category, f.Category) {
			continue
		}
		text := strings.ToLower(e.Title + "\n" + e.Venue + "\n" + e.Category + "\n" + e.Description)
		if q != "" && !strings.Contains(text, q) {
			continue
		}
		cp := *e
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (m memEvents) MarkExpired(_ context.Context, now time.Time) ([]*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*domain.Event
	for _, e := range m.events {
		if (e.Status == domain.EventStatusOpen || e.Status == domain.EventStatusSoldOut) && now.After(e.ExpiresAt()) {
			e.Status = domain.EventStatusInactive
			cp := *e
			res = append(res, &cp)
		}
	}
	return res, nil
}

type memOrders struct{ *memStore }

func (m memOrders) Create(_ context.Context, o *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m memOrders) GetByID(_ context.Context, id string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (m memOrders) Deactivate(_ context.Context, id string, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || !o.Active {
		return false, nil
	}
	o.Active = false
	o.CancelledAt = &at
	return true, nil
}

func (m memOrders) SumActive(_ context.Context, eventID string, tier domain.Tier) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, o := range m.orders {
		if o.EventID == eventID && o.Tier == tier && o.Active {
			total += o.Quantity
		}
	}
	return total, nil
}

func (m memOrders) SumActiveByTier(_ context.Context, eventID string) (domain.TierCounts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var c domain.TierCounts
	for _, o := range m.orders {
		if o.EventID == eventID && o.Active {
			if err := c.Add(o.Tier, o.Quantity); err != nil {
				return domain.TierCounts{}, err
			}
		}
	}
	return c, nil
}

func (m memOrders) SumActiveByEvents(ctx context.Context, eventIDs []string) (map[string]domain.TierCounts, error) {
	res := make(map[string]domain.TierCounts, len(eventIDs))
	for _, id := range eventIDs {
		c, err := m.SumActiveByTier(ctx, id)
		if err != nil {
			return nil, err
		}
		res[id] = c
	}
	return res, nil
}

func (m memOrders) ListActiveByEvent(_ context.Context, eventID string) ([]*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*domain.Order
	for _, o := range m.orders {
		if o.EventID == eventID && o.Active {
			cp := *o
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (m memOrders) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*domain.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			cp := *o
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (m memOrders) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

type memUsers struct{ *memStore }

func (m memUsers) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m memUsers) List(context.Context) ([]*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		res = append(res, &cp)
	}
	return res, nil
}

type nopNotifier struct{}

func (nopNotifier) NotifyOrderPlaced(context.Context, *domain.User, *domain.Event, *domain.Order)    {}
func (nopNotifier) NotifyOrderCancelled(context.Context, *domain.User, *domain.Event, *domain.Order) {}
