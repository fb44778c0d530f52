package notification

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/Jairobuifranco/A2-Group17/internal/notification/mocks"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func fixtures() (*domain.User, *domain.Event, *domain.Order) {
	chatID := int64(7)
	at := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	user := &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com", TelegramChatID: &chatID}
	event := &domain.Event{ID: "e1", Title: "Jazz Night", Venue: "Main Hall", StartsAt: at}
	order := &domain.Order{
		ID: "o1", EventID: "e1", UserID: "u1", Tier: domain.TierVIP,
		Quantity: 2, UnitPriceCents: 12050, Active: true, CreatedAt: at,
	}
	return user, event, order
}

func TestOrderEvents_PublishesPlaced(t *testing.T) {
	pub := mocks.NewMockMessagePublisher(t)
	n := NewOrderEvents(pub, newTestLogger(t))
	user, event, order := fixtures()

	var body []byte
	pub.EXPECT().Publish(mock.Anything, RoutingOrderPlaced, mock.AnythingOfType("string"), mock.Anything).
		Run(func(_ context.Context, _ string, _ string, b []byte) { body = b }).
		Return(nil)

	n.NotifyOrderPlaced(context.Background(), user, event, order)

	var msg OrderMessage
	require.NoError(t, json.Unmarshal(body, &msg))
	assert.Equal(t, RoutingOrderPlaced, msg.Type)
	assert.Equal(t, "o1", msg.OrderID)
	assert.Equal(t, "alice@example.com", msg.Email)
	assert.Equal(t, int64(24100), msg.TotalCents)
	assert.Equal(t, order.CreatedAt, msg.OccurredAt)
}

func TestOrderEvents_PublishesCancelled(t *testing.T) {
	pub := mocks.NewMockMessagePublisher(t)
	n := NewOrderEvents(pub, newTestLogger(t))
	user, event, order := fixtures()

	cancelledAt := order.CreatedAt.Add(time.Hour)
	order.Active = false
	order.CancelledAt = &cancelledAt

	var body []byte
	pub.EXPECT().Publish(mock.Anything, RoutingOrderCancelled, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, _ string, b []byte) { body = b }).
		Return(nil)

	n.NotifyOrderCancelled(context.Background(), user, event, order)

	var msg OrderMessage
	require.NoError(t, json.Unmarshal(body, &msg))
	assert.Equal(t, cancelledAt, msg.OccurredAt)
}

func TestOrderEvents_PublishErrorIsSwallowed(t *testing.T) {
	pub := mocks.NewMockMessagePublisher(t)
	n := NewOrderEvents(pub, newTestLogger(t))
	user, event, order := fixtures()

	pub.EXPECT().Publish(mock.Anything, RoutingOrderPlaced, mock.Anything, mock.Anything).
		Return(errors.New("channel closed"))

	assert.NotPanics(t, func() {
		n.NotifyOrderPlaced(context.Background(), user, event, order)
	})
}

type recordingNotifier struct {
	mu     sync.Mutex
	placed int
}

func (r *recordingNotifier) NotifyOrderPlaced(context.Context, *domain.User, *domain.Event, *domain.Order) {
	r.mu.Lock()
	r.placed++
	r.mu.Unlock()
}

func (r *recordingNotifier) NotifyOrderCancelled(context.Context, *domain.User, *domain.Event, *domain.Order) {
}

func TestFanout_DeliversToAll(t *testing.T) {
	a, b := &recordingNotifier{}, &recordingNotifier{}
	user, event, order := fixtures()

	Fanout{a, b}.NotifyOrderPlaced(context.Background(), user, event, order)

	assert.Equal(t, 1, a.placed)
	assert.Equal(t, 1, b.placed)
}

type stubSender struct {
	calls int
	err   error
	last  tgbotapi.MessageConfig
}

func (s *stubSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.calls++
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		s.last = msg
	}
	return tgbotapi.Message{}, s.err
}

func TestTelegramNotifier_SendsToChat(t *testing.T) {
	sender := &stubSender{}
	n := newTelegramNotifier(sender, newTestLogger(t))
	user, event, order := fixtures()

	n.NotifyOrderPlaced(context.Background(), user, event, order)

	require.Equal(t, 1, sender.calls)
	assert.Equal(t, int64(7), sender.last.ChatID)
	assert.Contains(t, sender.last.Text, "Jazz Night")
	assert.Contains(t, sender.last.Text, "241.00")
}

func TestTelegramNotifier_SkipsWithoutChatID(t *testing.T) {
	sender := &stubSender{}
	n := newTelegramNotifier(sender, newTestLogger(t))
	user, event, order := fixtures()
	user.TelegramChatID = nil

	n.NotifyOrderCancelled(context.Background(), user, event, order)

	assert.Equal(t, 0, sender.calls)
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)
	user, event, order := fixtures()

	assert.NotPanics(t, func() {
		n.NotifyOrderPlaced(context.Background(), user, event, order)
	})
}

func TestTelegramNotifier_BreakerOpensAfterFailures(t *testing.T) {
	sender := &stubSender{err: errors.New("telegram unavailable")}
	n := newTelegramNotifier(sender, newTestLogger(t))
	user, event, order := fixtures()

	for i := 0; i < 5; i++ {
		n.NotifyOrderPlaced(context.Background(), user, event, order)
	}

	assert.Equal(t, 3, sender.calls)
}
