package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const (
	RoutingOrderPlaced    = "order.placed"
	RoutingOrderCancelled = "order.cancelled"
)

type messagePublisher interface {
	Publish(ctx context.Context, routingKey, messageID string, body []byte) error
}

// OrderMessage is the body of every order message on the exchange.
type OrderMessage struct {
	Type           string      `json:"type"`
	OrderID        string      `json:"order_id"`
	EventID        string      `json:"event_id"`
	EventTitle     string      `json:"event_title"`
	UserID         string      `json:"user_id"`
	Email          string      `json:"email,omitempty"`
	Tier           domain.Tier `json:"tier"`
	Quantity       int         `json:"quantity"`
	UnitPriceCents int64       `json:"unit_price_cents"`
	TotalCents     int64       `json:"total_cents"`
	OccurredAt     time.Time   `json:"occurred_at"`
}

// OrderEvents publishes order changes for downstream consumers such as
// mailers and analytics.
type OrderEvents struct {
	publisher messagePublisher
	logger    logger.Logger
}

func NewOrderEvents(publisher messagePublisher, log logger.Logger) *OrderEvents {
	return &OrderEvents{publisher: publisher, logger: log}
}

func (n *OrderEvents) NotifyOrderPlaced(ctx context.Context, user *domain.User, event *domain.Event, order *domain.Order) {
	n.publish(ctx, RoutingOrderPlaced, user, event, order, order.CreatedAt)
}

func (n *OrderEvents) NotifyOrderCancelled(ctx context.Context, user *domain.User, event *domain.Event, order *domain.Order) {
	at := time.Now().UTC()
	if order.CancelledAt != nil {
		at = *order.CancelledAt
	}
	n.publish(ctx, RoutingOrderCancelled, user, event, order, at)
}

func (n *OrderEvents) publish(
	ctx context.Context,
	routingKey string,
	user *domain.User,
	event *domain.Event,
	order *domain.Order,
	at time.Time,
) {
	body, err := json.Marshal(OrderMessage{
		Type:           routingKey,
		OrderID:        order.ID,
		EventID:        event.ID,
		EventTitle:     event.Title,
		UserID:         user.ID,
		Email:          user.Email,
		Tier:           order.Tier,
		Quantity:       order.Quantity,
		UnitPriceCents: order.UnitPriceCents,
		TotalCents:     order.TotalCents(),
		OccurredAt:     at,
	})
	if err != nil {
		n.logger.Error("failed to encode order message",
			logger.String("order_id", order.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	if err = n.publisher.Publish(ctx, routingKey, uuid.New().String(), body); err != nil {
		n.logger.Error("failed to publish order message",
			logger.String("routing_key", routingKey),
			logger.String("order_id", order.ID),
			logger.String("error", err.Error()),
		)
	}
}
