package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sony/gobreaker"
	"github.com/wb-go/wbf/logger"
)

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier messages ticket holders about their orders. A breaker
// stops calls to the Bot API after repeated failures.
type TelegramNotifier struct {
	bot    messageSender
	cb     *gobreaker.CircuitBreaker
	logger logger.Logger
}

func NewTelegramNotifier(token string, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return newTelegramNotifier(bot, log), nil
}

func newTelegramNotifier(bot messageSender, log logger.Logger) *TelegramNotifier {
	settings := gobreaker.Settings{
		Name:        "telegram",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				logger.String("name", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
	}

	return &TelegramNotifier{
		bot:    bot,
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: log,
	}
}

func (n *TelegramNotifier) NotifyOrderPlaced(ctx context.Context, user *domain.User, event *domain.Event, order *domain.Order) {
	text := fmt.Sprintf(
		"*Order confirmed*\n\n"+"Event: %s\n"+"Venue: %s\n"+"Starts (UTC): %s\n"+"Tickets: %d x %s\n"+"Total: %s",
		event.Title, event.Venue, event.StartsAt.Format("02.01.2006 15:04"),
		order.Quantity, order.Tier, formatCents(order.TotalCents()),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyOrderCancelled(ctx context.Context, user *domain.User, event *domain.Event, order *domain.Order) {
	text := fmt.Sprintf(
		"*Order cancelled*\n\n"+"Event: %s\n"+"Tickets released: %d x %s",
		event.Title, order.Quantity, order.Tier,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	_, err := n.cb.Execute(func() (interface{}, error) {
		return n.bot.Send(msg)
	})
	if err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

func formatCents(c int64) string {
	return fmt.Sprintf("%d.%02d", c/100, c%100)
}
