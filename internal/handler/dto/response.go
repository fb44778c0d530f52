package dto

import (
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
)

type TierResponse struct {
	PriceCents int64 `json:"price_cents"`
	Capacity   int   `json:"capacity"`
	Sold       int   `json:"sold"`
	Remaining  int   `json:"remaining"`
}

type EventResponse struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Venue       string  `json:"venue"`
	Category    string  `json:"category"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      *string `json:"ends_at,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

type EventSummaryResponse struct {
	EventResponse
	General        TierResponse `json:"general"`
	VIP            TierResponse `json:"vip"`
	TotalSold      int          `json:"total_sold"`
	TotalRemaining int          `json:"total_remaining"`
}

type EventListResponse struct {
	Upcoming []EventSummaryResponse `json:"upcoming"`
	Past     []EventSummaryResponse `json:"past"`
}

type EventDetailsResponse struct {
	EventSummaryResponse
	Orders   []OrderResponse   `json:"orders"`
	Comments []CommentResponse `json:"comments"`
}

type OrderResponse struct {
	ID             string  `json:"id"`
	EventID        string  `json:"event_id"`
	UserID         string  `json:"user_id"`
	Tier           string  `json:"tier"`
	Quantity       int     `json:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents"`
	TotalCents     int64   `json:"total_cents"`
	Active         bool    `json:"active"`
	CreatedAt      string  `json:"created_at"`
	CancelledAt    *string `json:"cancelled_at,omitempty"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Remaining *int   `json:"remaining,omitempty"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// ToEventResponse reports the stored status. Use the summary response where
// the resolved status matters.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Title:       e.Title,
		Description: e.Description,
		Venue:       e.Venue,
		Category:    e.Category,
		StartsAt:    e.StartsAt.Format(time.RFC3339),
		EndsAt:      formatTime(e.EndsAt),
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventSummaryResponse(s *domain.EventSummary) EventSummaryResponse {
	event := ToEventResponse(&s.Event)
	event.Status = string(s.Status)

	a := s.Availability
	return EventSummaryResponse{
		EventResponse: event,
		General: TierResponse{
			PriceCents: s.Event.General.PriceCents,
			Capacity:   s.Event.General.Capacity,
			Sold:       a.Sold.General,
			Remaining:  a.Remaining.General,
		},
		VIP: TierResponse{
			PriceCents: s.Event.VIP.PriceCents,
			Capacity:   s.Event.VIP.Capacity,
			Sold:       a.Sold.VIP,
			Remaining:  a.Remaining.VIP,
		},
		TotalSold:      a.TotalSold,
		TotalRemaining: a.TotalRemaining,
	}
}

func ToEventListResponse(l *domain.EventListing) EventListResponse {
	resp := EventListResponse{
		Upcoming: make([]EventSummaryResponse, 0, len(l.Upcoming)),
		Past:     make([]EventSummaryResponse, 0, len(l.Past)),
	}
	for _, e := range l.Upcoming {
		resp.Upcoming = append(resp.Upcoming, ToEventSummaryResponse(e))
	}
	for _, e := range l.Past {
		resp.Past = append(resp.Past, ToEventSummaryResponse(e))
	}
	return resp
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	orders := make([]OrderResponse, 0, len(d.Orders))
	for i := range d.Orders {
		orders = append(orders, ToOrderResponse(&d.Orders[i]))
	}

	comments := make([]CommentResponse, 0, len(d.Comments))
	for i := range d.Comments {
		comments = append(comments, ToCommentResponse(&d.Comments[i]))
	}

	return EventDetailsResponse{
		EventSummaryResponse: ToEventSummaryResponse(&d.EventSummary),
		Orders:               orders,
		Comments:             comments,
	}
}

func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		EventID:        o.EventID,
		UserID:         o.UserID,
		Tier:           string(o.Tier),
		Quantity:       o.Quantity,
		UnitPriceCents: o.UnitPriceCents,
		TotalCents:     o.TotalCents(),
		Active:         o.Active,
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
		CancelledAt:    formatTime(o.CancelledAt),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		EventID:   c.EventID,
		UserID:    c.UserID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
