package dto

type TierRequest struct {
	PriceCents int64 `json:"price_cents" binding:"gte=0"`
	Capacity   int   `json:"capacity"    binding:"gte=0"`
}

type EventRequest struct {
	Title       string      `json:"title"       binding:"required"`
	Description string      `json:"description"`
	Venue       string      `json:"venue"       binding:"required"`
	Category    string      `json:"category"    binding:"max=60"`
	StartsAt    string      `json:"starts_at"   binding:"required"`
	EndsAt      string      `json:"ends_at"`
	General     TierRequest `json:"general"`
	VIP         TierRequest `json:"vip"`
}

type CreateEventRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	EventRequest
}

type UpdateEventRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	EventRequest
}

// ActorRequest carries the acting user for state changes without a payload.
type ActorRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type BookRequest struct {
	UserID   string `json:"user_id"  binding:"required,uuid"`
	Tier     string `json:"tier"     binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email"    binding:"omitempty,email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CommentRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Body   string `json:"body"    binding:"required"`
}
