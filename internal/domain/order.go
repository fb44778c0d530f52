package domain

import "time"

type Order struct {
	ID             string     `json:"id"`
	EventID        string     `json:"event_id"`
	UserID         string     `json:"user_id"`
	Tier           Tier       `json:"tier"`
	Quantity       int        `json:"quantity"`
	UnitPriceCents int64      `json:"unit_price_cents"`
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"created_at"`
	CancelledAt    *time.Time `json:"cancelled_at"`
}

func (o *Order) TotalCents() int64 {
	return o.UnitPriceCents * int64(o.Quantity)
}

type BookInput struct {
	EventID  string
	UserID   string
	Tier     Tier
	Quantity int
}
