package domain

import "time"

// EventStatus is the label stored on the event row.
type EventStatus string

const (
	EventStatusOpen      EventStatus = "Open"
	EventStatusInactive  EventStatus = "Inactive"
	EventStatusSoldOut   EventStatus = "Sold Out"
	EventStatusCancelled EventStatus = "Cancelled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusOpen, EventStatusInactive, EventStatusSoldOut, EventStatusCancelled:
		return true
	}
	return false
}

// DisplayStatus is the user-facing state derived from the stored label,
// expiry and remaining capacity.
type DisplayStatus string

const (
	DisplayOpen      DisplayStatus = "Open"
	DisplaySoldOut   DisplayStatus = "Sold Out"
	DisplayExpired   DisplayStatus = "Expired"
	DisplayCancelled DisplayStatus = "Cancelled"
)

type Event struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Venue       string      `json:"venue"`
	Category    string      `json:"category"`
	StartsAt    time.Time   `json:"starts_at"`
	EndsAt      *time.Time  `json:"ends_at"`
	General     TierSpec    `json:"general"`
	VIP         TierSpec    `json:"vip"`
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (e *Event) Tier(t Tier) (TierSpec, error) {
	switch t {
	case TierGeneral:
		return e.General, nil
	case TierVIP:
		return e.VIP, nil
	default:
		return TierSpec{}, ErrInvalidTier
	}
}

// Capacity returns the configured capacity of every tier.
func (e *Event) Capacity() TierCounts {
	return TierCounts{General: e.General.Capacity, VIP: e.VIP.Capacity}
}

// ExpiresAt is the end time, or the start time when the event has no end.
func (e *Event) ExpiresAt() time.Time {
	if e.EndsAt != nil {
		return *e.EndsAt
	}
	return e.StartsAt
}

type Availability struct {
	Sold      TierCounts `json:"sold"`
	Remaining TierCounts `json:"remaining"`
	TotalSold int        `json:"total_sold"`
	// TotalRemaining always equals Remaining.General + Remaining.VIP.
	TotalRemaining int `json:"total_remaining"`
}

type EventSummary struct {
	Event        Event         `json:"event"`
	Availability Availability  `json:"availability"`
	Status       DisplayStatus `json:"status"`
}

// EventFilter narrows an event listing. Query matches title, venue, category
// and description case-insensitively; Category must match exactly, ignoring case.
// Empty fields do not filter.
type EventFilter struct {
	Query    string
	Category string
}

// EventListing splits events into those still ahead and those already over.
// Upcoming puts bookable events first, each group ordered by start time.
type EventListing struct {
	Upcoming []*EventSummary `json:"upcoming"`
	Past     []*EventSummary `json:"past"`
}

type EventDetails struct {
	EventSummary
	Orders   []Order   `json:"orders"`
	Comments []Comment `json:"comments"`
}

type EventInput struct {
	Title       string
	Description string
	Venue       string
	Category    string
	StartsAt    time.Time
	EndsAt      *time.Time
	General     TierSpec
	VIP         TierSpec
}

type CreateEventInput struct {
	OwnerID string
	EventInput
}
