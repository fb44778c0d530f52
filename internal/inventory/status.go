package inventory

import (
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
)

// Resolve maps the stored label, expiry and remaining tickets to the single
// status shown to users and used for booking eligibility. The first matching
// rule wins: cancelled, sold out, expired, open.
func Resolve(stored domain.EventStatus, expired bool, totalRemaining int) domain.DisplayStatus {
	switch {
	case stored == domain.EventStatusCancelled:
		return domain.DisplayCancelled
	case stored == domain.EventStatusSoldOut || totalRemaining <= 0:
		return domain.DisplaySoldOut
	case expired || stored == domain.EventStatusInactive:
		return domain.DisplayExpired
	default:
		return domain.DisplayOpen
	}
}

func IsExpired(e *domain.Event, now time.Time) bool {
	return now.After(e.ExpiresAt())
}

func Status(e *domain.Event, a domain.Availability, now time.Time) domain.DisplayStatus {
	return Resolve(e.Status, IsExpired(e, now), a.TotalRemaining)
}

func Bookable(s domain.DisplayStatus) bool {
	return s == domain.DisplayOpen
}

// Settle returns the stored label an event should carry after its remaining
// ticket count changed. Only Open and Sold Out move; Cancelled and Inactive
// are left to their owners and the expiry sweep.
func Settle(stored domain.EventStatus, totalRemaining int) domain.EventStatus {
	switch {
	case stored == domain.EventStatusOpen && totalRemaining <= 0:
		return domain.EventStatusSoldOut
	case stored == domain.EventStatusSoldOut && totalRemaining > 0:
		return domain.EventStatusOpen
	default:
		return stored
	}
}
