package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrCommentNotFound = errors.New("comment not found")
)

var (
	ErrForbidden = errors.New("action not allowed for this user")
)

var (
	ErrBookingUnavailable = errors.New("event is not open for booking")
	ErrInvalidState       = errors.New("event state does not allow this action")
	ErrCapacityExceeded   = errors.New("not enough tickets remaining")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidTier     = fmt.Errorf("%w: unknown ticket tier", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: invalid ticket quantity", ErrValidation)
)

// CapacityExceededError reports how many tickets of a tier are still available.
type CapacityExceededError struct {
	Tier      Tier
	Requested int
	Remaining int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: requested %d %s tickets, %d remaining",
		ErrCapacityExceeded, e.Requested, e.Tier, e.Remaining)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
