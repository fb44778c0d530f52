package domain

import "fmt"

type Tier string

const (
	TierGeneral Tier = "general"
	TierVIP     Tier = "vip"
)

func (t Tier) Valid() bool {
	return t == TierGeneral || t == TierVIP
}

func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTier, s)
	}
	return t, nil
}

// TierSpec is the price and capacity of one ticket category.
type TierSpec struct {
	PriceCents int64 `json:"price_cents"`
	Capacity   int   `json:"capacity"`
}

// TierCounts holds one integer per tier, used for sold and remaining tickets.
type TierCounts struct {
	General int `json:"general"`
	VIP     int `json:"vip"`
}

func (c TierCounts) Get(t Tier) (int, error) {
	switch t {
	case TierGeneral:
		return c.General, nil
	case TierVIP:
		return c.VIP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTier, string(t))
	}
}

func (c *TierCounts) Add(t Tier, n int) error {
	switch t {
	case TierGeneral:
		c.General += n
	case TierVIP:
		c.VIP += n
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTier, string(t))
	}
	return nil
}

func (c TierCounts) Total() int {
	return c.General + c.VIP
}
