package domain

// CartLine is one entry of the point-of-sale cart. Name and UnitPrice are
// copied from the stock item when the line is created; quantity bounds are
// always re-checked against the live snapshot, not against this copy.
type CartLine struct {
	ItemID    int64  `json:"itemId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// Cart holds the lines of one checkout session in insertion order, unique by
// item id, plus the free-text recipient collected at checkout time.
type Cart struct {
	Lines     []CartLine `json:"lines"`
	Recipient string     `json:"recipient"`
}

// Total is the sum of unitPrice*quantity over all lines; 0 for an empty cart.
func (c Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.UnitPrice * int64(line.Quantity)
	}
	return total
}

// CheckoutState is the cart engine's checkout lifecycle state.
type CheckoutState int

const (
	StateIdle CheckoutState = iota
	StatePendingConfirmation
	StateFailed
)

func (s CheckoutState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePendingConfirmation:
		return "pending_confirmation"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
