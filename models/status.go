package models

// OrderStatus is the single canonical order state shared by the checkout
// and admin transition paths.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// ParseOrderStatus validates a raw status value against the enum.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusDelivered, StatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// Next returns the forward transition for a status, or "" when no further
// transition is offered (Delivered and Cancelled are terminal).
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case StatusPending:
		return StatusConfirmed
	case StatusConfirmed:
		return StatusDelivered
	}
	return ""
}

// CanTransitionTo reports whether moving from s to target is a legal
// transition. Forward moves follow Pending -> Confirmed -> Delivered;
// Cancelled is reachable from the pre-delivery states only.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if target == StatusCancelled {
		return s == StatusPending || s == StatusConfirmed
	}
	return s.Next() == target
}

// Deletable reports whether an order in this status may be deleted by its
// owner. Confirmed orders are actively being fulfilled and are excluded.
func (s OrderStatus) Deletable() bool {
	return s == StatusPending || s == StatusDelivered || s == StatusCancelled
}
