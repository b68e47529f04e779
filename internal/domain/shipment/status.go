package shipment

// Status is the closed shipment lifecycle. The stored value is the
// human-presentable label.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusInTransit Status = "InTransit"
	StatusDelivered Status = "Delivered"
	StatusReturned  Status = "Returned"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusReturned, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is a legal successor of s.
// Delivered, Returned and Cancelled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusInTransit || next == StatusCancelled
	case StatusInTransit:
		return next == StatusDelivered || next == StatusReturned
	}
	return false
}
