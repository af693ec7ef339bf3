package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// ConsumesInventory reports whether a booking in this status holds rooms on its nights.
func (s Status) ConsumesInventory() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

type CancelReason string

const (
	CancelledByGuest                 CancelReason = "guest"
	CancelledByOwner                 CancelReason = "owner"
	CancelledByAvailabilityReduction CancelReason = "availability_reduction"
)

func (r CancelReason) String() string {
	return string(r)
}

func (r CancelReason) IsValid() bool {
	switch r {
	case CancelledByGuest, CancelledByOwner, CancelledByAvailabilityReduction:
		return true
	default:
		return false
	}
}
