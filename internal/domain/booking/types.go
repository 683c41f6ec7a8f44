package booking

import "errors"

var (
	ErrNotPending      = errors.New("booking is not pending")
	ErrNotConfirmed    = errors.New("booking is not confirmed")
	ErrAlreadyCanceled = errors.New("booking is already canceled")
	ErrAlreadyFinal    = errors.New("booking is in a final state")
	ErrNotOwner        = errors.New("actor is not the booking's provider")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCanceled  Status = "CANCELED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking still holds its slot claim.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}
