package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Slot generation errors
	ErrInvalidRange = errors.New("invalid date range")

	// Directory errors
	ErrProviderNotFound  = errors.New("provider not found")
	ErrRequesterNotFound = errors.New("requester not found")

	// Availability errors
	ErrSlotNotFound   = errors.New("slot not found")
	ErrSlotClaimed    = errors.New("slot is claimed")
	ErrSlotInPast     = errors.New("slot is in the past")
	ErrOfferNotFound  = errors.New("provider slot not found")
	ErrNothingToOffer = errors.New("no slots to offer")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSlotAlreadyBooked = errors.New("slot already booked")
	ErrInvalidTransition = errors.New("invalid booking transition")
	ErrForbidden         = errors.New("actor does not own this booking")

	// Payment errors
	ErrPaymentGateway     = errors.New("payment gateway request failed")
	ErrObligationNotFound = errors.New("payment obligation not found")
	ErrInvalidOutcome     = errors.New("unknown payment outcome")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
