package shared

import (
	"context"
	"time"

	"clinic-booking/internal/domain/booking"
	"clinic-booking/internal/domain/schedule"
	"clinic-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	ProviderSlots() ProviderSlotRepository
	Bookings() BookingRepository
	Obligations() ObligationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ProviderByID(ctx context.Context, id uuid.UUID) (*ProviderSnapshot, error)
	RequesterByID(ctx context.Context, id uuid.UUID) (*RequesterSnapshot, error)
	ProviderSlot(ctx context.Context, providerID, slotID uuid.UUID) (*ProviderSlotSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ObligationByRef(ctx context.Context, transactionRef string) (*ObligationSnapshot, error)
	ExpiredPendingBookings(ctx context.Context, cutoff time.Time) ([]*ExpiredBooking, error)
	SlotReferences(ctx context.Context, slotID uuid.UUID) (*SlotReferences, error)
}

// SlotRecord is a persisted slot row.
type SlotRecord struct {
	ID    uuid.UUID
	Start time.Time
	End   time.Time
}

type SlotRepository interface {
	// CreateMany inserts the windows that do not exist yet and returns only
	// the newly created rows (idempotent re-runs return an empty slice).
	CreateMany(ctx context.Context, windows []schedule.Window) ([]SlotRecord, error)
	// Delete removes a slot; callers must have checked SlotReferences first.
	Delete(ctx context.Context, slotID uuid.UUID) error
}

type ProviderSlotRepository interface {
	// OfferMany associates the provider with each slot not already offered,
	// unclaimed, and returns how many rows were created.
	OfferMany(ctx context.Context, providerID uuid.UUID, slotIDs []uuid.UUID) (int64, error)
	// Claim flips claimed from false to true. The returned bool is the
	// affected-row count of the conditional update: false means somebody
	// else holds the slot.
	Claim(ctx context.Context, providerID, slotID uuid.UUID) (bool, error)
	// Release flips claimed back to false.
	Release(ctx context.Context, providerID, slotID uuid.UUID) (bool, error)
	// DeleteUnclaimed removes the association only while claimed=false.
	DeleteUnclaimed(ctx context.Context, providerID, slotID uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// ConfirmIfPending applies PENDING(UNPAID) -> CONFIRMED(PAID); returns
	// false when the booking already left PENDING (webhook replay or sweep).
	ConfirmIfPending(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	// CancelIfPending is the sweep/compensation guard: only a still-pending
	// unpaid booking is canceled.
	CancelIfPending(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	// CancelIfActive cancels PENDING or CONFIRMED bookings, marking paid ones
	// REFUNDED in the same statement.
	CancelIfActive(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	// CompleteIfConfirmed applies CONFIRMED(PAID) -> COMPLETED.
	CompleteIfConfirmed(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}

// ObligationParams captures the payment obligation created alongside a
// booking; the amount is the provider's fee snapshotted at claim time.
type ObligationParams struct {
	ID             uuid.UUID
	BookingID      uuid.UUID
	AmountCents    int64
	TransactionRef string
}

type ObligationRepository interface {
	Create(ctx context.Context, params ObligationParams) error
	MarkPaid(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	MarkRefunded(ctx context.Context, bookingID uuid.UUID, now time.Time) (bool, error)
}
