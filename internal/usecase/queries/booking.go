package queries

import (
	"context"
	"time"

	"clinic-booking/internal/domain/user"
	"clinic-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	RequesterID    uuid.UUID `json:"requester_id"`
	RequesterEmail string    `json:"requester_email"`
	ProviderID     uuid.UUID `json:"provider_id"`
	ProviderName   string    `json:"provider_name"`
	SlotID         uuid.UUID `json:"slot_id"`
	SlotStart      time.Time `json:"slot_start"`
	SlotEnd        time.Time `json:"slot_end"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	AmountCents    int64     `json:"amount_cents"`
	TransactionRef string    `json:"transaction_ref"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	ProviderID    uuid.UUID `json:"provider_id"`
	ProviderName  string    `json:"provider_name"`
	SlotStart     time.Time `json:"slot_start"`
	SlotEnd       time.Time `json:"slot_end"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	AmountCents   int64     `json:"amount_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingFilters struct {
	Status        *string
	PaymentStatus *string
	ProviderID    *uuid.UUID
	RequesterID   *uuid.UUID
}

// Actor is the authenticated principal a query is scoped to.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID, limit int) ([]*BookingListItem, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, limit int) ([]*BookingListItem, error)
	List(ctx context.Context, actor Actor, filters BookingFilters, limit int) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByRequesterID(ctx context.Context, requesterID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID, limit int32) ([]*BookingListItem, error)
	Find(ctx context.Context, filters BookingFilters, limit int32) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canSeeBooking(actor, view) {
		// Hidden rather than forbidden so outsiders cannot probe booking IDs.
		return nil, errs.Mark(errs.New("booking not visible to actor"), errs.ErrBookingNotFound)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID, limit int) ([]*BookingListItem, error) {
	return q.repo.FindByRequesterID(ctx, requesterID, clampLimit(limit))
}

func (q *bookingQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID, limit int) ([]*BookingListItem, error) {
	return q.repo.FindByProviderID(ctx, providerID, clampLimit(limit))
}

func (q *bookingQueriesImpl) List(ctx context.Context, actor Actor, filters BookingFilters, limit int) ([]*BookingListItem, error) {
	if actor.Role != user.RoleAdmin {
		return nil, errs.Mark(errs.New("booking list requires admin"), errs.ErrForbidden)
	}
	return q.repo.Find(ctx, filters, clampLimit(limit))
}

func canSeeBooking(actor Actor, view *BookingView) bool {
	switch {
	case actor.Role == user.RoleAdmin:
		return true
	case actor.ID == view.RequesterID:
		return true
	case actor.ID == view.ProviderID:
		return true
	}
	return false
}

func clampLimit(limit int) int32 {
	if limit <= 0 || limit > 200 {
		return 50
	}
	return int32(limit)
}
