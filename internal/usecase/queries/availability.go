package queries

import (
	"context"
	"time"

	"clinic-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ProviderSlotView struct {
	SlotID    uuid.UUID `json:"slot_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Claimed   bool      `json:"claimed"`
}

type OpenSlotView struct {
	SlotID    uuid.UUID `json:"slot_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type ProviderView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	FeeCents int64     `json:"fee_cents"`
	IsActive bool      `json:"is_active"`
}

// Phase narrows a slot listing relative to the current time.
type Phase string

const (
	PhaseAny      Phase = ""
	PhaseUpcoming Phase = "upcoming"
	PhasePast     Phase = "past"
)

func (p Phase) IsValid() bool {
	return p == PhaseAny || p == PhaseUpcoming || p == PhasePast
}

type AvailabilityFilters struct {
	Claimed *bool
	From    *time.Time
	To      *time.Time
	Phase   Phase
}

type AvailabilityQueries interface {
	ListProviderSlots(ctx context.Context, providerID uuid.UUID, filters AvailabilityFilters, limit int) ([]*ProviderSlotView, error)
	ListOpenSlots(ctx context.Context, providerID uuid.UUID, filters AvailabilityFilters, limit int) ([]*OpenSlotView, error)
	GetProvider(ctx context.Context, providerID uuid.UUID) (*ProviderView, error)
}

type AvailabilityViewRepo interface {
	FindProviderSlots(ctx context.Context, providerID uuid.UUID, filters AvailabilityFilters, now time.Time, limit int32) ([]*ProviderSlotView, error)
	FindOpenSlots(ctx context.Context, providerID uuid.UUID, filters AvailabilityFilters, now time.Time, limit int32) ([]*OpenSlotView, error)
	FindProviderByID(ctx context.Context, providerID uuid.UUID) (*ProviderView, error)
}

type availabilityQueriesImpl struct {
	repo AvailabilityViewRepo
	clk  clock.Clock
}

func NewAvailabilityQueries(repo AvailabilityViewRepo, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo, clk: clk}
}

func (q *availabilityQueriesImpl) ListProviderSlots(ctx context.Context, providerID uuid.UUID, filters AvailabilityFilters, limit int) ([]*ProviderSlotView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.repo.FindProviderSlots(ctx, providerID, filters, q.clk.Now(), int32(limit))
}

func (q *availabilityQueriesImpl) ListOpenSlots(ctx context.Context, providerID uuid.UUID, filters AvailabilityFilters, limit int) ([]*OpenSlotView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.repo.FindOpenSlots(ctx, providerID, filters, q.clk.Now(), int32(limit))
}

func (q *availabilityQueriesImpl) GetProvider(ctx context.Context, providerID uuid.UUID) (*ProviderView, error) {
	return q.repo.FindProviderByID(ctx, providerID)
}
