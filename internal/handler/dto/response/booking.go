package response

import (
	"time"

	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClaimResponse struct {
	BookingID  uuid.UUID `json:"booking_id"`
	PaymentURL string    `json:"payment_url"`
}

type BookingResponse struct {
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

type BookingListResponse struct {
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

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	// Field names line up with the read model; copier keeps this mapping
	// from drifting when columns are added.
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	result := make([]*BookingListResponse, len(items))
	for i, item := range items {
		var resp BookingListResponse
		_ = copier.Copy(&resp, item)
		result[i] = &resp
	}
	return result
}
