package request

import (
	"github.com/google/uuid"
)

type OfferSlotsRequest struct {
	SlotIDs []uuid.UUID `json:"slot_ids" binding:"required,min=1"`
}
