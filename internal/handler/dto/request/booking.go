package request

import (
	"github.com/google/uuid"
)

type ClaimSlotRequest struct {
	ProviderID uuid.UUID `json:"provider_id" binding:"required"`
	SlotID     uuid.UUID `json:"slot_id" binding:"required"`
}
