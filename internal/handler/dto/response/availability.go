package response

import (
	"time"

	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type GenerateSlotsResponse struct {
	Requested int            `json:"requested"`
	Created   int            `json:"created"`
	Slots     []SlotResponse `json:"slots"`
}

type ProviderSlotResponse struct {
	SlotID    uuid.UUID `json:"slot_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Claimed   bool      `json:"claimed"`
}

type OfferSlotsResponse struct {
	Offered int64 `json:"offered"`
}

func FromSlotRecords(requested int, records []shared.SlotRecord) *GenerateSlotsResponse {
	slots := make([]SlotResponse, len(records))
	for i, rec := range records {
		slots[i] = SlotResponse{ID: rec.ID, StartTime: rec.Start, EndTime: rec.End}
	}
	return &GenerateSlotsResponse{
		Requested: requested,
		Created:   len(records),
		Slots:     slots,
	}
}

func FromProviderSlotViews(views []*queries.ProviderSlotView) []ProviderSlotResponse {
	result := make([]ProviderSlotResponse, len(views))
	for i, v := range views {
		result[i] = ProviderSlotResponse{
			SlotID:    v.SlotID,
			StartTime: v.StartTime,
			EndTime:   v.EndTime,
			Claimed:   v.Claimed,
		}
	}
	return result
}

func FromOpenSlotViews(views []*queries.OpenSlotView) []SlotResponse {
	result := make([]SlotResponse, len(views))
	for i, v := range views {
		result[i] = SlotResponse{ID: v.SlotID, StartTime: v.StartTime, EndTime: v.EndTime}
	}
	return result
}
