package request

import (
	"time"

	"clinic-booking/internal/domain/schedule"
	"clinic-booking/internal/usecase/commands"
)

type GenerateSlotsRequest struct {
	RangeStart    string `json:"range_start" binding:"required"` // 2006-01-02
	RangeEnd      string `json:"range_end" binding:"required"`   // 2006-01-02
	DailyStart    string `json:"daily_start" binding:"required"` // 15:04
	DailyEnd      string `json:"daily_end" binding:"required"`   // 15:04
	SlotLengthMin int    `json:"slot_length_min,omitempty"`
}

const dateLayout = "2006-01-02"

func (r GenerateSlotsRequest) ToInput() (commands.GenerateSlotsInput, error) {
	var input commands.GenerateSlotsInput

	rangeStart, err := time.Parse(dateLayout, r.RangeStart)
	if err != nil {
		return input, err
	}
	rangeEnd, err := time.Parse(dateLayout, r.RangeEnd)
	if err != nil {
		return input, err
	}
	dailyStart, err := schedule.ParseDayTime(r.DailyStart)
	if err != nil {
		return input, err
	}
	dailyEnd, err := schedule.ParseDayTime(r.DailyEnd)
	if err != nil {
		return input, err
	}

	input = commands.GenerateSlotsInput{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		DailyStart: dailyStart,
		DailyEnd:   dailyEnd,
		SlotLength: time.Duration(r.SlotLengthMin) * time.Minute,
	}
	return input, nil
}
