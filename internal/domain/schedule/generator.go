package schedule

import "time"

// Expand turns a date range plus a daily working window into consecutive
// bookable slot windows of slotLength.
//
// Both range bounds are inclusive calendar dates (the time-of-day part of
// rangeStart/rangeEnd is ignored). For each date the daily window is anchored
// to that date and sliced front to back. A slot is emitted only while its end
// instant is still inside the daily window, so a window that is not an exact
// multiple of slotLength loses its trailing remainder and no zero-capacity
// slot is emitted at closing time.
func Expand(rangeStart, rangeEnd time.Time, dailyStart, dailyEnd DayTime, slotLength time.Duration) ([]Window, error) {
	if slotLength <= 0 {
		return nil, ErrSlotLength
	}

	day := truncateToDay(rangeStart)
	lastDay := truncateToDay(rangeEnd)
	if lastDay.Before(day) {
		return nil, ErrInvalidRange
	}

	dayOpen := dailyStart.On(day)
	dayClose := dailyEnd.On(day)
	if !dayClose.After(dayOpen) {
		return nil, ErrInvalidWindow
	}

	var windows []Window
	for ; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		open := dailyStart.On(day)
		close := dailyEnd.On(day)

		for cur := open; !cur.Add(slotLength).After(close); cur = cur.Add(slotLength) {
			windows = append(windows, Window{start: cur, end: cur.Add(slotLength)})
		}
	}

	return windows, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
