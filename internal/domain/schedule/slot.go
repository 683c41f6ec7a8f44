package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidRange  = errors.New("range end before range start")
	ErrInvalidWindow = errors.New("daily window end not after start")
	ErrSlotLength    = errors.New("slot length must be positive")
)

// DefaultSlotLength matches the clinic's standard consultation length.
const DefaultSlotLength = 30 * time.Minute

// Window is an immutable half-open time interval [Start, End).
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w Window) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// DayTime is a time of day independent of any date.
type DayTime struct {
	hour   int
	minute int
}

func NewDayTime(hour, minute int) (DayTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return DayTime{}, fmt.Errorf("invalid time of day %02d:%02d", hour, minute)
	}
	return DayTime{hour: hour, minute: minute}, nil
}

// ParseDayTime parses "HH:MM".
func ParseDayTime(s string) (DayTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return DayTime{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return DayTime{hour: t.Hour(), minute: t.Minute()}, nil
}

func (d DayTime) Hour() int   { return d.hour }
func (d DayTime) Minute() int { return d.minute }

// On anchors the time of day to the calendar date of t, in t's location.
func (d DayTime) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), d.hour, d.minute, 0, 0, t.Location())
}
