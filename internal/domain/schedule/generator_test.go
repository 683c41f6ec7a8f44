//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"clinic-booking/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var windowCmp = cmp.Comparer(func(a, b schedule.Window) bool {
	return a.Start().Equal(b.Start()) && a.End().Equal(b.End())
})

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func dayTime(t *testing.T, hour, minute int) schedule.DayTime {
	t.Helper()
	d, err := schedule.NewDayTime(hour, minute)
	require.NoError(t, err)
	return d
}

func window(t *testing.T, date string, from, to string) schedule.Window {
	t.Helper()
	start, err := time.Parse("2006-01-02 15:04", date+" "+from)
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02 15:04", date+" "+to)
	require.NoError(t, err)
	w, err := schedule.NewWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestExpand(t *testing.T) {
	t.Run("single day slices the working window front to back", func(t *testing.T) {
		got, err := schedule.Expand(
			day(t, "2026-03-02"), day(t, "2026-03-02"),
			dayTime(t, 9, 0), dayTime(t, 12, 0),
			30*time.Minute,
		)
		require.NoError(t, err)

		want := []schedule.Window{
			window(t, "2026-03-02", "09:00", "09:30"),
			window(t, "2026-03-02", "09:30", "10:00"),
			window(t, "2026-03-02", "10:00", "10:30"),
			window(t, "2026-03-02", "10:30", "11:00"),
			window(t, "2026-03-02", "11:00", "11:30"),
			window(t, "2026-03-02", "11:30", "12:00"),
		}
		if diff := cmp.Diff(want, got, windowCmp); diff != "" {
			t.Errorf("windows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("trailing remainder is dropped", func(t *testing.T) {
		got, err := schedule.Expand(
			day(t, "2026-03-02"), day(t, "2026-03-02"),
			dayTime(t, 9, 0), dayTime(t, 10, 50),
			30*time.Minute,
		)
		require.NoError(t, err)

		// 10:30–11:00 would overshoot the 10:50 close, so only three fit.
		want := []schedule.Window{
			window(t, "2026-03-02", "09:00", "09:30"),
			window(t, "2026-03-02", "09:30", "10:00"),
			window(t, "2026-03-02", "10:00", "10:30"),
		}
		if diff := cmp.Diff(want, got, windowCmp); diff != "" {
			t.Errorf("windows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("window shorter than slot length yields nothing", func(t *testing.T) {
		got, err := schedule.Expand(
			day(t, "2026-03-02"), day(t, "2026-03-02"),
			dayTime(t, 9, 0), dayTime(t, 9, 15),
			30*time.Minute,
		)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("multi-day range anchors the window to each date", func(t *testing.T) {
		got, err := schedule.Expand(
			day(t, "2026-03-02"), day(t, "2026-03-04"),
			dayTime(t, 9, 0), dayTime(t, 10, 0),
			30*time.Minute,
		)
		require.NoError(t, err)

		want := []schedule.Window{
			window(t, "2026-03-02", "09:00", "09:30"),
			window(t, "2026-03-02", "09:30", "10:00"),
			window(t, "2026-03-03", "09:00", "09:30"),
			window(t, "2026-03-03", "09:30", "10:00"),
			window(t, "2026-03-04", "09:00", "09:30"),
			window(t, "2026-03-04", "09:30", "10:00"),
		}
		if diff := cmp.Diff(want, got, windowCmp); diff != "" {
			t.Errorf("windows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("time-of-day on range bounds is ignored", func(t *testing.T) {
		noon := day(t, "2026-03-02").Add(12*time.Hour + 41*time.Minute)
		got, err := schedule.Expand(
			noon, noon,
			dayTime(t, 9, 0), dayTime(t, 10, 0),
			30*time.Minute,
		)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, got[0].Start().Equal(window(t, "2026-03-02", "09:00", "09:30").Start()))
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name       string
			rangeStart time.Time
			rangeEnd   time.Time
			dailyStart schedule.DayTime
			dailyEnd   schedule.DayTime
			slotLength time.Duration
			errIs      error
		}{
			{
				name:       "range end before range start",
				rangeStart: day(t, "2026-03-05"),
				rangeEnd:   day(t, "2026-03-02"),
				dailyStart: dayTime(t, 9, 0),
				dailyEnd:   dayTime(t, 12, 0),
				slotLength: 30 * time.Minute,
				errIs:      schedule.ErrInvalidRange,
			},
			{
				name:       "daily window end not after start",
				rangeStart: day(t, "2026-03-02"),
				rangeEnd:   day(t, "2026-03-02"),
				dailyStart: dayTime(t, 12, 0),
				dailyEnd:   dayTime(t, 9, 0),
				slotLength: 30 * time.Minute,
				errIs:      schedule.ErrInvalidWindow,
			},
			{
				name:       "empty daily window",
				rangeStart: day(t, "2026-03-02"),
				rangeEnd:   day(t, "2026-03-02"),
				dailyStart: dayTime(t, 9, 0),
				dailyEnd:   dayTime(t, 9, 0),
				slotLength: 30 * time.Minute,
				errIs:      schedule.ErrInvalidWindow,
			},
			{
				name:       "zero slot length",
				rangeStart: day(t, "2026-03-02"),
				rangeEnd:   day(t, "2026-03-02"),
				dailyStart: dayTime(t, 9, 0),
				dailyEnd:   dayTime(t, 12, 0),
				slotLength: 0,
				errIs:      schedule.ErrSlotLength,
			},
			{
				name:       "negative slot length",
				rangeStart: day(t, "2026-03-02"),
				rangeEnd:   day(t, "2026-03-02"),
				dailyStart: dayTime(t, 9, 0),
				dailyEnd:   dayTime(t, 12, 0),
				slotLength: -time.Minute,
				errIs:      schedule.ErrSlotLength,
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				got, err := schedule.Expand(c.rangeStart, c.rangeEnd, c.dailyStart, c.dailyEnd, c.slotLength)
				require.Nil(t, got)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestParseDayTime(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := schedule.ParseDayTime("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, d.Hour())
		assert.Equal(t, 30, d.Minute())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := schedule.ParseDayTime("nine thirty")
		require.Error(t, err)
	})
}
