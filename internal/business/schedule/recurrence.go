package schedule

import (
	"time"

	"github.com/andreferraz/homecare-backend/internal/model"
)

// horizonCycles caps every expansion at 52 cycles regardless of cadence. For
// biweekly and monthly series a cycle covers more calendar time, so the cap
// reaches further than one year for them. That matches the behavior shipped
// to clients; do not change it without product sign-off.
const horizonCycles = 52

// DayOffset returns the day offset of the given 0-based cycle for a repeating
// cadence. One-off series never reach this: the expander runs a single cycle
// for them.
func DayOffset(r model.Recurrency, cycle int) (int, error) {
	switch r {
	case model.RecurrencyWeekly:
		return 7 * cycle, nil
	case model.RecurrencyBiweekly:
		return 14 * cycle, nil
	case model.RecurrencyMonthly:
		return 28 * cycle, nil
	}

	return 0, &model.InvalidRecurrencyError{Recurrency: r}
}

// Increment is DayOffset expressed as a duration, ready to add to a slot
// timestamp.
func Increment(r model.Recurrency, cycle int) (time.Duration, error) {
	days, err := DayOffset(r, cycle)
	if err != nil {
		return 0, err
	}

	return time.Duration(days) * 24 * time.Hour, nil
}

// ResolveSeriesEndDate bounds a series at one calendar year after its start.
// An explicit end date may shorten that bound, never extend it.
func ResolveSeriesEndDate(start time.Time, end model.EndCondition) (time.Time, error) {
	oneYearAfterStart := start.AddDate(1, 0, 0)

	switch end.Kind {
	case model.EndNever:
		return oneYearAfterStart, nil
	case model.EndOnDate:
		if end.Date.After(oneYearAfterStart) {
			return oneYearAfterStart, nil
		}
		return end.Date, nil
	}

	return time.Time{}, model.ErrUnsupportedEndCondition
}

// isoWeekday numbers Monday 1 through Sunday 7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}

	return wd
}
