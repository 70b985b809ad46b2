package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andreferraz/homecare-backend/internal/model"
)

// weekday names indexed by ISO weekday, Monday first.
var weekdayNames = map[string][8]string{
	"en": {"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	"pt": {"", "Segunda-feira", "Terça-feira", "Quarta-feira", "Quinta-feira", "Sexta-feira", "Sábado", "Domingo"},
}

// RenderSchedule summarizes the weekly slots as
// "Monday: 08:00 - 09:00; Wednesday: 14:00 - 15:00" for notification emails.
func RenderSchedule(slots []model.TimeSlot) string {
	return RenderScheduleLocalized(slots, "en")
}

// RenderScheduleLocalized renders the summary with weekday names of the given
// locale, falling back to English for unknown locales. The caller's slice is
// left untouched.
func RenderScheduleLocalized(slots []model.TimeSlot, locale string) string {
	names, ok := weekdayNames[locale]
	if !ok {
		names = weekdayNames["en"]
	}

	sorted := make([]model.TimeSlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return isoWeekday(sorted[i].Start) < isoWeekday(sorted[j].Start)
	})

	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = fmt.Sprintf("%s: %02d:%02d - %02d:%02d",
			names[isoWeekday(s.Start)],
			s.Start.Hour(), s.Start.Minute(),
			s.End.Hour(), s.End.Minute(),
		)
	}

	return strings.Join(parts, "; ")
}
