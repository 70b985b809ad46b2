package schedule

import (
	"testing"
	"time"

	"github.com/andreferraz/homecare-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func slot(day, startHour, endHour int) model.TimeSlot {
	// 2024-01-01 is a Monday; day 1 = Monday.
	base := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
	return model.TimeSlot{
		Start: base.Add(time.Duration(startHour) * time.Hour),
		End:   base.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestRenderSchedule(t *testing.T) {
	tests := []struct {
		name     string
		slots    []model.TimeSlot
		expected string
	}{
		{
			name:     "single slot",
			slots:    []model.TimeSlot{slot(1, 8, 9)},
			expected: "Monday: 08:00 - 09:00",
		},
		{
			name:     "slots are sorted by weekday",
			slots:    []model.TimeSlot{slot(5, 14, 15), slot(1, 8, 9), slot(3, 10, 12)},
			expected: "Monday: 08:00 - 09:00; Wednesday: 10:00 - 12:00; Friday: 14:00 - 15:00",
		},
		{
			name:     "sunday sorts last",
			slots:    []model.TimeSlot{slot(7, 9, 10), slot(6, 9, 10)},
			expected: "Saturday: 09:00 - 10:00; Sunday: 09:00 - 10:00",
		},
		{
			name:     "no slots",
			slots:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderSchedule(tt.slots))
		})
	}
}

func TestRenderScheduleLocalized(t *testing.T) {
	slots := []model.TimeSlot{slot(1, 8, 9)}

	assert.Equal(t, "Segunda-feira: 08:00 - 09:00", RenderScheduleLocalized(slots, "pt"))
	// Unknown locales fall back to English.
	assert.Equal(t, "Monday: 08:00 - 09:00", RenderScheduleLocalized(slots, "de"))
}

func TestRenderSchedule_Pure(t *testing.T) {
	slots := []model.TimeSlot{slot(5, 14, 15), slot(1, 8, 9)}

	first := RenderSchedule(slots)
	second := RenderSchedule(slots)

	assert.Equal(t, first, second)
	// The caller's slice keeps its original order.
	assert.Equal(t, 5, slots[0].Start.Day())
	assert.Equal(t, 1, slots[1].Start.Day())
}
