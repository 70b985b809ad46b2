package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/andreferraz/homecare-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatedColor(t *testing.T) {
	tests := []struct {
		color    string
		expected string
	}{
		{"#1890FF", "#1890FF"},
		{"#abc", "#abc"},
		{"#AbCdEf", "#AbCdEf"},
		{"notacolor", model.DefaultTextColor},
		{"", model.DefaultTextColor},
		{"#12345", model.DefaultTextColor},
		{"1890FF", model.DefaultTextColor},
		{"#1890FG", model.DefaultTextColor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, validatedColor(tt.color), "color %q", tt.color)
	}
}

func draft(title string, start, end time.Time) *model.Event {
	return &model.Event{
		EventCreate: model.EventCreate{
			OwnerType: model.OwnerHealthUnit,
			OwnerID:   1,
			Title:     title,
			TextColor: "notacolor",
			Start:     start,
			End:       end,
		},
	}
}

func TestMaterialize_ColorFallback(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	drafts := []*model.Event{draft("visit", now, now.Add(time.Hour))}

	events, err := materialize(drafts, &expandContext{})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTextColor, events[0].TextColor)
}

func TestMaterialize_BadOrderingAbortsBatch(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	drafts := []*model.Event{
		draft("visit", now, now.Add(time.Hour)),
		draft("visit", now.Add(time.Hour), now), // end before start
	}

	events, err := materialize(drafts, &expandContext{})

	var draftErr *model.InvalidEventDraftError
	require.True(t, errors.As(err, &draftErr))
	assert.Equal(t, 1, draftErr.Index)
	assert.Nil(t, events)
}

func TestMaterialize_MissingTitleAbortsBatch(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	drafts := []*model.Event{draft("", now, now.Add(time.Hour))}

	_, err := materialize(drafts, &expandContext{})

	var draftErr *model.InvalidEventDraftError
	require.True(t, errors.As(err, &draftErr))
}

func TestMaterialize_AttachesSummaries(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	drafts := []*model.Event{draft("visit", now, now.Add(time.Hour))}

	caregiverID := int64(3)
	octx := &expandContext{
		order: &model.Order{
			ID:          9,
			OrderCreate: model.OrderCreate{CustomerName: "Dona Maria", CaregiverID: &caregiverID},
		},
		caregiver: &model.Caregiver{
			ID:              caregiverID,
			CaregiverCreate: model.CaregiverCreate{Name: "João Silva", ProfilePicture: "/files/joao.jpg"},
		},
	}

	events, err := materialize(drafts, octx)
	require.NoError(t, err)

	require.NotNil(t, events[0].Order)
	assert.Equal(t, int64(9), events[0].Order.ID)
	assert.Equal(t, "Dona Maria", events[0].Order.CustomerName)
	require.NotNil(t, events[0].Caregiver)
	assert.Equal(t, caregiverID, events[0].Caregiver.ID)
	assert.Equal(t, "João Silva", events[0].Caregiver.Name)
}
