package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/andreferraz/homecare-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSeries_PersistsDerivedEvents(t *testing.T) {
	svc, _, _, seriesRepo, eventsRepo, db := newTestService()
	info := weeklySeries().SeriesCreate

	series, events, err := svc.CreateSeries(context.Background(), &info)
	require.NoError(t, err)

	assert.NotZero(t, series.ID)
	assert.Len(t, events, 52)
	assert.Len(t, eventsRepo.events, 52)
	assert.Contains(t, seriesRepo.series, series.ID)
	assert.Equal(t, db.beginCount, db.commitCount)
}

func TestCreateSeries_UnknownOwnerType(t *testing.T) {
	svc, _, _, _, eventsRepo, _ := newTestService()
	info := weeklySeries().SeriesCreate
	info.OwnerType = "patient"

	_, _, err := svc.CreateSeries(context.Background(), &info)
	require.Error(t, err)
	assert.Empty(t, eventsRepo.events)
}

func TestUpdateSeries_ReplacesDerivedEvents(t *testing.T) {
	svc, _, _, _, eventsRepo, _ := newTestService()
	info := weeklySeries().SeriesCreate

	series, _, err := svc.CreateSeries(context.Background(), &info)
	require.NoError(t, err)
	require.Len(t, eventsRepo.events, 52)

	// An ad-hoc event must survive the regeneration.
	adhoc, err := svc.CreateEvent(context.Background(), &model.EventCreate{
		OwnerType: model.OwnerHealthUnit,
		OwnerID:   1,
		Title:     "One-time check-in",
		Start:     series.StartDate.Add(10 * time.Hour),
		End:       series.StartDate.Add(11 * time.Hour),
	})
	require.NoError(t, err)

	series.End = model.EndCondition{
		Kind: model.EndOnDate,
		Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	events, err := svc.UpdateSeries(context.Background(), series)
	require.NoError(t, err)
	assert.Len(t, events, 5)

	// 5 derived events plus the ad-hoc one.
	assert.Len(t, eventsRepo.events, 6)
	_, err = svc.GetEventByID(context.Background(), adhoc.ID)
	assert.NoError(t, err)
}

func TestDeleteSeries_CascadesToDerivedEventsOnly(t *testing.T) {
	svc, _, _, seriesRepo, eventsRepo, _ := newTestService()
	info := weeklySeries().SeriesCreate

	series, _, err := svc.CreateSeries(context.Background(), &info)
	require.NoError(t, err)

	adhoc, err := svc.CreateEvent(context.Background(), &model.EventCreate{
		OwnerType: model.OwnerHealthUnit,
		OwnerID:   1,
		Title:     "One-time check-in",
		Start:     series.StartDate.Add(10 * time.Hour),
		End:       series.StartDate.Add(11 * time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSeries(context.Background(), series.ID))

	assert.NotContains(t, seriesRepo.series, series.ID)
	assert.Len(t, eventsRepo.events, 1)
	_, err = svc.GetEventByID(context.Background(), adhoc.ID)
	assert.NoError(t, err)
}

func TestCreateEvent_ValidatesDraft(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	_, err := svc.CreateEvent(context.Background(), &model.EventCreate{
		OwnerType: model.OwnerHealthUnit,
		OwnerID:   1,
		Title:     "backwards",
		Start:     now.Add(time.Hour),
		End:       now,
	})
	require.Error(t, err)

	event, err := svc.CreateEvent(context.Background(), &model.EventCreate{
		OwnerType: model.OwnerHealthUnit,
		OwnerID:   1,
		Title:     "ok",
		TextColor: "nope",
		Start:     now,
		End:       now.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTextColor, event.TextColor)
	assert.Nil(t, event.SeriesID)
}
