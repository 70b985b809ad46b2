package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andreferraz/homecare-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *fakeOrders, *fakeCaregivers, *fakeSeriesRepo, *fakeEventsRepo, *fakePGX) {
	db := &fakePGX{}
	orders := &fakeOrders{orders: map[int64]*model.Order{}}
	caregivers := &fakeCaregivers{caregivers: map[int64]*model.Caregiver{}}
	seriesRepo := newFakeSeriesRepo()
	eventsRepo := newFakeEventsRepo()

	registry := OwnerRegistry{
		model.OwnerHealthUnit:   func(ctx context.Context, id int64) error { return nil },
		model.OwnerCollaborator: func(ctx context.Context, id int64) error { return nil },
	}

	svc := NewService(db, orders, caregivers, seriesRepo, eventsRepo, registry)
	return svc, orders, caregivers, seriesRepo, eventsRepo, db
}

func weeklySeries() *model.Series {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // a Monday
	return &model.Series{
		ID: 7,
		SeriesCreate: model.SeriesCreate{
			OwnerType:  model.OwnerHealthUnit,
			OwnerID:    1,
			Title:      "Elder care visit",
			TextColor:  "#FF5733",
			StartDate:  start,
			Recurrency: model.RecurrencyWeekly,
			Schedule: []model.TimeSlot{
				{Start: start.Add(8 * time.Hour), End: start.Add(9 * time.Hour)},
			},
			End: model.EndCondition{Kind: model.EndNever},
		},
	}
}

func TestExpandSeries_WeeklyOpenEnded(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	series := weeklySeries()

	events, err := svc.ExpandSeries(context.Background(), series)
	require.NoError(t, err)

	require.Len(t, events, 52)

	first := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	last := time.Date(2024, 12, 23, 8, 0, 0, 0, time.UTC)
	assert.True(t, events[0].Start.Equal(first))
	assert.True(t, events[51].Start.Equal(last))

	horizon := series.StartDate.AddDate(1, 0, 0)
	for i, e := range events {
		assert.True(t, e.Start.Equal(first.AddDate(0, 0, 7*i)), "event %d", i)
		assert.True(t, e.End.Sub(e.Start) == time.Hour, "event %d", i)
		assert.False(t, e.Start.Before(series.StartDate), "event %d", i)
		assert.False(t, e.Start.After(horizon), "event %d", i)
		require.NotNil(t, e.SeriesID)
		assert.Equal(t, series.ID, *e.SeriesID)
	}
}

func TestExpandSeries_MonthlyRunsToHorizonCap(t *testing.T) {
	// A 28-day cadence with no end date runs all 52 cycles, which reaches
	// roughly four years out. Known behavior, asserted on purpose.
	svc, _, _, _, _, _ := newTestService()
	series := weeklySeries()
	series.Recurrency = model.RecurrencyMonthly

	events, err := svc.ExpandSeries(context.Background(), series)
	require.NoError(t, err)

	require.Len(t, events, 52)
	for i := 1; i < len(events); i++ {
		gap := events[i].Start.Sub(events[i-1].Start)
		assert.Equal(t, 28*24*time.Hour, gap, "event %d", i)
	}

	last := events[51].Start
	assert.True(t, last.After(series.StartDate.AddDate(3, 0, 0)), "last occurrence %v", last)
}

func TestExpandSeries_EndDateShortens(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	series := weeklySeries()
	series.End = model.EndCondition{
		Kind: model.EndOnDate,
		Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	events, err := svc.ExpandSeries(context.Background(), series)
	require.NoError(t, err)

	require.Len(t, events, 5)
	expectedDays := []int{1, 8, 15, 22, 29}
	for i, e := range events {
		assert.Equal(t, time.January, e.Start.Month(), "event %d", i)
		assert.Equal(t, expectedDays[i], e.Start.Day(), "event %d", i)
	}
}

func TestExpandSeries_EndDateClampedToOneYear(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	series := weeklySeries()
	series.End = model.EndCondition{
		Kind: model.EndOnDate,
		Date: series.StartDate.AddDate(2, 0, 0),
	}

	events, err := svc.ExpandSeries(context.Background(), series)
	require.NoError(t, err)

	// Same result as the open-ended series: the explicit end date cannot
	// push the bound past one year.
	require.Len(t, events, 52)
	horizon := series.StartDate.AddDate(1, 0, 0)
	for i, e := range events {
		assert.False(t, e.Start.After(horizon), "event %d", i)
	}
}

func TestExpandSeries_OneOffEmitsEachSlotOnce(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	series := weeklySeries()
	series.Recurrency = model.RecurrencyNone
	series.Schedule = append(series.Schedule, model.TimeSlot{
		Start: series.StartDate.Add(50 * time.Hour),
		End:   series.StartDate.Add(51 * time.Hour),
	})

	events, err := svc.ExpandSeries(context.Background(), series)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.True(t, events[0].Start.Equal(series.Schedule[0].Start))
	assert.True(t, events[1].Start.Equal(series.Schedule[1].Start))
}

func TestExpandSeries_MixedScheduleIsCycleMajor(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	series := weeklySeries()
	series.End = model.EndCondition{
		Kind: model.EndOnDate,
		Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	// Wednesday slot added after the Monday one.
	series.Schedule = append(series.Schedule, model.TimeSlot{
		Start: time.Date(2024, 1, 3, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC),
	})

	events, err := svc.ExpandSeries(context.Background(), series)
	require.NoError(t, err)

	// Cycle 0: Mon Jan 1, Wed Jan 3. Cycle 1: Mon Jan 8 (Wed Jan 10 at 14:00
	// is already past the end date and ends the cycle).
	require.Len(t, events, 3)
	assert.Equal(t, 1, events[0].Start.Day())
	assert.Equal(t, 3, events[1].Start.Day())
	assert.Equal(t, 8, events[2].Start.Day())
}

func TestExpandSeries_BoundedBySlotCount(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	series := weeklySeries()
	series.Schedule = append(series.Schedule, model.TimeSlot{
		Start: series.StartDate.Add(10 * time.Hour),
		End:   series.StartDate.Add(11 * time.Hour),
	})

	events, err := svc.ExpandSeries(context.Background(), series)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(events), horizonCycles*len(series.Schedule))

	// Per slot, starts increase strictly across cycles.
	seen := map[time.Time]struct{}{}
	for _, e := range events {
		_, dup := seen[e.Start]
		assert.False(t, dup, "duplicate occurrence at %v", e.Start)
		seen[e.Start] = struct{}{}
	}
}

func TestExpandSeries_InvalidRecurrencyBeforeLookups(t *testing.T) {
	svc, orders, caregivers, _, _, _ := newTestService()
	series := weeklySeries()
	series.Recurrency = 99
	orderID, caregiverID := int64(1), int64(2)
	series.OrderID = &orderID
	series.CaregiverID = &caregiverID

	_, err := svc.ExpandSeries(context.Background(), series)

	var invalidErr *model.InvalidRecurrencyError
	require.True(t, errors.As(err, &invalidErr))
	assert.Equal(t, model.Recurrency(99), invalidErr.Recurrency)

	// The recurrency check precedes any gateway call.
	assert.Zero(t, orders.calls)
	assert.Zero(t, caregivers.calls)
}

func TestExpandSeries_OrderNotFoundIsFatal(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	series := weeklySeries()
	orderID := int64(404)
	series.OrderID = &orderID

	events, err := svc.ExpandSeries(context.Background(), series)

	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	assert.Nil(t, events)
}

func TestExpandSeries_CaregiverNotFoundIsFatal(t *testing.T) {
	svc, orders, _, _, _, _ := newTestService()
	series := weeklySeries()
	orderID, caregiverID := int64(1), int64(404)
	orders.orders[orderID] = &model.Order{
		ID:          orderID,
		OrderCreate: model.OrderCreate{CustomerName: "Dona Maria", CaregiverID: &caregiverID},
	}
	series.OrderID = &orderID

	events, err := svc.ExpandSeries(context.Background(), series)

	assert.ErrorIs(t, err, model.ErrCaregiverNotFound)
	assert.Nil(t, events)
}

func TestExpandSeries_AttachesSummaries(t *testing.T) {
	svc, orders, caregivers, _, _, _ := newTestService()
	series := weeklySeries()
	orderID, caregiverID := int64(1), int64(2)
	orders.orders[orderID] = &model.Order{
		ID:          orderID,
		OrderCreate: model.OrderCreate{CustomerName: "Dona Maria", CaregiverID: &caregiverID},
	}
	caregivers.caregivers[caregiverID] = &model.Caregiver{
		ID: caregiverID,
		CaregiverCreate: model.CaregiverCreate{
			Name:           "João Silva",
			ProfilePicture: "/files/joao.jpg",
		},
	}
	series.OrderID = &orderID
	series.CaregiverID = &caregiverID

	events, err := svc.ExpandSeries(context.Background(), series)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	for _, e := range events {
		require.NotNil(t, e.Order)
		assert.Equal(t, "Dona Maria", e.Order.CustomerName)
		require.NotNil(t, e.Caregiver)
		assert.Equal(t, "João Silva", e.Caregiver.Name)
		assert.Equal(t, "/files/joao.jpg", e.Caregiver.ProfilePicture)
	}
}

func TestExpandSeries_AfterCountRejected(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	series := weeklySeries()
	series.End = model.EndCondition{Kind: model.EndAfterCount, Count: 10}

	_, err := svc.ExpandSeries(context.Background(), series)
	assert.ErrorIs(t, err, model.ErrUnsupportedEndCondition)
}
