package api

import (
	"testing"
	"time"

	"github.com/andreferraz/homecare-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSeriesRequest() *seriesRequest {
	start := dateTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return &seriesRequest{
		OwnerType:  "health_unit",
		OwnerID:    1,
		Title:      "Morning care",
		StartDate:  start,
		Recurrency: int(model.RecurrencyWeekly),
		Schedule: []timeSlotResp{{
			Start: dateTime(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)),
			End:   dateTime(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)),
		}},
	}
}

func TestSeriesRequestValidate(t *testing.T) {
	v := validSeriesRequest().validate()
	assert.True(t, v.Valid())
}

func TestSeriesRequestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*seriesRequest)
		field  string
	}{
		{"unknown owner type", func(r *seriesRequest) { r.OwnerType = "clinic" }, "owner_type"},
		{"missing title", func(r *seriesRequest) { r.Title = "" }, "title"},
		{"missing start date", func(r *seriesRequest) { r.StartDate = dateTime(time.Time{}) }, "start_date"},
		{"unknown recurrency", func(r *seriesRequest) { r.Recurrency = 3 }, "recurrency"},
		{"empty schedule", func(r *seriesRequest) { r.Schedule = nil }, "schedule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSeriesRequest()
			tt.mutate(req)

			v := req.validate()
			require.False(t, v.Valid())
			assert.Contains(t, v.Errors, tt.field)
		})
	}
}

func TestSeriesRequestToCreate(t *testing.T) {
	req := validSeriesRequest()
	end := dateTime(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	req.EndDate = &end

	info := req.toCreate()

	assert.Equal(t, model.OwnerHealthUnit, info.OwnerType)
	assert.Equal(t, model.RecurrencyWeekly, info.Recurrency)
	require.Len(t, info.Schedule, 1)
	assert.Equal(t, model.EndOnDate, info.End.Kind)
	assert.Equal(t, time.Time(end), info.End.Date)
}

func TestEndConditionFromRequest(t *testing.T) {
	assert.Equal(t, model.EndNever, endConditionFromRequest(nil, nil).Kind)

	count := 10
	cond := endConditionFromRequest(nil, &count)
	assert.Equal(t, model.EndAfterCount, cond.Kind)
	assert.Equal(t, 10, cond.Count)

	date := dateTime(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	cond = endConditionFromRequest(&date, &count)
	assert.Equal(t, model.EndOnDate, cond.Kind)
}
