package api

import (
	"time"

	"github.com/andreferraz/homecare-backend/internal/model"
)

type timeSlotResp struct {
	Start dateTime `json:"start"`
	End   dateTime `json:"end"`
}

type seriesResp struct {
	ID          int64          `json:"id"`
	OwnerType   string         `json:"owner_type"`
	OwnerID     int64          `json:"owner_id"`
	OrderID     *int64         `json:"order_id,omitempty"`
	CaregiverID *int64         `json:"caregiver_id,omitempty"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Location    string         `json:"location,omitempty"`
	TextColor   string         `json:"text_color"`
	AllDay      bool           `json:"all_day"`
	StartDate   dateTime       `json:"start_date"`
	Recurrency  int            `json:"recurrency"`
	Schedule    []timeSlotResp `json:"schedule"`
	EndDate     *dateTime      `json:"end_date,omitempty"`
}

func mapToSeriesResp(series *model.Series) (*seriesResp, error) {
	slots, _ := mapSlice(series.Schedule, func(s model.TimeSlot) (timeSlotResp, error) {
		return timeSlotResp{Start: dateTime(s.Start), End: dateTime(s.End)}, nil
	})

	resp := &seriesResp{
		ID:          series.ID,
		OwnerType:   string(series.OwnerType),
		OwnerID:     series.OwnerID,
		OrderID:     series.OrderID,
		CaregiverID: series.CaregiverID,
		Title:       series.Title,
		Description: series.Description,
		Location:    series.Location,
		TextColor:   series.TextColor,
		AllDay:      series.AllDay,
		StartDate:   dateTime(series.StartDate),
		Recurrency:  int(series.Recurrency),
		Schedule:    slots,
	}

	if series.End.Kind == model.EndOnDate {
		end := dateTime(series.End.Date)
		resp.EndDate = &end
	}

	return resp, nil
}

type orderSummaryResp struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
}

type caregiverSummaryResp struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

type eventResp struct {
	ID          int64                 `json:"id"`
	SeriesID    *int64                `json:"series_id,omitempty"`
	OwnerType   string                `json:"owner_type"`
	OwnerID     int64                 `json:"owner_id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Location    string                `json:"location,omitempty"`
	TextColor   string                `json:"text_color"`
	AllDay      bool                  `json:"all_day"`
	Start       dateTime              `json:"start"`
	End         dateTime              `json:"end"`
	Order       *orderSummaryResp     `json:"order,omitempty"`
	Caregiver   *caregiverSummaryResp `json:"caregiver,omitempty"`
}

func mapToEventResp(event *model.Event) (*eventResp, error) {
	resp := &eventResp{
		ID:          event.ID,
		SeriesID:    event.SeriesID,
		OwnerType:   string(event.OwnerType),
		OwnerID:     event.OwnerID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		TextColor:   event.TextColor,
		AllDay:      event.AllDay,
		Start:       dateTime(event.Start),
		End:         dateTime(event.End),
	}

	if event.Order != nil {
		resp.Order = &orderSummaryResp{
			ID:           event.Order.ID,
			CustomerName: event.Order.CustomerName,
		}
	}

	if event.Caregiver != nil {
		resp.Caregiver = &caregiverSummaryResp{
			ID:             event.Caregiver.ID,
			Name:           event.Caregiver.Name,
			ProfilePicture: event.Caregiver.ProfilePicture,
		}
	}

	return resp, nil
}

func endConditionFromRequest(endDate *dateTime, endCount *int) model.EndCondition {
	switch {
	case endDate != nil:
		return model.EndCondition{Kind: model.EndOnDate, Date: time.Time(*endDate)}
	case endCount != nil:
		return model.EndCondition{Kind: model.EndAfterCount, Count: *endCount}
	default:
		return model.EndCondition{Kind: model.EndNever}
	}
}
