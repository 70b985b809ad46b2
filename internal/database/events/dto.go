package events

import (
	"time"

	"github.com/andreferraz/homecare-backend/internal/model"
)

type eventDTO struct {
	ID                int64
	SeriesID          *int64
	OwnerType         string
	OwnerID           int64
	OrderID           *int64
	OrderCustomerName *string
	CaregiverID       *int64
	CaregiverName     *string
	CaregiverPicture  *string
	Title             string
	Description       string
	Location          string
	TextColor         string
	AllDay            bool
	StartDate         time.Time
	EndDate           time.Time
}

func mapToEvent(dto *eventDTO) *model.Event {
	var order *model.OrderSummary
	if dto.OrderID != nil {
		order = &model.OrderSummary{ID: *dto.OrderID}
		if dto.OrderCustomerName != nil {
			order.CustomerName = *dto.OrderCustomerName
		}
	}

	var caregiver *model.CaregiverSummary
	if dto.CaregiverID != nil {
		caregiver = &model.CaregiverSummary{ID: *dto.CaregiverID}
		if dto.CaregiverName != nil {
			caregiver.Name = *dto.CaregiverName
		}
		if dto.CaregiverPicture != nil {
			caregiver.ProfilePicture = *dto.CaregiverPicture
		}
	}

	return &model.Event{
		ID:        dto.ID,
		SeriesID:  dto.SeriesID,
		Order:     order,
		Caregiver: caregiver,
		EventCreate: model.EventCreate{
			OwnerType:   model.OwnerType(dto.OwnerType),
			OwnerID:     dto.OwnerID,
			OrderID:     dto.OrderID,
			Title:       dto.Title,
			Description: dto.Description,
			Location:    dto.Location,
			TextColor:   dto.TextColor,
			AllDay:      dto.AllDay,
			Start:       dto.StartDate,
			End:         dto.EndDate,
		},
	}
}
