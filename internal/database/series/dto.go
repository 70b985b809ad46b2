package series

import (
	"time"

	"github.com/andreferraz/homecare-backend/internal/model"
)

type seriesDTO struct {
	ID          int64
	OwnerType   string
	OwnerID     int64
	OrderID     *int64
	CaregiverID *int64
	Title       string
	Description string
	Location    string
	TextColor   string
	AllDay      bool
	StartDate   time.Time
	Recurrency  int
	Schedule    []*slotDTO
	EndKind     int
	EndDate     *time.Time
	EndCount    int
}

// slotDTO is stored as jsonb.
type slotDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func mapToSeries(dto *seriesDTO) *model.Series {
	schedule := make([]model.TimeSlot, len(dto.Schedule))
	for i, s := range dto.Schedule {
		schedule[i] = model.TimeSlot{Start: s.Start, End: s.End}
	}

	end := model.EndCondition{
		Kind:  model.EndKind(dto.EndKind),
		Count: dto.EndCount,
	}
	if dto.EndDate != nil {
		end.Date = *dto.EndDate
	}

	return &model.Series{
		ID: dto.ID,
		SeriesCreate: model.SeriesCreate{
			OwnerType:   model.OwnerType(dto.OwnerType),
			OwnerID:     dto.OwnerID,
			OrderID:     dto.OrderID,
			CaregiverID: dto.CaregiverID,
			Title:       dto.Title,
			Description: dto.Description,
			Location:    dto.Location,
			TextColor:   dto.TextColor,
			AllDay:      dto.AllDay,
			StartDate:   dto.StartDate,
			Recurrency:  model.Recurrency(dto.Recurrency),
			Schedule:    schedule,
			End:         end,
		},
	}
}

func mapToSlotDTOs(schedule []model.TimeSlot) []*slotDTO {
	res := make([]*slotDTO, len(schedule))
	for i, s := range schedule {
		res[i] = &slotDTO{Start: s.Start, End: s.End}
	}

	return res
}

func endDate(end model.EndCondition) *time.Time {
	if end.Kind != model.EndOnDate {
		return nil
	}

	d := end.Date
	return &d
}
