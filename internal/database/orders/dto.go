package orders

import (
	"time"

	"github.com/andreferraz/homecare-backend/internal/model"
)

type orderDTO struct {
	ID           int64
	HealthUnitID int64
	CustomerName string
	CaregiverID  *int64
	Services     []string
	Status       int
	CreatedAt    time.Time
}

func mapToOrder(dto *orderDTO) *model.Order {
	return &model.Order{
		ID: dto.ID,
		OrderCreate: model.OrderCreate{
			HealthUnitID: dto.HealthUnitID,
			CustomerName: dto.CustomerName,
			CaregiverID:  dto.CaregiverID,
			Services:     dto.Services,
			Status:       model.OrderStatus(dto.Status),
			CreatedAt:    dto.CreatedAt,
		},
	}
}
