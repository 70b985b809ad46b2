package caregivers

import (
	"github.com/andreferraz/homecare-backend/internal/model"
)

type caregiverDTO struct {
	ID             int64
	Name           string
	Email          string
	PhoneNumber    string
	ProfilePicture string
}

func mapToCaregiver(dto *caregiverDTO) *model.Caregiver {
	return &model.Caregiver{
		ID: dto.ID,
		CaregiverCreate: model.CaregiverCreate{
			Name:           dto.Name,
			Email:          dto.Email,
			PhoneNumber:    dto.PhoneNumber,
			ProfilePicture: dto.ProfilePicture,
		},
	}
}
