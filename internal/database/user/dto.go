package user

import (
	"github.com/andreferraz/homecare-backend/internal/model"
)

type userDTO struct {
	ID          int64
	FullName    string
	Email       string
	PhoneNumber string
	Photo       string
}

func mapToUser(dto *userDTO) *model.User {
	return &model.User{
		ID: dto.ID,
		UserCreate: model.UserCreate{
			FullName:    dto.FullName,
			Email:       dto.Email,
			PhoneNumber: dto.PhoneNumber,
			Photo:       dto.Photo,
		},
	}
}
