package caregivers

import (
	"github.com/andreferraz/homecare-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"name",
		"email",
		"phone_number",
		"profile_picture",
	).
	From(database.CaregiversTable)
