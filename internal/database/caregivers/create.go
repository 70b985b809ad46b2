package caregivers

import (
	"context"
	"fmt"

	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/model"
)

func (*Repository) CreateCaregiver(ctx context.Context, q database.Queryable, caregiver *model.CaregiverCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.CaregiversTable).
		Columns("name", "email", "phone_number", "profile_picture").
		Values(
			caregiver.Name,
			caregiver.Email,
			caregiver.PhoneNumber,
			caregiver.ProfilePicture,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
