package caregivers

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/model"
)

func (*Repository) GetCaregiverByID(ctx context.Context, q database.Queryable, id int64) (*model.Caregiver, error) {
	caregivers, err := getCaregivers(ctx, q, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}

	if len(caregivers) == 0 {
		return nil, model.ErrNoRecord
	}

	return caregivers[0], nil
}

func (*Repository) GetCaregiversByIDs(ctx context.Context, q database.Queryable, ids []int64) ([]*model.Caregiver, error) {
	return getCaregivers(ctx, q, sq.Eq{"id": ids})
}

func getCaregivers(ctx context.Context, q database.Queryable, predicate interface{}) ([]*model.Caregiver, error) {
	qb := baseQuery.
		Where(predicate)

	var dtos []*caregiverDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Caregiver, len(dtos))
	for i, d := range dtos {
		res[i] = mapToCaregiver(d)
	}

	return res, nil
}
