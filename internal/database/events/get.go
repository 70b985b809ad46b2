package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/model"
)

func (*Repository) GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return mapToEvent(dtos[0]), nil
}

func (*Repository) GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"owner_type": string(filter.OwnerType)}).
		Where(sq.Eq{"owner_id": filter.OwnerID}).
		Where(sq.Lt{"start_date": filter.To}).
		Where(sq.GtOrEq{"end_date": filter.From}).
		OrderBy("start_date")

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}
