package series

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/model"
)

func (*Repository) GetSeriesByID(ctx context.Context, q database.Queryable, id int64) (*model.Series, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	var dtos []*seriesDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return mapToSeries(dtos[0]), nil
}

func (*Repository) GetSeriesByOrder(ctx context.Context, q database.Queryable, orderID int64) ([]*model.Series, error) {
	qb := baseQuery.
		Where(sq.Eq{"order_id": orderID})

	var dtos []*seriesDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Series, len(dtos))
	for i, d := range dtos {
		res[i] = mapToSeries(d)
	}

	return res, nil
}
