package orders

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/model"
)

func (*Repository) GetOrderByID(ctx context.Context, q database.Queryable, id int64) (*model.Order, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	var dtos []*orderDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return mapToOrder(dtos[0]), nil
}
