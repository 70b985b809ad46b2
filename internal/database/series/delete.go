package series

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/andreferraz/homecare-backend/internal/database"
)

func (*Repository) DeleteSeries(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Delete(database.SeriesTable).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
