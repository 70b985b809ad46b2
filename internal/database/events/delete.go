package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/andreferraz/homecare-backend/internal/database"
)

func (*Repository) DeleteEvent(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Delete(database.EventsTable).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

// DeleteEventsBySeries removes every derived event of a series. Ad-hoc events
// have a null series_id and are never matched.
func (*Repository) DeleteEventsBySeries(ctx context.Context, q database.Queryable, seriesID int64) error {
	qb := database.PSQL.
		Delete(database.EventsTable).
		Where(sq.Eq{"series_id": seriesID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
