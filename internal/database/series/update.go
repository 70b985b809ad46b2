package series

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/model"
)

func (*Repository) UpdateSeries(ctx context.Context, q database.Queryable, series *model.Series) error {
	qb := database.PSQL.
		Update(database.SeriesTable).
		SetMap(map[string]interface{}{
			"owner_type":   string(series.OwnerType),
			"owner_id":     series.OwnerID,
			"order_id":     series.OrderID,
			"caregiver_id": series.CaregiverID,
			"title":        series.Title,
			"description":  series.Description,
			"location":     series.Location,
			"text_color":   series.TextColor,
			"all_day":      series.AllDay,
			"start_date":   series.StartDate,
			"recurrency":   int(series.Recurrency),
			"schedule":     mapToSlotDTOs(series.Schedule),
			"end_kind":     int(series.End.Kind),
			"end_date":     endDate(series.End),
			"end_count":    series.End.Count,
		}).
		Where(sq.Eq{"id": series.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
