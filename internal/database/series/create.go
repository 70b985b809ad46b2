package series

import (
	"context"
	"fmt"

	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/model"
)

func (*Repository) CreateSeries(ctx context.Context, q database.Queryable, series *model.SeriesCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.SeriesTable).
		Columns(
			"owner_type",
			"owner_id",
			"order_id",
			"caregiver_id",
			"title",
			"description",
			"location",
			"text_color",
			"all_day",
			"start_date",
			"recurrency",
			"schedule",
			"end_kind",
			"end_date",
			"end_count",
		).
		Values(
			string(series.OwnerType),
			series.OwnerID,
			series.OrderID,
			series.CaregiverID,
			series.Title,
			series.Description,
			series.Location,
			series.TextColor,
			series.AllDay,
			series.StartDate,
			int(series.Recurrency),
			mapToSlotDTOs(series.Schedule),
			int(series.End.Kind),
			endDate(series.End),
			series.End.Count,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
