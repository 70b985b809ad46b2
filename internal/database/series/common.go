package series

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
	From(database.SeriesTable)
