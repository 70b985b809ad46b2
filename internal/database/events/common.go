package events

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
		"series_id",
		"owner_type",
		"owner_id",
		"order_id",
		"order_customer_name",
		"caregiver_id",
		"caregiver_name",
		"caregiver_picture",
		"title",
		"description",
		"location",
		"text_color",
		"all_day",
		"start_date",
		"end_date",
	).
	From(database.EventsTable)
