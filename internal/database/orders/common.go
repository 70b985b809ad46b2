package orders

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
		"health_unit_id",
		"customer_name",
		"caregiver_id",
		"services",
		"status",
		"created_at",
	).
	From(database.OrdersTable)
