package orders

import (
	"context"
	"fmt"

	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/model"
)

func (*Repository) CreateOrder(ctx context.Context, q database.Queryable, order *model.OrderCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.OrdersTable).
		Columns(
			"health_unit_id",
			"customer_name",
			"caregiver_id",
			"services",
			"status",
			"created_at",
		).
		Values(
			order.HealthUnitID,
			order.CustomerName,
			order.CaregiverID,
			order.Services,
			order.Status,
			order.CreatedAt,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
