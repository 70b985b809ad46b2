package events

import (
	"context"
	"fmt"

	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/model"
)

var insertColumns = []string{
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
}

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, event *model.Event) (int64, error) {
	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(insertColumns...).
		Values(insertValues(event)...).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}

// CreateEvents inserts a whole materialized batch. Callers replacing a series
// run this inside the same transaction as the delete.
func (*Repository) CreateEvents(ctx context.Context, q database.Queryable, events []*model.Event) error {
	if len(events) == 0 {
		return nil
	}

	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(insertColumns...)

	for _, e := range events {
		qb = qb.Values(insertValues(e)...)
	}

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func insertValues(event *model.Event) []interface{} {
	var orderID, caregiverID *int64
	var customerName, caregiverName, caregiverPicture *string

	if event.Order != nil {
		orderID = &event.Order.ID
		customerName = &event.Order.CustomerName
	} else {
		orderID = event.OrderID
	}

	if event.Caregiver != nil {
		caregiverID = &event.Caregiver.ID
		caregiverName = &event.Caregiver.Name
		caregiverPicture = &event.Caregiver.ProfilePicture
	}

	return []interface{}{
		event.SeriesID,
		string(event.OwnerType),
		event.OwnerID,
		orderID,
		customerName,
		caregiverID,
		caregiverName,
		caregiverPicture,
		event.Title,
		event.Description,
		event.Location,
		event.TextColor,
		event.AllDay,
		event.Start,
		event.End,
	}
}
