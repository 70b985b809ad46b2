package schedule

import (
	"context"

	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/model"
)

// Service owns the recurring schedule engine and the series lifecycle around
// it.
type Service struct {
	db         database.PGX
	orders     ordersRepository
	caregivers caregiversRepository
	series     seriesRepository
	events     eventsRepository
	owners     OwnerRegistry
}

type ordersRepository interface {
	GetOrderByID(ctx context.Context, q database.Queryable, id int64) (*model.Order, error)
}

type caregiversRepository interface {
	GetCaregiverByID(ctx context.Context, q database.Queryable, id int64) (*model.Caregiver, error)
}

type seriesRepository interface {
	CreateSeries(ctx context.Context, q database.Queryable, series *model.SeriesCreate) (int64, error)
	GetSeriesByID(ctx context.Context, q database.Queryable, id int64) (*model.Series, error)
	GetSeriesByOrder(ctx context.Context, q database.Queryable, orderID int64) ([]*model.Series, error)
	UpdateSeries(ctx context.Context, q database.Queryable, series *model.Series) error
	DeleteSeries(ctx context.Context, q database.Queryable, id int64) error
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, event *model.Event) (int64, error)
	CreateEvents(ctx context.Context, q database.Queryable, events []*model.Event) error
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error)
	GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error)
	DeleteEvent(ctx context.Context, q database.Queryable, id int64) error
	DeleteEventsBySeries(ctx context.Context, q database.Queryable, seriesID int64) error
}

// OwnerLookup resolves one owner kind. The registry replaces runtime type
// inspection of the polymorphic owner reference.
type OwnerLookup func(ctx context.Context, id int64) error

type OwnerRegistry map[model.OwnerType]OwnerLookup

func NewService(
	db database.PGX,
	orders ordersRepository,
	caregivers caregiversRepository,
	series seriesRepository,
	events eventsRepository,
	owners OwnerRegistry,
) *Service {
	return &Service{
		db:         db,
		orders:     orders,
		caregivers: caregivers,
		series:     series,
		events:     events,
		owners:     owners,
	}
}
