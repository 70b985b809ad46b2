package schedule

import (
	"context"

	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/model"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// fakePGX satisfies database.PGX for service tests. The fake repositories
// ignore the Queryable they receive, so the query methods are inert.
type fakePGX struct {
	beginCount  int
	commitCount int
}

func (f *fakePGX) Exec(ctx context.Context, sqlizer database.Sqlizer) (pgconn.CommandTag, error) {
	return nil, nil
}

func (f *fakePGX) Get(ctx context.Context, dst interface{}, sqlizer database.Sqlizer) error {
	return nil
}

func (f *fakePGX) Select(ctx context.Context, dst interface{}, sqlizer database.Sqlizer) error {
	return nil
}

func (f *fakePGX) ExecRaw(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	return nil, nil
}

func (f *fakePGX) GetPool(ctx context.Context) *pgxpool.Pool {
	return nil
}

func (f *fakePGX) BeginTx(ctx context.Context, txOptions *pgx.TxOptions) (database.Tx, error) {
	f.beginCount++
	return &fakeTx{pgx: f}, nil
}

type fakeTx struct {
	fakePGX
	pgx *fakePGX
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.pgx.commitCount++
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	return nil
}

type fakeOrders struct {
	orders map[int64]*model.Order
	calls  int
}

func (f *fakeOrders) GetOrderByID(ctx context.Context, q database.Queryable, id int64) (*model.Order, error) {
	f.calls++
	order, ok := f.orders[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return order, nil
}

type fakeCaregivers struct {
	caregivers map[int64]*model.Caregiver
	calls      int
}

func (f *fakeCaregivers) GetCaregiverByID(ctx context.Context, q database.Queryable, id int64) (*model.Caregiver, error) {
	f.calls++
	caregiver, ok := f.caregivers[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return caregiver, nil
}

type fakeSeriesRepo struct {
	nextID int64
	series map[int64]*model.Series
}

func newFakeSeriesRepo() *fakeSeriesRepo {
	return &fakeSeriesRepo{nextID: 1, series: map[int64]*model.Series{}}
}

func (f *fakeSeriesRepo) CreateSeries(ctx context.Context, q database.Queryable, info *model.SeriesCreate) (int64, error) {
	id := f.nextID
	f.nextID++
	f.series[id] = &model.Series{ID: id, SeriesCreate: *info}
	return id, nil
}

func (f *fakeSeriesRepo) GetSeriesByID(ctx context.Context, q database.Queryable, id int64) (*model.Series, error) {
	s, ok := f.series[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return s, nil
}

func (f *fakeSeriesRepo) GetSeriesByOrder(ctx context.Context, q database.Queryable, orderID int64) ([]*model.Series, error) {
	var res []*model.Series
	for _, s := range f.series {
		if s.OrderID != nil && *s.OrderID == orderID {
			res = append(res, s)
		}
	}
	return res, nil
}

func (f *fakeSeriesRepo) UpdateSeries(ctx context.Context, q database.Queryable, series *model.Series) error {
	if _, ok := f.series[series.ID]; !ok {
		return model.ErrNoRecord
	}
	f.series[series.ID] = series
	return nil
}

func (f *fakeSeriesRepo) DeleteSeries(ctx context.Context, q database.Queryable, id int64) error {
	delete(f.series, id)
	return nil
}

type fakeEventsRepo struct {
	nextID int64
	events map[int64]*model.Event
}

func newFakeEventsRepo() *fakeEventsRepo {
	return &fakeEventsRepo{nextID: 1, events: map[int64]*model.Event{}}
}

func (f *fakeEventsRepo) CreateEvent(ctx context.Context, q database.Queryable, event *model.Event) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *event
	stored.ID = id
	f.events[id] = &stored
	return id, nil
}

func (f *fakeEventsRepo) CreateEvents(ctx context.Context, q database.Queryable, events []*model.Event) error {
	for _, e := range events {
		if _, err := f.CreateEvent(ctx, q, e); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeEventsRepo) GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return e, nil
}

func (f *fakeEventsRepo) GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error) {
	var res []*model.Event
	for _, e := range f.events {
		if e.OwnerType != filter.OwnerType || e.OwnerID != filter.OwnerID {
			continue
		}
		if !e.Start.Before(filter.To) || e.End.Before(filter.From) {
			continue
		}
		res = append(res, e)
	}
	return res, nil
}

func (f *fakeEventsRepo) DeleteEvent(ctx context.Context, q database.Queryable, id int64) error {
	delete(f.events, id)
	return nil
}

func (f *fakeEventsRepo) DeleteEventsBySeries(ctx context.Context, q database.Queryable, seriesID int64) error {
	for id, e := range f.events {
		if e.SeriesID != nil && *e.SeriesID == seriesID {
			delete(f.events, id)
		}
	}
	return nil
}
