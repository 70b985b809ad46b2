package schedule

import (
	"context"
	"fmt"

	"github.com/andreferraz/homecare-backend/internal/model"
)

// CreateSeries validates the owner, stores the series, expands it and
// persists the derived events in one transaction.
func (s *Service) CreateSeries(ctx context.Context, info *model.SeriesCreate) (*model.Series, []*model.Event, error) {
	lookup, ok := s.owners[info.OwnerType]
	if !ok {
		return nil, nil, fmt.Errorf("no owner lookup for type %q", info.OwnerType)
	}
	if err := lookup(ctx, info.OwnerID); err != nil {
		return nil, nil, fmt.Errorf("resolve owner: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	id, err := s.series.CreateSeries(ctx, tx, info)
	if err != nil {
		return nil, nil, fmt.Errorf("series.CreateSeries: %w", err)
	}

	series := &model.Series{ID: id, SeriesCreate: *info}

	events, err := s.ExpandSeries(ctx, series)
	if err != nil {
		return nil, nil, err
	}

	if err := s.events.CreateEvents(ctx, tx, events); err != nil {
		return nil, nil, fmt.Errorf("events.CreateEvents: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit tx: %w", err)
	}

	return series, events, nil
}

// UpdateSeries replaces the series definition and all of its derived events.
// Delete and reinsert share one transaction so the calendar never shows a
// half-regenerated series.
func (s *Service) UpdateSeries(ctx context.Context, series *model.Series) ([]*model.Event, error) {
	if _, err := s.series.GetSeriesByID(ctx, s.db, series.ID); err != nil {
		return nil, fmt.Errorf("series.GetSeriesByID: %w", err)
	}

	events, err := s.ExpandSeries(ctx, series)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.series.UpdateSeries(ctx, tx, series); err != nil {
		return nil, fmt.Errorf("series.UpdateSeries: %w", err)
	}

	if err := s.events.DeleteEventsBySeries(ctx, tx, series.ID); err != nil {
		return nil, fmt.Errorf("events.DeleteEventsBySeries: %w", err)
	}

	if err := s.events.CreateEvents(ctx, tx, events); err != nil {
		return nil, fmt.Errorf("events.CreateEvents: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return events, nil
}

// DeleteSeries cascades to the derived events. Ad-hoc events are untouched.
func (s *Service) DeleteSeries(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.events.DeleteEventsBySeries(ctx, tx, id); err != nil {
		return fmt.Errorf("events.DeleteEventsBySeries: %w", err)
	}

	if err := s.series.DeleteSeries(ctx, tx, id); err != nil {
		return fmt.Errorf("series.DeleteSeries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func (s *Service) GetSeriesByID(ctx context.Context, id int64) (*model.Series, error) {
	series, err := s.series.GetSeriesByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("series.GetSeriesByID: %w", err)
	}

	return series, nil
}

func (s *Service) GetSeriesByOrder(ctx context.Context, orderID int64) ([]*model.Series, error) {
	series, err := s.series.GetSeriesByOrder(ctx, s.db, orderID)
	if err != nil {
		return nil, fmt.Errorf("series.GetSeriesByOrder: %w", err)
	}

	return series, nil
}
