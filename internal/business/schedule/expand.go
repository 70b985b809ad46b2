package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andreferraz/homecare-backend/internal/model"
	"golang.org/x/sync/errgroup"
)

// expandContext is the resolved order/caregiver environment of one expansion.
type expandContext struct {
	order     *model.Order
	caregiver *model.Caregiver
}

// ExpandSeries materializes every occurrence of a series within its horizon.
// The recurrency code is checked before any lookup, the order and caregiver
// references are resolved concurrently, and the result is all-or-nothing:
// a broken reference or an invalid draft aborts the whole batch.
func (s *Service) ExpandSeries(ctx context.Context, series *model.Series) ([]*model.Event, error) {
	if !series.Recurrency.Valid() {
		return nil, &model.InvalidRecurrencyError{Recurrency: series.Recurrency}
	}

	octx, err := s.resolveContext(ctx, series)
	if err != nil {
		return nil, err
	}

	drafts, err := expand(series)
	if err != nil {
		return nil, err
	}

	return materialize(drafts, octx)
}

// resolveContext loads the order and caregiver the series references. The two
// lookups are independent, so they run concurrently and join. When the series
// carries no caregiver reference but the resolved order does, a follow-up
// lookup fills the gap.
func (s *Service) resolveContext(ctx context.Context, series *model.Series) (*expandContext, error) {
	res := &expandContext{}

	g, gctx := errgroup.WithContext(ctx)

	if series.OrderID != nil {
		orderID := *series.OrderID
		g.Go(func() error {
			order, err := s.orders.GetOrderByID(gctx, s.db, orderID)
			if err != nil {
				if errors.Is(err, model.ErrNoRecord) {
					return model.ErrOrderNotFound
				}
				return fmt.Errorf("orders.GetOrderByID: %w", err)
			}

			res.order = order
			return nil
		})
	}

	if series.CaregiverID != nil {
		caregiverID := *series.CaregiverID
		g.Go(func() error {
			caregiver, err := s.caregivers.GetCaregiverByID(gctx, s.db, caregiverID)
			if err != nil {
				if errors.Is(err, model.ErrNoRecord) {
					return model.ErrCaregiverNotFound
				}
				return fmt.Errorf("caregivers.GetCaregiverByID: %w", err)
			}

			res.caregiver = caregiver
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if res.caregiver == nil && res.order != nil && res.order.CaregiverID != nil {
		caregiver, err := s.caregivers.GetCaregiverByID(ctx, s.db, *res.order.CaregiverID)
		if err != nil {
			if errors.Is(err, model.ErrNoRecord) {
				return nil, model.ErrCaregiverNotFound
			}
			return nil, fmt.Errorf("caregivers.GetCaregiverByID: %w", err)
		}

		res.caregiver = caregiver
	}

	return res, nil
}

// expand runs the cycle loop. Pure: no I/O, no mutation of the series.
func expand(series *model.Series) ([]*model.Event, error) {
	seriesEnd, err := ResolveSeriesEndDate(series.StartDate, series.End)
	if err != nil {
		return nil, err
	}

	cycles := horizonCycles
	if series.Recurrency == model.RecurrencyNone {
		cycles = 1
	}

	var drafts []*model.Event
	for cycle := 0; cycle < cycles; cycle++ {
		var inc time.Duration
		if series.Recurrency != model.RecurrencyNone {
			inc, err = Increment(series.Recurrency, cycle)
			if err != nil {
				return nil, err
			}
		}

		for _, slot := range series.Schedule {
			start := slot.Start.Add(inc)
			end := slot.End.Add(inc)

			// Only an explicit end date cuts the loop short; open-ended
			// series run to the horizon cap, which for biweekly and monthly
			// cadences reaches past the one-year mark. Long-standing
			// client-visible behavior. Later slots of this cycle could in
			// principle still fit (the schedule is not required to be
			// weekday-sorted), hence the inner break only.
			if series.End.Kind == model.EndOnDate && start.After(seriesEnd) {
				break
			}

			seriesID := series.ID
			drafts = append(drafts, &model.Event{
				SeriesID: &seriesID,
				EventCreate: model.EventCreate{
					OwnerType:   series.OwnerType,
					OwnerID:     series.OwnerID,
					OrderID:     series.OrderID,
					Title:       series.Title,
					Description: series.Description,
					Location:    series.Location,
					TextColor:   series.TextColor,
					AllDay:      series.AllDay,
					Start:       start,
					End:         end,
				},
			})
		}
	}

	return drafts, nil
}
