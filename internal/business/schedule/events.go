package schedule

import (
	"context"
	"fmt"

	"github.com/andreferraz/homecare-backend/internal/model"
)

// CreateEvent stores a single ad-hoc occurrence. No series backs it, so
// regeneration never touches it.
func (s *Service) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error) {
	event := &model.Event{EventCreate: *info}
	event.TextColor = validatedColor(event.TextColor)

	if event.Title == "" {
		return nil, &model.InvalidEventDraftError{Index: 0, Reason: "title is required"}
	}
	if !event.Start.Before(event.End) {
		return nil, &model.InvalidEventDraftError{Index: 0, Reason: "start must precede end"}
	}

	id, err := s.events.CreateEvent(ctx, s.db, event)
	if err != nil {
		return nil, fmt.Errorf("events.CreateEvent: %w", err)
	}

	event.ID = id
	return event, nil
}

func (s *Service) GetEvents(ctx context.Context, filter model.EventsFilter) ([]*model.Event, error) {
	events, err := s.events.GetEvents(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("events.GetEvents: %w", err)
	}

	return events, nil
}

func (s *Service) GetEventByID(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.events.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("events.GetEventByID: %w", err)
	}

	return event, nil
}

func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.events.DeleteEvent(ctx, s.db, id); err != nil {
		return fmt.Errorf("events.DeleteEvent: %w", err)
	}

	return nil
}
