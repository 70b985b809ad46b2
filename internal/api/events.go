package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/andreferraz/homecare-backend/internal/model"
	"github.com/andreferraz/homecare-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		OwnerType   string   `json:"owner_type"`
		OwnerID     int64    `json:"owner_id"`
		OrderID     *int64   `json:"order_id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Location    string   `json:"location"`
		TextColor   string   `json:"text_color"`
		AllDay      bool     `json:"all_day"`
		Start       dateTime `json:"start"`
		End         dateTime `json:"end"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()

	ownerType, err := model.ParseOwnerType(req.OwnerType)
	v.Check(err == nil, "owner_type", "unknown owner type")
	v.Check(len(req.Title) != 0, "title", "title must be provided")
	v.Check(!time.Time(req.Start).IsZero(), "start", "start must be provided")
	v.Check(!time.Time(req.End).IsZero(), "end", "end must be provided")
	v.Check(time.Time(req.Start).Before(time.Time(req.End)), "end", "end must be after start")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	event, err := a.schedules.CreateEvent(r.Context(), &model.EventCreate{
		OwnerType:   ownerType,
		OwnerID:     req.OwnerID,
		OrderID:     req.OrderID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		TextColor:   req.TextColor,
		AllDay:      req.AllDay,
		Start:       time.Time(req.Start),
		End:         time.Time(req.End),
	})
	if err != nil {
		invalidDraft := &model.InvalidEventDraftError{}
		switch {
		case errors.As(err, &invalidDraft):
			a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, invalidDraft.Error())
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("create event: %w", err))
		}
		return
	}

	resp, _ := mapToEventResp(event)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEventsQuery(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	events, err := a.schedules.GetEvents(r.Context(), *filter)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get events: %w", err))
		return
	}

	resp, _ := mapSlice(events, mapToEventResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	event, err := a.schedules.GetEventByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("get event: %w", err))
		}
		return
	}

	resp, _ := mapToEventResp(event)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	if err := a.schedules.DeleteEvent(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("delete event: %w", err))
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func parseEventsQuery(r *http.Request) (*model.EventsFilter, error) {
	var err error

	res := &model.EventsFilter{}

	v := r.URL.Query().Get("owner_type")
	if v == "" {
		return nil, fmt.Errorf("owner_type must be provided")
	}
	res.OwnerType, err = model.ParseOwnerType(v)
	if err != nil {
		return nil, err
	}

	v = r.URL.Query().Get("owner_id")
	if v == "" {
		return nil, fmt.Errorf("owner_id must be provided")
	}
	res.OwnerID, err = strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid owner id %v", v)
	}

	v = r.URL.Query().Get("from")
	if v == "" {
		return nil, fmt.Errorf("from must be provided")
	}
	res.From, err = time.Parse(dateTimeFormat, v)
	if err != nil {
		return nil, fmt.Errorf("invalid time format: %w", err)
	}

	v = r.URL.Query().Get("to")
	if v == "" {
		return nil, fmt.Errorf("to must be provided")
	}
	res.To, err = time.Parse(dateTimeFormat, v)
	if err != nil {
		return nil, fmt.Errorf("invalid time format: %w", err)
	}

	return res, nil
}
