package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/andreferraz/homecare-backend/internal/model"
	"github.com/andreferraz/homecare-backend/internal/notifications"
	"github.com/andreferraz/homecare-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type seriesRequest struct {
	OwnerType   string         `json:"owner_type"`
	OwnerID     int64          `json:"owner_id"`
	OrderID     *int64         `json:"order_id"`
	CaregiverID *int64         `json:"caregiver_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	TextColor   string         `json:"text_color"`
	AllDay      bool           `json:"all_day"`
	StartDate   dateTime       `json:"start_date"`
	Recurrency  int            `json:"recurrency"`
	Schedule    []timeSlotResp `json:"schedule"`
	EndDate     *dateTime      `json:"end_date"`
	EndCount    *int           `json:"end_count"`
}

func (req *seriesRequest) validate() *validator.Validator {
	v := validator.New()

	_, err := model.ParseOwnerType(req.OwnerType)
	v.Check(err == nil, "owner_type", "unknown owner type")
	v.Check(len(req.Title) != 0, "title", "title must be provided")
	v.Check(!time.Time(req.StartDate).IsZero(), "start_date", "start_date must be provided")
	v.Check(model.Recurrency(req.Recurrency).Valid(), "recurrency", "unknown recurrency")
	v.Check(len(req.Schedule) != 0, "schedule", "schedule must not be empty")

	return v
}

func (req *seriesRequest) toCreate() *model.SeriesCreate {
	ownerType, _ := model.ParseOwnerType(req.OwnerType)

	slots, _ := mapSlice(req.Schedule, func(s timeSlotResp) (model.TimeSlot, error) {
		return model.TimeSlot{Start: time.Time(s.Start), End: time.Time(s.End)}, nil
	})

	return &model.SeriesCreate{
		OwnerType:   ownerType,
		OwnerID:     req.OwnerID,
		OrderID:     req.OrderID,
		CaregiverID: req.CaregiverID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		TextColor:   req.TextColor,
		AllDay:      req.AllDay,
		StartDate:   time.Time(req.StartDate),
		Recurrency:  model.Recurrency(req.Recurrency),
		Schedule:    slots,
		End:         endConditionFromRequest(req.EndDate, req.EndCount),
	}
}

func (a *Api) createSeriesHandler(w http.ResponseWriter, r *http.Request) {
	req := &seriesRequest{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if v := req.validate(); !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	series, events, err := a.schedules.CreateSeries(r.Context(), req.toCreate())
	if err != nil {
		a.respondExpansionError(w, r, err)
		return
	}

	a.enqueueConfirmation(r, series, events)

	resp, _ := mapToSeriesResp(series)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getSeriesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "seriesID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	series, err := a.schedules.GetSeriesByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("get series: %w", err))
		}
		return
	}

	resp, _ := mapToSeriesResp(series)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateSeriesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "seriesID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	req := &seriesRequest{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if v := req.validate(); !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	series := &model.Series{ID: id, SeriesCreate: *req.toCreate()}

	events, err := a.schedules.UpdateSeries(r.Context(), series)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.respondExpansionError(w, r, err)
		}
		return
	}

	a.enqueueConfirmation(r, series, events)

	resp, _ := mapToSeriesResp(series)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteSeriesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "seriesID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	if err := a.schedules.DeleteSeries(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("delete series: %w", err))
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

// respondExpansionError maps the expansion failure modes onto client errors;
// anything unrecognized is a 500.
func (a *Api) respondExpansionError(w http.ResponseWriter, r *http.Request, err error) {
	invalidRecurrency := &model.InvalidRecurrencyError{}
	invalidDraft := &model.InvalidEventDraftError{}

	switch {
	case errors.As(err, &invalidRecurrency):
		a.badRequestResponse(w, r, invalidRecurrency)
	case errors.Is(err, model.ErrUnsupportedEndCondition):
		a.badRequestResponse(w, r, model.ErrUnsupportedEndCondition)
	case errors.As(err, &invalidDraft):
		a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, invalidDraft.Error())
	case errors.Is(err, model.ErrOrderNotFound):
		a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, model.ErrOrderNotFound.Error())
	case errors.Is(err, model.ErrCaregiverNotFound):
		a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, model.ErrCaregiverNotFound.Error())
	case errors.Is(err, model.ErrNoRecord):
		a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, "referenced resource could not be found")
	default:
		a.serverErrorResponse(w, r, err)
	}
}

// enqueueConfirmation emails the attached caregiver the rendered weekly
// schedule. Failures to resolve the address are logged, never surfaced.
func (a *Api) enqueueConfirmation(r *http.Request, series *model.Series, events []*model.Event) {
	if len(events) == 0 || events[0].Order == nil || events[0].Caregiver == nil {
		return
	}

	caregiver, err := a.caregivers.GetCaregiverByID(r.Context(), a.db, events[0].Caregiver.ID)
	if err != nil {
		a.logger.Warnw("skipping confirmation mail", "series_id", series.ID, "error", err)
		return
	}

	a.sender.Enqueue(&notifications.OrderConfirmation{
		To:           caregiver.Email,
		CustomerName: events[0].Order.CustomerName,
		OrderID:      events[0].Order.ID,
		Title:        series.Title,
		Schedule:     series.Schedule,
	})
}
