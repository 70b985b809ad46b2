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

type orderResp struct {
	ID           int64    `json:"id"`
	HealthUnitID int64    `json:"health_unit_id"`
	CustomerName string   `json:"customer_name"`
	CaregiverID  *int64   `json:"caregiver_id,omitempty"`
	Services     []string `json:"services,omitempty"`
	Status       int      `json:"status"`
	CreatedAt    dateTime `json:"created_at"`
}

type caregiverResp struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

func (a *Api) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		HealthUnitID int64    `json:"health_unit_id"`
		CustomerName string   `json:"customer_name"`
		CaregiverID  *int64   `json:"caregiver_id"`
		Services     []string `json:"services"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(req.HealthUnitID != 0, "health_unit_id", "health_unit_id must be provided")
	v.Check(len(req.CustomerName) != 0, "customer_name", "customer_name must be provided")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	order := &model.OrderCreate{
		HealthUnitID: req.HealthUnitID,
		CustomerName: req.CustomerName,
		CaregiverID:  req.CaregiverID,
		Services:     req.Services,
		Status:       model.OrderStatusPending,
		CreatedAt:    time.Now(),
	}

	id, err := a.orders.CreateOrder(r.Context(), a.db, order)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create order: %w", err))
		return
	}

	resp := &orderResp{
		ID:           id,
		HealthUnitID: order.HealthUnitID,
		CustomerName: order.CustomerName,
		CaregiverID:  order.CaregiverID,
		Services:     order.Services,
		Status:       int(order.Status),
		CreatedAt:    dateTime(order.CreatedAt),
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	order, err := a.orders.GetOrderByID(r.Context(), a.db, id)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("get order: %w", err))
		}
		return
	}

	resp := &orderResp{
		ID:           order.ID,
		HealthUnitID: order.HealthUnitID,
		CustomerName: order.CustomerName,
		CaregiverID:  order.CaregiverID,
		Services:     order.Services,
		Status:       int(order.Status),
		CreatedAt:    dateTime(order.CreatedAt),
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getOrderSeriesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	series, err := a.schedules.GetSeriesByOrder(r.Context(), id)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get order series: %w", err))
		return
	}

	resp, _ := mapSlice(series, mapToSeriesResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createCaregiverHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Name           string `json:"name"`
		Email          string `json:"email"`
		PhoneNumber    string `json:"phone_number"`
		ProfilePicture string `json:"profile_picture"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(len(req.Name) != 0, "name", "name must be provided")
	v.Check(len(req.Email) != 0, "email", "email must be provided")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	caregiver := &model.CaregiverCreate{
		Name:           req.Name,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		ProfilePicture: req.ProfilePicture,
	}

	id, err := a.caregivers.CreateCaregiver(r.Context(), a.db, caregiver)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create caregiver: %w", err))
		return
	}

	resp := &caregiverResp{
		ID:             id,
		Name:           caregiver.Name,
		Email:          caregiver.Email,
		PhoneNumber:    caregiver.PhoneNumber,
		ProfilePicture: caregiver.ProfilePicture,
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getCaregiversHandler(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()["ids"]
	ids := make([]int64, len(vals))
	for i, v := range vals {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid caregiver id %v", v))
			return
		}
		ids[i] = id
	}

	caregivers, err := a.caregivers.GetCaregiversByIDs(r.Context(), a.db, ids)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get caregivers: %w", err))
		return
	}

	resp, _ := mapSlice(caregivers, func(c *model.Caregiver) (*caregiverResp, error) {
		return &caregiverResp{
			ID:             c.ID,
			Name:           c.Name,
			Email:          c.Email,
			PhoneNumber:    c.PhoneNumber,
			ProfilePicture: c.ProfilePicture,
		}, nil
	})

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getCaregiverHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "caregiverID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	caregiver, err := a.caregivers.GetCaregiverByID(r.Context(), a.db, id)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("get caregiver: %w", err))
		}
		return
	}

	resp := &caregiverResp{
		ID:             caregiver.ID,
		Name:           caregiver.Name,
		Email:          caregiver.Email,
		PhoneNumber:    caregiver.PhoneNumber,
		ProfilePicture: caregiver.ProfilePicture,
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
