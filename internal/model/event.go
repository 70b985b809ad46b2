package model

import "time"

// DefaultTextColor is substituted for any event color that does not parse as
// a hex color.
const DefaultTextColor = "#1890FF"

type EventCreate struct {
	OwnerType   OwnerType
	OwnerID     int64
	OrderID     *int64
	Title       string
	Description string
	Location    string
	TextColor   string
	AllDay      bool
	Start       time.Time
	End         time.Time
}

// Event is one concrete calendar occurrence. SeriesID is nil for ad-hoc
// events, which live independently of any series regeneration.
type Event struct {
	ID        int64
	SeriesID  *int64
	Order     *OrderSummary
	Caregiver *CaregiverSummary
	EventCreate
}

// OrderSummary and CaregiverSummary are denormalized onto every materialized
// event so the calendar renders without joins.
type OrderSummary struct {
	ID           int64
	CustomerName string
}

type CaregiverSummary struct {
	ID             int64
	Name           string
	ProfilePicture string
}

// EventsFilter selects events whose span overlaps [From, To) for one owner.
type EventsFilter struct {
	OwnerType OwnerType
	OwnerID   int64
	From      time.Time
	To        time.Time
}
