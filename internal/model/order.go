package model

import "time"

type OrderStatus int

const (
	OrderStatusPending OrderStatus = iota
	OrderStatusConfirmed
	OrderStatusCancelled
)

type OrderCreate struct {
	HealthUnitID int64
	CustomerName string
	CaregiverID  *int64
	Services     []string
	Status       OrderStatus
	CreatedAt    time.Time
}

type Order struct {
	ID int64
	OrderCreate
}

type CaregiverCreate struct {
	Name           string
	Email          string
	PhoneNumber    string
	ProfilePicture string
}

type Caregiver struct {
	ID int64
	CaregiverCreate
}
