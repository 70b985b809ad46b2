package model

import "fmt"

// OwnerType discriminates the polymorphic owner of a series or event.
type OwnerType string

const (
	OwnerHealthUnit   OwnerType = "health_unit"
	OwnerCollaborator OwnerType = "collaborator"
)

func ParseOwnerType(s string) (OwnerType, error) {
	switch OwnerType(s) {
	case OwnerHealthUnit, OwnerCollaborator:
		return OwnerType(s), nil
	}
	return "", fmt.Errorf("unknown owner type: %q", s)
}

type HealthUnit struct {
	ID   int64
	Name string
}

type Collaborator struct {
	ID       int64
	FullName string
	Email    string
}
