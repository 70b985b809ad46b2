package owners

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/model"
)

type healthUnitDTO struct {
	ID   int64
	Name string
}

type collaboratorDTO struct {
	ID       int64
	FullName string
	Email    string
}

func (*Repository) GetHealthUnitByID(ctx context.Context, q database.Queryable, id int64) (*model.HealthUnit, error) {
	qb := database.PSQL.
		Select("id", "name").
		From(database.HealthUnitsTable).
		Where(sq.Eq{"id": id})

	var dtos []*healthUnitDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return &model.HealthUnit{ID: dtos[0].ID, Name: dtos[0].Name}, nil
}

func (*Repository) GetCollaboratorByID(ctx context.Context, q database.Queryable, id int64) (*model.Collaborator, error) {
	qb := database.PSQL.
		Select("id", "full_name", "email").
		From(database.CollaboratorsTable).
		Where(sq.Eq{"id": id})

	var dtos []*collaboratorDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return &model.Collaborator{ID: dtos[0].ID, FullName: dtos[0].FullName, Email: dtos[0].Email}, nil
}
