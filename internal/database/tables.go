package database

import sq "github.com/Masterminds/squirrel"

// PSQL is the shared statement builder with postgres placeholders.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	UsersTable         = "users"
	OrdersTable        = "orders"
	CaregiversTable    = "caregivers"
	HealthUnitsTable   = "health_units"
	CollaboratorsTable = "collaborators"
	SeriesTable        = "series"
	EventsTable        = "events"
)
