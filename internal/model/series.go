package model

import "time"

// Series is a recurring booking template. Events derived from it are owned by
// the series: regeneration replaces them wholesale, ad-hoc events are never
// touched.
type SeriesCreate struct {
	OwnerType   OwnerType
	OwnerID     int64
	OrderID     *int64
	CaregiverID *int64
	Title       string
	Description string
	Location    string
	TextColor   string
	AllDay      bool
	StartDate   time.Time
	Recurrency  Recurrency
	Schedule    []TimeSlot
	End         EndCondition
}

type Series struct {
	ID int64
	SeriesCreate
}

// TimeSlot is one weekly template slot. The weekday and time of day of
// Start/End repeat on every cycle.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// Recurrency is the repetition cadence code. The values are fixed by the
// mobile clients and stored verbatim.
type Recurrency int

const (
	RecurrencyNone     Recurrency = 0
	RecurrencyWeekly   Recurrency = 1
	RecurrencyBiweekly Recurrency = 2
	RecurrencyMonthly  Recurrency = 4 // 28-day cadence, not calendar months
)

// Valid reports whether r is one of the known cadence codes.
func (r Recurrency) Valid() bool {
	switch r {
	case RecurrencyNone, RecurrencyWeekly, RecurrencyBiweekly, RecurrencyMonthly:
		return true
	}
	return false
}

type EndKind int

const (
	EndNever EndKind = iota
	EndOnDate
	// EndAfterCount exists in stored data but no expansion semantics were
	// ever defined for it; the engine rejects it explicitly.
	EndAfterCount
)

// EndCondition is a tagged variant: Date is meaningful only for EndOnDate,
// Count only for EndAfterCount.
type EndCondition struct {
	Kind  EndKind
	Date  time.Time
	Count int
}
