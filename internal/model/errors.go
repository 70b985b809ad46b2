package model

import (
	"errors"
	"fmt"
)

var ErrNoRecord = errors.New("no record")
var ErrAlreadyExists = errors.New("entity already exists")

// Expansion aborts on either of these: the reference is structurally broken,
// not transient, so callers must not retry.
var ErrOrderNotFound = errors.New("order not found")
var ErrCaregiverNotFound = errors.New("caregiver not found")

// ErrUnsupportedEndCondition is returned for EndAfterCount, which is present
// in stored series but has no defined expansion semantics.
var ErrUnsupportedEndCondition = errors.New("unsupported end condition")

type InvalidRecurrencyError struct {
	Recurrency Recurrency
}

func (e *InvalidRecurrencyError) Error() string {
	return fmt.Sprintf("invalid recurrency: %d", e.Recurrency)
}

type InvalidEventDraftError struct {
	Index  int
	Reason string
}

func (e *InvalidEventDraftError) Error() string {
	return fmt.Sprintf("invalid event draft at %d: %s", e.Index, e.Reason)
}
