package schedule

import (
	"regexp"

	"github.com/andreferraz/homecare-backend/internal/model"
)

var hexColorRegexp = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)

// validatedColor falls back to the default calendar color instead of
// rejecting the draft: a bad color is cosmetic, not structural.
func validatedColor(color string) string {
	if hexColorRegexp.MatchString(color) {
		return color
	}

	return model.DefaultTextColor
}

// materialize validates every draft and attaches the denormalized order and
// caregiver summaries. A single failing draft fails the batch: a partially
// materialized series would show a truncated, misleading calendar.
func materialize(drafts []*model.Event, octx *expandContext) ([]*model.Event, error) {
	var order *model.OrderSummary
	if octx.order != nil {
		order = &model.OrderSummary{
			ID:           octx.order.ID,
			CustomerName: octx.order.CustomerName,
		}
	}

	var caregiver *model.CaregiverSummary
	if octx.caregiver != nil {
		caregiver = &model.CaregiverSummary{
			ID:             octx.caregiver.ID,
			Name:           octx.caregiver.Name,
			ProfilePicture: octx.caregiver.ProfilePicture,
		}
	}

	for i, d := range drafts {
		if d.Title == "" {
			return nil, &model.InvalidEventDraftError{Index: i, Reason: "title is required"}
		}
		if !d.Start.Before(d.End) {
			return nil, &model.InvalidEventDraftError{Index: i, Reason: "start must precede end"}
		}

		d.TextColor = validatedColor(d.TextColor)
		d.Order = order
		d.Caregiver = caregiver
	}

	return drafts, nil
}
