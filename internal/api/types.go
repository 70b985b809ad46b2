package api

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateTimeFormat = time.RFC3339

// dateTime round-trips timestamps through JSON in RFC 3339 with the offset
// the client sent, so slot weekdays stay in the series' local zone.
type dateTime time.Time

func (d dateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(dateTimeFormat))
}

func (d *dateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*d = dateTime(time.Time{})
		return nil
	}

	t, err := time.Parse(dateTimeFormat, s)
	if err != nil {
		return fmt.Errorf("invalid time format: %w", err)
	}

	*d = dateTime(t)
	return nil
}

type attachment struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
