package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// wireLayouts lists the timestamp forms the Pulss API emits. Python datetimes
// arrive without a zone and task due dates arrive as plain dates.
var wireLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// Time is a timestamp that tolerates the upstream's zone-less and date-only
// encodings. Values without a zone are read as UTC.
type Time struct {
	time.Time
}

// At wraps t.
func At(t time.Time) Time { return Time{Time: t} }

// Now returns the current time in UTC.
func Now() Time { return Time{Time: time.Now().UTC()} }

// Ptr returns a pointer to a Time wrapping t.
func Ptr(t time.Time) *Time {
	v := At(t)
	return &v
}

// ParseTime parses any supported wire layout.
func ParseTime(s string) (Time, error) {
	for _, layout := range wireLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Time{Time: t}, nil
		}
	}
	return Time{}, fmt.Errorf("unsupported timestamp %q", s)
}

// MarshalJSON encodes as RFC3339 with nanoseconds.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts null, empty string, or any supported layout.
func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if s == "" {
		return nil
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
