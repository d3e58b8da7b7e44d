package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Форматы времени, которые встречаются в ответах backend
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Timestamp время от сервера. Нераспознанное значение не ломает разбор
// всего ответа и становится нулевым временем.
type Timestamp struct {
	time.Time
}

// NewTimestamp оборачивает t
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// UnmarshalJSON принимает RFC3339, дату без времени, пустую строку и null
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return nil
}

// MarshalJSON пишет RFC3339, нулевое время как null
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
