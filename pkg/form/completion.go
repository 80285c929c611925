package form

import (
	"encoding/json"
	"time"
)

// TimestampLayout renders completion times as ISO-8601 UTC with millisecond
// precision, e.g. 2024-05-01T10:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Completion is emitted once per form instance when a submission finishes.
type Completion struct {
	Data      Values
	Timestamp time.Time
}

// ISOTimestamp formats the completion time with TimestampLayout.
func (c Completion) ISOTimestamp() string {
	return c.Timestamp.UTC().Format(TimestampLayout)
}

// MarshalJSON encodes the completion as {"data": {...}, "timestamp": "..."}.
func (c Completion) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Data      map[string]string `json:"data"`
		Timestamp string            `json:"timestamp"`
	}{
		Data:      c.Data.Map(),
		Timestamp: c.ISOTimestamp(),
	})
}
