package models

import (
	"encoding/json"
	"time"
)

const (
	EventFirstNameVisible = "first_name_visible"
	EventFirstNameHidden  = "first_name_hidden"
)

type Event struct {
	ID        int64           `json:"id"`
	EventType string          `json:"event_type"`
	EventTime time.Time       `json:"event_time"`
	Payload   json.RawMessage `json:"payload"`
}
