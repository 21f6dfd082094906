package models

import (
	"encoding/json"
	"time"
)

type SavedSearch struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"` //nolint:tagliatelle
	Name      string          `json:"name"`
	Query     string          `json:"query"`
	Filters   json.RawMessage `json:"filters"`
	CreatedAt time.Time       `json:"created_at"` //nolint:tagliatelle
}

type SavedVehicle struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"` //nolint:tagliatelle
	Kenteken  string          `json:"kenteken"`
	Data      json.RawMessage `json:"data"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"` //nolint:tagliatelle
}
