package models

import (
	"encoding/json"
	"time"
)

// Sketch is a saved traffic-situation drawing. The three JSON payloads
// (incident markers, freehand lines, map settings) are opaque to the
// server: whatever structure the client stores comes back unchanged.
type Sketch struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"` //nolint:tagliatelle
	Title       string          `json:"title"`
	Location    string          `json:"location,omitempty"`
	Description string          `json:"description,omitempty"`
	Incidents   json.RawMessage `json:"incidents"`
	Lines       json.RawMessage `json:"lines"`
	Settings    json.RawMessage `json:"settings"`
	IsPublic    bool            `json:"is_public"`  //nolint:tagliatelle
	CreatedAt   time.Time       `json:"created_at"` //nolint:tagliatelle
	UpdatedAt   time.Time       `json:"updated_at"` //nolint:tagliatelle
}

// SketchSummary is the listing shape: no payload columns.
type SketchSummary struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	IsPublic    bool      `json:"is_public"`  //nolint:tagliatelle
	CreatedAt   time.Time `json:"created_at"` //nolint:tagliatelle
	UpdatedAt   time.Time `json:"updated_at"` //nolint:tagliatelle
}

// EmptyObject and EmptyArray are the defaults for absent payloads.
var (
	EmptyObject = json.RawMessage(`{}`)
	EmptyArray  = json.RawMessage(`[]`)
)
