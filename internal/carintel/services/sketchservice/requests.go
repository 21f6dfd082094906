package sketchservice

import "encoding/json"

type SaveSketchRequest struct {
	ID          int64           `json:"-"`
	UserID      int64           `json:"-"`
	Title       string          `json:"title"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	Incidents   json.RawMessage `json:"incidents"`
	Lines       json.RawMessage `json:"lines"`
	Settings    json.RawMessage `json:"settings"`
	IsPublic    bool            `json:"is_public"` //nolint:tagliatelle
}
