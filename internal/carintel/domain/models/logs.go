package models

import "time"

// AnonymousSearch is a lookup log row. Nothing reads these back except
// the maintenance cleanup, which deletes them by age.
type AnonymousSearch struct {
	ID        int64     `json:"id"`
	Kenteken  string    `json:"kenteken"`
	CreatedAt time.Time `json:"created_at"` //nolint:tagliatelle
}

type ActivityLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"` //nolint:tagliatelle
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"` //nolint:tagliatelle
}
