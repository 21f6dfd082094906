package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Vehicle is a registration-data record as returned to callers. Data is
// the raw RDW payload, passed through untouched.
type Vehicle struct {
	Kenteken  string          `json:"kenteken"`
	Data      json.RawMessage `json:"data"`
	FetchedAt time.Time       `json:"fetched_at"` //nolint:tagliatelle
}

// NormalizeKenteken uppercases a registration code and strips dashes
// and spaces, so "ab-12-cd" and "AB 12 CD" address the same vehicle.
func NormalizeKenteken(kenteken string) string {
	k := strings.ToUpper(kenteken)
	k = strings.ReplaceAll(k, "-", "")
	k = strings.ReplaceAll(k, " ", "")

	return k
}
