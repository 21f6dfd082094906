package server

import (
	"encoding/json"
	"errors"
)

var (
	errMissingToken     = errors.New("authorization token required")
	errInvalidToken     = errors.New("invalid or expired token")
	errAdminRequired    = errors.New("admin role required")
	errBadID            = errors.New("invalid id")
	errMethodNotAllowed = errors.New("method not allowed")
	errRouteNotFound    = errors.New("route not found")
)

type Error struct {
	Err string `json:"error"`
}

func (se Error) ToJSON() []byte {
	b, err := json.Marshal(se)
	if err != nil {
		se.Err = err.Error()

		b, err := json.Marshal(se)
		if err != nil {
			return []byte(`{
				"error": "marshal error"
			  }`)
		}

		return b
	}

	return b
}
