package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
)

type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type VerifyResponse struct {
	User *models.User `json:"user"`
}

type UpdatedResponse struct {
	UpdatedAt time.Time `json:"updated_at"` //nolint:tagliatelle
}

type StatusResponse struct {
	Status string `json:"status"`
}

func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	bts, err := json.Marshal(v)
	if err != nil {
		handleError(w, err, http.StatusInternalServerError)

		return
	}

	w.WriteHeader(code)
	w.Write(bts) //nolint:errcheck
}

func handleError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	e := Error{err.Error()}

	w.Write(e.ToJSON()) //nolint:errcheck
}
