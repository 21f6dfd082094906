package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/services/contactservice"
)

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&msg); err != nil {
		handleError(w, fmt.Errorf("decode error: %w", err), http.StatusBadRequest)

		return
	}

	if err := s.contactService.Submit(r.Context(), msg); err != nil {
		switch {
		case errors.Is(err, contactservice.ErrMissingFields),
			errors.Is(err, contactservice.ErrInvalidEmail):
			handleError(w, err, http.StatusBadRequest)
		default:
			// Mail transport details stay server-side.
			handleError(w, errors.New("could not send message"), http.StatusInternalServerError)
		}

		return
	}

	respondJSON(w, http.StatusOK, StatusResponse{Status: "sent"})
}
