package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Vlok123/carintel/internal/carintel/services/vehicleservice"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleVehicleLookup(w http.ResponseWriter, r *http.Request) {
	kenteken := chi.URLParam(r, "kenteken")

	vehicle, err := s.vehicleService.Lookup(r.Context(), kenteken)
	if err != nil {
		switch {
		case errors.Is(err, vehicleservice.ErrKentekenRequired):
			handleError(w, err, http.StatusBadRequest)
		case errors.Is(err, vehicleservice.ErrNotFound):
			handleError(w, err, http.StatusNotFound)
		default:
			handleError(w, fmt.Errorf("vehicle lookup error: %w", err), http.StatusInternalServerError)
		}

		return
	}

	respondJSON(w, http.StatusOK, vehicle)
}
