package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/services/savedservice"
)

func (s *Server) handleListSearches(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r)

	searches, err := s.savedService.ListSearches(r.Context(), id.UserID)
	if err != nil {
		handleError(w, fmt.Errorf("list searches error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, searches)
}

func (s *Server) handleSaveSearch(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r)

	var search models.SavedSearch

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&search); err != nil {
		handleError(w, fmt.Errorf("decode error: %w", err), http.StatusBadRequest)

		return
	}

	search.UserID = id.UserID

	search, err := s.savedService.SaveSearch(r.Context(), search)
	if err != nil {
		if errors.Is(err, savedservice.ErrQueryRequired) {
			handleError(w, err, http.StatusBadRequest)

			return
		}

		handleError(w, fmt.Errorf("save search error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusCreated, search)
}

func (s *Server) handleDeleteSearch(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r)

	searchID, err := pathID(r)
	if err != nil {
		handleError(w, err, http.StatusBadRequest)

		return
	}

	if err := s.savedService.DeleteSearch(r.Context(), id.UserID, searchID); err != nil {
		if errors.Is(err, savedservice.ErrNotFound) {
			handleError(w, err, http.StatusNotFound)

			return
		}

		handleError(w, fmt.Errorf("delete search error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

func (s *Server) handleListSavedVehicles(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r)

	vehicles, err := s.savedService.ListVehicles(r.Context(), id.UserID)
	if err != nil {
		handleError(w, fmt.Errorf("list vehicles error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, vehicles)
}

func (s *Server) handleSaveVehicle(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r)

	var vehicle models.SavedVehicle

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&vehicle); err != nil {
		handleError(w, fmt.Errorf("decode error: %w", err), http.StatusBadRequest)

		return
	}

	vehicle.UserID = id.UserID

	vehicle, err := s.savedService.SaveVehicle(r.Context(), vehicle)
	if err != nil {
		switch {
		case errors.Is(err, savedservice.ErrKentekenRequired):
			handleError(w, err, http.StatusBadRequest)
		case errors.Is(err, savedservice.ErrAlreadySaved):
			handleError(w, err, http.StatusConflict)
		default:
			handleError(w, fmt.Errorf("save vehicle error: %w", err), http.StatusInternalServerError)
		}

		return
	}

	respondJSON(w, http.StatusCreated, vehicle)
}

func (s *Server) handleDeleteSavedVehicle(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r)

	vehicleID, err := pathID(r)
	if err != nil {
		handleError(w, err, http.StatusBadRequest)

		return
	}

	if err := s.savedService.DeleteVehicle(r.Context(), id.UserID, vehicleID); err != nil {
		if errors.Is(err, savedservice.ErrNotFound) {
			handleError(w, err, http.StatusNotFound)

			return
		}

		handleError(w, fmt.Errorf("delete vehicle error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
