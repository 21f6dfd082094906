package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Vlok123/carintel/internal/carintel/services/sketchservice"
	"github.com/go-chi/chi/v5"
)

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}

	return id, nil
}

func (s *Server) handleListSketches(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r)

	sketches, err := s.sketchService.ListSketches(r.Context(), id.UserID)
	if err != nil {
		handleError(w, fmt.Errorf("list sketches error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, sketches)
}

func (s *Server) handleGetSketch(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r)

	sketchID, err := pathID(r)
	if err != nil {
		handleError(w, err, http.StatusBadRequest)

		return
	}

	sketch, err := s.sketchService.GetSketch(r.Context(), id.UserID, sketchID)
	if err != nil {
		if errors.Is(err, sketchservice.ErrNotFound) {
			handleError(w, err, http.StatusNotFound)

			return
		}

		handleError(w, fmt.Errorf("get sketch error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, sketch)
}

func (s *Server) handleSaveSketch(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r)

	var req sketchservice.SaveSketchRequest

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		handleError(w, fmt.Errorf("decode error: %w", err), http.StatusBadRequest)

		return
	}

	req.UserID = id.UserID

	sketch, err := s.sketchService.SaveSketch(r.Context(), req)
	if err != nil {
		if errors.Is(err, sketchservice.ErrTitleRequired) {
			handleError(w, err, http.StatusBadRequest)

			return
		}

		handleError(w, fmt.Errorf("save sketch error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusCreated, sketch)
}

func (s *Server) handleUpdateSketch(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r)

	sketchID, err := pathID(r)
	if err != nil {
		handleError(w, err, http.StatusBadRequest)

		return
	}

	var req sketchservice.SaveSketchRequest

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		handleError(w, fmt.Errorf("decode error: %w", err), http.StatusBadRequest)

		return
	}

	req.ID = sketchID
	req.UserID = id.UserID

	updatedAt, err := s.sketchService.UpdateSketch(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, sketchservice.ErrTitleRequired):
			handleError(w, err, http.StatusBadRequest)
		case errors.Is(err, sketchservice.ErrNotFound):
			handleError(w, err, http.StatusNotFound)
		default:
			handleError(w, fmt.Errorf("update sketch error: %w", err), http.StatusInternalServerError)
		}

		return
	}

	respondJSON(w, http.StatusOK, UpdatedResponse{UpdatedAt: updatedAt})
}

func (s *Server) handleDeleteSketch(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r)

	sketchID, err := pathID(r)
	if err != nil {
		handleError(w, err, http.StatusBadRequest)

		return
	}

	if err := s.sketchService.DeleteSketch(r.Context(), id.UserID, sketchID); err != nil {
		if errors.Is(err, sketchservice.ErrNotFound) {
			handleError(w, err, http.StatusNotFound)

			return
		}

		handleError(w, fmt.Errorf("delete sketch error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
