package server

import (
	"fmt"
	"net/http"
)

func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.maintenanceService.Stats(r.Context())
	if err != nil {
		handleError(w, fmt.Errorf("stats error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleEnsureAdmin(w http.ResponseWriter, r *http.Request) {
	if err := s.maintenanceService.EnsureAdmin(r.Context()); err != nil {
		handleError(w, fmt.Errorf("ensure admin error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	res, err := s.maintenanceService.Seed(r.Context())
	if err != nil {
		handleError(w, fmt.Errorf("seed error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	res, err := s.maintenanceService.Cleanup(r.Context())
	if err != nil {
		handleError(w, fmt.Errorf("cleanup error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, res)
}
