package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Vlok123/carintel/internal/carintel/services/authservice"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req authservice.RegisterRequest

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		handleError(w, fmt.Errorf("decode error: %w", err), http.StatusBadRequest)

		return
	}

	if req.Email == "" || req.Password == "" {
		handleError(w, errors.New("email and password are required"), http.StatusBadRequest)

		return
	}

	user, token, err := s.authService.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			handleError(w, err, http.StatusConflict)

			return
		}

		handleError(w, fmt.Errorf("register error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusCreated, AuthResponse{User: user, Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		handleError(w, fmt.Errorf("decode error: %w", err), http.StatusBadRequest)

		return
	}

	user, token, err := s.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			handleError(w, err, http.StatusUnauthorized)

			return
		}

		handleError(w, fmt.Errorf("login error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
}

// handleVerify answers 200 for every token; an unusable one simply
// resolves to a null user.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		respondJSON(w, http.StatusOK, VerifyResponse{User: nil})

		return
	}

	user, err := s.authService.Verify(r.Context(), token)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidToken) {
			respondJSON(w, http.StatusOK, VerifyResponse{User: nil})

			return
		}

		handleError(w, fmt.Errorf("verify error: %w", err), http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, VerifyResponse{User: &user})
}
