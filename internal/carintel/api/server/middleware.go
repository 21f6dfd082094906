package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/services/authservice"
	"github.com/Vlok123/carintel/internal/pkg/config"
	"github.com/Vlok123/carintel/pkg/logger"
)

type ctxKey int

const identityKey ctxKey = iota

func identityFrom(r *http.Request) (authservice.Identity, bool) {
	id, ok := r.Context().Value(identityKey).(authservice.Identity)

	return id, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")

	token := strings.TrimPrefix(h, "Bearer ")
	if token == h {
		return ""
	}

	return token
}

// requireAuth resolves the bearer token to an identity and stores it in
// the request context. Missing or invalid tokens end the request with 401.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			handleError(w, errMissingToken, http.StatusUnauthorized)

			return
		}

		id, err := s.authService.Authenticate(token)
		if err != nil {
			handleError(w, errInvalidToken, http.StatusUnauthorized)

			return
		}

		ctx := context.WithValue(r.Context(), identityKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFrom(r)
		if !ok || id.Role != models.RoleAdmin {
			handleError(w, errAdminRequired, http.StatusForbidden)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// corsMiddleware echoes the request origin when it is on the allow-list
// and falls back to the first configured origin otherwise. OPTIONS
// requests short-circuit with 200.
func corsMiddleware(cfg config.CORS) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(cfg.AllowedOrigins) != 0 {
				allowed := cfg.AllowedOrigins[0]

				origin := r.Header.Get("Origin")
				for _, o := range cfg.AllowedOrigins {
					if o == origin {
						allowed = origin

						break
					}
				}

				w.Header().Set("Access-Control-Allow-Origin", allowed)
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func loggingMiddleware(logg logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rr := httptest.NewRecorder()

			defer func() {
				latency := time.Since(start).String()

				logg.Infof("METHOD %s URI %s %s	STATUS %d Latency %s Client IP %s User Agent %s",
					r.Method,
					r.Proto,
					r.URL.RequestURI(),
					rr.Code,
					latency,
					r.RemoteAddr,
					r.UserAgent(),
				)
			}()

			next.ServeHTTP(rr, r)

			for k, v := range rr.Header() {
				w.Header()[k] = v
			}

			w.WriteHeader(rr.Code)

			if rr.Code >= 400 && rr.Body.Len() != 0 {
				logg.Errorf("error: %s", rr.Body)
			}

			if _, err := rr.Body.WriteTo(w); err != nil {
				logg.Errorf("middleware write error: %s", err.Error())
			}
		})
	}
}
