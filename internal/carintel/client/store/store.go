// Package store holds the client application state: a persisted subset
// written to a JSON file between runs, and a transient subset that
// lives only for the process.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
)

const maxRecentSearches = 10

// Session is the authenticated state carried between runs.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// PersistedState is the subset saved to disk.
type PersistedState struct {
	DarkTheme      bool              `json:"dark_theme"`      //nolint:tagliatelle
	Filters        map[string]string `json:"filters"`
	RecentSearches []string          `json:"recent_searches"` //nolint:tagliatelle
	Favorites      map[string]bool   `json:"favorites"`
	ActiveTab      string            `json:"active_tab"`      //nolint:tagliatelle
	Session        *Session          `json:"session,omitempty"`
}

type Store struct {
	mu   sync.Mutex
	path string

	persisted PersistedState

	// Transient: gone on restart.
	results       []models.SketchSummary
	vehicleCache  map[string]models.Vehicle
	notifications []Notification
	timers        map[string]*time.Timer
}

func New(path string) *Store {
	return &Store{ //nolint:exhaustruct
		path: path,
		persisted: PersistedState{ //nolint:exhaustruct
			Filters:   make(map[string]string),
			Favorites: make(map[string]bool),
		},
		vehicleCache: make(map[string]models.Vehicle),
		timers:       make(map[string]*time.Timer),
	}
}

// Load overlays the persisted subset from disk. A missing file is not
// an error: the store simply starts from defaults.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("read state error: %w", err)
	}

	var p PersistedState
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("unmarshal state error: %w", err)
	}

	if p.Filters == nil {
		p.Filters = make(map[string]string)
	}

	if p.Favorites == nil {
		p.Favorites = make(map[string]bool)
	}

	s.persisted = p

	return nil
}

// Save writes the persisted subset; transient state never touches disk.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.persisted, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state error: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write state error: %w", err)
	}

	return nil
}

func (s *Store) SetDarkTheme(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persisted.DarkTheme = on
}

func (s *Store) DarkTheme() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persisted.DarkTheme
}

func (s *Store) SetFilter(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persisted.Filters[key] = value
}

func (s *Store) Filter(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persisted.Filters[key]
}

func (s *Store) SetActiveTab(tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persisted.ActiveTab = tab
}

func (s *Store) ActiveTab() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persisted.ActiveTab
}

// AddRecentSearch puts the kenteken at the front of the recent list.
// A re-added code moves to the front instead of duplicating, and the
// list never grows past ten entries.
func (s *Store) AddRecentSearch(kenteken string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := make([]string, 0, len(s.persisted.RecentSearches)+1)
	recent = append(recent, kenteken)

	for _, r := range s.persisted.RecentSearches {
		if r == kenteken {
			continue
		}

		recent = append(recent, r)
	}

	if len(recent) > maxRecentSearches {
		recent = recent[:maxRecentSearches]
	}

	s.persisted.RecentSearches = recent
}

func (s *Store) RecentSearches() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.persisted.RecentSearches))
	copy(out, s.persisted.RecentSearches)

	return out
}

func (s *Store) AddFavorite(kenteken string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persisted.Favorites[kenteken] = true
}

func (s *Store) RemoveFavorite(kenteken string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.persisted.Favorites, kenteken)
}

func (s *Store) IsFavorite(kenteken string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persisted.Favorites[kenteken]
}

func (s *Store) SetSession(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persisted.Session = &sess
}

func (s *Store) Session() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persisted.Session == nil {
		return Session{}, false //nolint:exhaustruct
	}

	return *s.persisted.Session, true
}

func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persisted.Session = nil
}

func (s *Store) SetResults(results []models.SketchSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = results
}

func (s *Store) Results() []models.SketchSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.results
}

// CacheVehicle keeps a lookup result for the session, keyed by
// normalized registration code.
func (s *Store) CacheVehicle(v models.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vehicleCache[models.NormalizeKenteken(v.Kenteken)] = v
}

func (s *Store) CachedVehicle(kenteken string) (models.Vehicle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicleCache[models.NormalizeKenteken(kenteken)]

	return v, ok
}
