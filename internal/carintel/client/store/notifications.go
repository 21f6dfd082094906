package store

import (
	"time"

	"github.com/google/uuid"
)

const DefaultNotificationDuration = 5 * time.Second

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

type Notification struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
}

// Notify adds a notification that removes itself after duration.
// A zero duration means the default of five seconds.
func (s *Store) Notify(severity Severity, title, message string, duration time.Duration) string {
	if duration == 0 {
		duration = DefaultNotificationDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := Notification{
		ID:       uuid.NewString(),
		Severity: severity,
		Title:    title,
		Message:  message,
	}

	s.notifications = append(s.notifications, n)
	s.timers[n.ID] = time.AfterFunc(duration, func() {
		s.Dismiss(n.ID)
	})

	return n.ID
}

// Dismiss removes the notification with the given id. Dismissing an
// unknown or already removed id does nothing.
func (s *Store) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)

			break
		}
	}
}

func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)

	return out
}
