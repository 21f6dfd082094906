package store_test

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/client/store"

	"github.com/stretchr/testify/require"
)

func TestNotifyAutoExpires(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "state.json"))

	id := s.Notify(store.SeveritySuccess, "Opgeslagen", "sketch saved", 100*time.Millisecond)
	require.NotEmpty(t, id)

	ns := s.Notifications()
	require.Len(t, ns, 1)
	require.Equal(t, id, ns[0].ID)
	require.Equal(t, store.SeveritySuccess, ns[0].Severity)
	require.Equal(t, "Opgeslagen", ns[0].Title)
	require.Equal(t, "sketch saved", ns[0].Message)

	time.Sleep(150 * time.Millisecond)

	require.Empty(t, s.Notifications())
}

func TestNotificationCarriesTitleInJSON(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "state.json"))

	s.Notify(store.SeverityError, "Fout", "lookup failed", time.Minute)

	bts, err := json.Marshal(s.Notifications()[0])
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(bts, &decoded))
	require.Equal(t, "Fout", decoded["title"])
	require.Equal(t, "lookup failed", decoded["message"])
}

func TestNotifyUniqueIDs(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "state.json"))

	a := s.Notify(store.SeverityInfo, "Een", "one", time.Minute)
	b := s.Notify(store.SeverityInfo, "Twee", "two", time.Minute)

	require.NotEqual(t, a, b)
	require.Len(t, s.Notifications(), 2)
}

func TestDismissIdempotent(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "state.json"))

	id := s.Notify(store.SeverityError, "Fout", "lookup failed", time.Minute)

	s.Dismiss(id)
	require.Empty(t, s.Notifications())

	// Second dismissal and unknown ids are no-ops.
	s.Dismiss(id)
	s.Dismiss("nope")
	require.Empty(t, s.Notifications())
}

func TestDismissKeepsOthers(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "state.json"))

	a := s.Notify(store.SeverityWarning, "Let op", "one", time.Minute)
	b := s.Notify(store.SeverityWarning, "Let op", "two", time.Minute)

	s.Dismiss(a)

	ns := s.Notifications()
	require.Len(t, ns, 1)
	require.Equal(t, b, ns[0].ID)
}
