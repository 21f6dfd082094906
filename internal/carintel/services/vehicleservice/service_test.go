package vehicleservice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/repository/vehiclecache"
	"github.com/Vlok123/carintel/internal/carintel/services/vehicleservice"
	"github.com/Vlok123/carintel/internal/pkg/config"
	"github.com/Vlok123/carintel/pkg/logger"

	"github.com/stretchr/testify/require"
)

type fakeRegistry struct {
	data    map[string]json.RawMessage
	fetches int
}

func (f *fakeRegistry) FetchVehicle(_ context.Context, kenteken string) (json.RawMessage, error) {
	f.fetches++

	data, ok := f.data[kenteken]
	if !ok {
		return nil, vehicleservice.ErrNotFound
	}

	return data, nil
}

type fakeCache struct {
	data map[string]json.RawMessage
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]json.RawMessage)}
}

func (f *fakeCache) GetVehicle(_ context.Context, kenteken string) (json.RawMessage, error) {
	data, ok := f.data[kenteken]
	if !ok {
		return nil, vehiclecache.ErrNotFound
	}

	return data, nil
}

func (f *fakeCache) SetVehicle(_ context.Context, kenteken string, data json.RawMessage) error {
	f.data[kenteken] = data

	return nil
}

type fakeRecorder struct {
	recorded []string
}

func (f *fakeRecorder) RecordSearch(_ context.Context, kenteken string) error {
	f.recorded = append(f.recorded, kenteken)

	return nil
}

func TestLookupNormalizesAndCaches(t *testing.T) {
	ctx := context.Background()

	registry := &fakeRegistry{data: map[string]json.RawMessage{
		"AB12CD": json.RawMessage(`{"merk":"VOLVO"}`),
	}} //nolint:exhaustruct
	cache := newFakeCache()
	recorder := &fakeRecorder{} //nolint:exhaustruct

	vs := vehicleservice.New(registry, cache, recorder, logger.NewNop())

	v, err := vs.Lookup(ctx, "ab-12-cd")
	require.NoError(t, err)
	require.Equal(t, "AB12CD", v.Kenteken)
	require.JSONEq(t, `{"merk":"VOLVO"}`, string(v.Data))
	require.Equal(t, 1, registry.fetches)

	// Second lookup in another format is served from the cache.
	v, err = vs.Lookup(ctx, "AB 12 CD")
	require.NoError(t, err)
	require.Equal(t, "AB12CD", v.Kenteken)
	require.Equal(t, 1, registry.fetches)

	// Both lookups were logged anonymously.
	require.Equal(t, []string{"AB12CD", "AB12CD"}, recorder.recorded)
}

func TestLookupUnknownPlate(t *testing.T) {
	ctx := context.Background()

	registry := &fakeRegistry{data: map[string]json.RawMessage{}} //nolint:exhaustruct
	vs := vehicleservice.New(registry, newFakeCache(), &fakeRecorder{}, logger.NewNop()) //nolint:exhaustruct

	_, err := vs.Lookup(ctx, "ZZ99ZZ")
	require.ErrorIs(t, err, vehicleservice.ErrNotFound)
}

func TestLookupEmptyKenteken(t *testing.T) {
	ctx := context.Background()

	registry := &fakeRegistry{data: map[string]json.RawMessage{}} //nolint:exhaustruct
	vs := vehicleservice.New(registry, newFakeCache(), &fakeRecorder{}, logger.NewNop()) //nolint:exhaustruct

	_, err := vs.Lookup(ctx, "   ")
	require.ErrorIs(t, err, vehicleservice.ErrKentekenRequired)
	require.Zero(t, registry.fetches)
}

func TestRDWClientFetch(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "AB12CD", r.URL.Query().Get("kenteken"))
		w.Write([]byte(`[{"kenteken":"AB12CD","merk":"VOLVO"}]`)) //nolint:errcheck
	}))
	defer srv.Close()

	rc := vehicleservice.NewRDWClient(config.RDW{Endpoint: srv.URL, Timeout: time.Second})

	data, err := rc.FetchVehicle(ctx, "AB12CD")
	require.NoError(t, err)
	require.JSONEq(t, `{"kenteken":"AB12CD","merk":"VOLVO"}`, string(data))
}

func TestRDWClientEmptyResult(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`)) //nolint:errcheck
	}))
	defer srv.Close()

	rc := vehicleservice.NewRDWClient(config.RDW{Endpoint: srv.URL, Timeout: time.Second})

	_, err := rc.FetchVehicle(ctx, "ZZ99ZZ")
	require.ErrorIs(t, err, vehicleservice.ErrNotFound)
}

func TestRDWClientUpstreamError(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	rc := vehicleservice.NewRDWClient(config.RDW{Endpoint: srv.URL, Timeout: time.Second})

	_, err := rc.FetchVehicle(ctx, "AB12CD")
	require.Error(t, err)
	require.NotErrorIs(t, err, vehicleservice.ErrNotFound)
}
