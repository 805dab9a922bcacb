package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNominatim serves fixed coordinates per place name; unknown names get
// an empty result set, mirroring the real API.
func fakeNominatim(t *testing.T, places map[string][2]float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		coords, ok := places[r.URL.Query().Get("q")]
		if !ok {
			fmt.Fprint(w, `[]`)
			return
		}
		fmt.Fprintf(w, `[{"lat": "%f", "lon": "%f"}]`, coords[0], coords[1])
	}))
}

func TestResolveDistance(t *testing.T) {
	srv := fakeNominatim(t, map[string][2]float64{
		"Alpha": {0, 0},
		"Beta":  {0, 1},
	})
	defer srv.Close()

	client := NewGeoClient(srv.URL)

	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		km, rerr := client.ResolveDistance("Alpha", "Beta")
		require.Nil(t, rerr)
		assert.Equal(t, 111, km)
	})

	t.Run("same place is zero km", func(t *testing.T) {
		km, rerr := client.ResolveDistance("Alpha", "Alpha")
		require.Nil(t, rerr)
		assert.Equal(t, 0, km)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, rerr := client.ResolveDistance("Nowhere123", "Beta")
		require.NotNil(t, rerr)
		assert.Equal(t, SourceNotFound, rerr.Kind)
		assert.Equal(t, "Nowhere123", rerr.Place)
	})

	t.Run("unknown destination", func(t *testing.T) {
		_, rerr := client.ResolveDistance("Alpha", "Nowhere123")
		require.NotNil(t, rerr)
		assert.Equal(t, DestinationNotFound, rerr.Kind)
		assert.Equal(t, "Nowhere123", rerr.Place)
	})

	t.Run("both unknown reports the source first", func(t *testing.T) {
		_, rerr := client.ResolveDistance("Nowhere123", "Nowhere456")
		require.NotNil(t, rerr)
		assert.Equal(t, SourceNotFound, rerr.Kind)
	})
}

func TestResolveDistanceLookupError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewGeoClient(srv.URL)

	_, rerr := client.ResolveDistance("Alpha", "Beta")
	require.NotNil(t, rerr)
	assert.Equal(t, LookupError, rerr.Kind)
	assert.Error(t, rerr.Cause)
}

func TestResolveDistanceUnreachableGeocoder(t *testing.T) {
	client := NewGeoClient("http://127.0.0.1:1")

	_, rerr := client.ResolveDistance("Alpha", "Beta")
	require.NotNil(t, rerr)
	assert.Equal(t, LookupError, rerr.Kind)
}

func TestHaversineKnownDistances(t *testing.T) {
	// Antipodal points are half the Earth's circumference apart.
	half := haversineKm(0, 0, 0, 180)
	assert.InDelta(t, 20015, half, 5)

	// Symmetry.
	assert.InDelta(t,
		haversineKm(22.57, 88.36, 15.30, 74.12),
		haversineKm(15.30, 74.12, 22.57, 88.36),
		1e-9)
}
