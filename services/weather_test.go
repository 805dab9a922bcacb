package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupMissingKeySkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := NewWeatherClient("", srv.URL)

	_, werr := client.Lookup("Goa")
	require.NotNil(t, werr)
	assert.Equal(t, WeatherMissingKey, werr.Kind)
	assert.Equal(t, 0, calls, "missing key must short-circuit before any request")

	assert.Equal(t, "Weather API key missing", client.SummaryOrFallback("Goa"))
}

func TestLookupSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Goa", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		fmt.Fprint(w, `{"cod": 200,
			"weather": [{"description": "light rain showers"}],
			"main": {"temp": 28.5, "humidity": 74}}`)
	}))
	defer srv.Close()

	client := NewWeatherClient("test-key", srv.URL)

	summary, werr := client.Lookup("Goa")
	require.Nil(t, werr)
	assert.Equal(t, "Light Rain Showers, 28.5°C, Humidity: 74%", summary)
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"light rain showers", "Light Rain Showers"},
		{"clear sky", "Clear Sky"},
		{"überwiegend bewölkt", "Überwiegend Bewölkt"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in))
	}
}

func TestLookupNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod": "404", "message": "city not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewWeatherClient("test-key", srv.URL)

	_, werr := client.Lookup("Atlantis")
	require.NotNil(t, werr)
	assert.Equal(t, WeatherNotFound, werr.Kind)
	assert.Equal(t, "Weather not available", werr.Summary())
}

func TestLookupTransportError(t *testing.T) {
	client := NewWeatherClient("test-key", "http://127.0.0.1:1")

	_, werr := client.Lookup("Goa")
	require.NotNil(t, werr)
	assert.Equal(t, WeatherAPIError, werr.Kind)
	assert.Equal(t, "Weather API failed", werr.Summary())

	assert.Equal(t, "Weather API failed", client.SummaryOrFallback("Goa"))
}
