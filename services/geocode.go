package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type ResolveFailure string

const (
	SourceNotFound      ResolveFailure = "SOURCE_NOT_FOUND"
	DestinationNotFound ResolveFailure = "DESTINATION_NOT_FOUND"
	LookupError         ResolveFailure = "LOOKUP_ERROR"
)

// ResolveError is the typed failure of the distance resolver. Kind always
// distinguishes which place failed so handlers can give a precise message.
type ResolveError struct {
	Kind  ResolveFailure
	Place string
	Cause error
}

func (e *ResolveError) Error() string {
	switch e.Kind {
	case SourceNotFound:
		return fmt.Sprintf("source %q could not be resolved", e.Place)
	case DestinationNotFound:
		return fmt.Sprintf("destination %q could not be resolved", e.Place)
	default:
		return fmt.Sprintf("distance lookup failed: %v", e.Cause)
	}
}

func (e *ResolveError) Unwrap() error {
	return e.Cause
}

// ─── Geocoding Client ─────────────────────────────────────────────────────────

type GeoClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

var geoClient *GeoClient

const geocodeTimeout = 10 * time.Second

func InitGeo() {
	baseURL := os.Getenv("NOMINATIM_URL")
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}

	geoClient = &GeoClient{
		baseURL:   baseURL,
		userAgent: "tripgenix-backend",
		httpClient: &http.Client{
			Timeout: geocodeTimeout,
		},
	}

	log.Println("✅ Geocoding (Nominatim) initialized:", baseURL)
}

func GetGeoClient() *GeoClient {
	return geoClient
}

// NewGeoClient builds a client against a specific endpoint. Used by tests.
func NewGeoClient(baseURL string) *GeoClient {
	return &GeoClient{
		baseURL:    baseURL,
		userAgent:  "tripgenix-backend",
		httpClient: &http.Client{Timeout: geocodeTimeout},
	}
}

// ─── Distance Resolution ──────────────────────────────────────────────────────

// ResolveDistance geocodes both place names and returns the great-circle
// distance between them, truncated to whole kilometers. A single failed
// lookup is terminal — no retries.
func (c *GeoClient) ResolveDistance(source, destination string) (int, *ResolveError) {
	srcLat, srcLon, found, err := c.geocode(source)
	if err != nil {
		return 0, &ResolveError{Kind: LookupError, Place: source, Cause: err}
	}
	if !found {
		return 0, &ResolveError{Kind: SourceNotFound, Place: source}
	}

	dstLat, dstLon, found, err := c.geocode(destination)
	if err != nil {
		return 0, &ResolveError{Kind: LookupError, Place: destination, Cause: err}
	}
	if !found {
		return 0, &ResolveError{Kind: DestinationNotFound, Place: destination}
	}

	return int(haversineKm(srcLat, srcLon, dstLat, dstLon)), nil
}

func (c *GeoClient) geocode(place string) (lat, lon float64, found bool, err error) {
	params := url.Values{}
	params.Set("q", place)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequest("GET", c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, false, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, false, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return 0, 0, false, fmt.Errorf("geocoder returned %d: %s", resp.StatusCode, string(body))
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return 0, 0, false, fmt.Errorf("failed to parse geocoder response: %v", err)
	}

	if len(results) == 0 {
		return 0, 0, false, nil
	}

	lat, err = strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("bad latitude %q from geocoder", results[0].Lat)
	}
	lon, err = strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("bad longitude %q from geocoder", results[0].Lon)
	}

	return lat, lon, true, nil
}

const earthRadiusKm = 6371.0

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
