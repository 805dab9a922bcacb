package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type WeatherFailure string

const (
	WeatherMissingKey WeatherFailure = "MISSING_KEY"
	WeatherNotFound   WeatherFailure = "NOT_FOUND"
	WeatherAPIError   WeatherFailure = "API_ERROR"
)

// Fixed placeholder texts embedded in the itinerary prompt when the lookup
// fails. The pipeline never aborts on a weather failure.
var weatherFallbackText = map[WeatherFailure]string{
	WeatherMissingKey: "Weather API key missing",
	WeatherNotFound:   "Weather not available",
	WeatherAPIError:   "Weather API failed",
}

type WeatherError struct {
	Kind  WeatherFailure
	Cause error
}

func (e *WeatherError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("weather lookup failed (%s): %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("weather lookup failed (%s)", e.Kind)
}

// Summary returns the placeholder text for the failure kind.
func (e *WeatherError) Summary() string {
	return weatherFallbackText[e.Kind]
}

// ─── Weather Client ───────────────────────────────────────────────────────────

type WeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var weatherClient *WeatherClient

func InitWeather() {
	baseURL := os.Getenv("OPENWEATHER_URL")
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org"
	}

	weatherClient = &WeatherClient{
		apiKey:  os.Getenv("WEATHER_API_KEY"),
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	if weatherClient.apiKey != "" {
		log.Println("✅ Weather (OpenWeatherMap) initialized")
	} else {
		log.Println("⚠️  WEATHER_API_KEY not set — itineraries will use placeholder weather text")
	}
}

func GetWeatherClient() *WeatherClient {
	return weatherClient
}

// NewWeatherClient builds a client against a specific endpoint. Used by tests.
func NewWeatherClient(apiKey, baseURL string) *WeatherClient {
	return &WeatherClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ─── Lookup ───────────────────────────────────────────────────────────────────

// Lookup fetches current conditions for a place as a fixed-format one-line
// summary. Without a configured key it fails immediately with MISSING_KEY and
// never touches the network. No caching, no retry.
func (c *WeatherClient) Lookup(place string) (string, *WeatherError) {
	if c.apiKey == "" {
		return "", &WeatherError{Kind: WeatherMissingKey}
	}

	params := url.Values{}
	params.Set("q", place)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	resp, err := c.httpClient.Get(c.baseURL + "/data/2.5/weather?" + params.Encode())
	if err != nil {
		return "", &WeatherError{Kind: WeatherAPIError, Cause: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &WeatherError{Kind: WeatherNotFound}
	}

	var result struct {
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &WeatherError{Kind: WeatherAPIError, Cause: err}
	}

	desc := "Unknown"
	if len(result.Weather) > 0 {
		desc = titleCase(result.Weather[0].Description)
	}

	return fmt.Sprintf("%s, %.1f°C, Humidity: %d%%", desc, result.Main.Temp, result.Main.Humidity), nil
}

// SummaryOrFallback runs Lookup and degrades to the fixed placeholder text on
// any failure, so callers can always embed something in the prompt.
func (c *WeatherClient) SummaryOrFallback(place string) string {
	summary, werr := c.Lookup(place)
	if werr != nil {
		if werr.Kind != WeatherMissingKey {
			log.Printf("⚠️  Weather lookup for %q failed: %v", place, werr)
		}
		return werr.Summary()
	}
	return summary
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
