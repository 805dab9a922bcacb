package services

import (
	"fmt"
	"strings"
)

// Distance thresholds (km) separating the transport tiers. Kept as named
// constants so the tiers stay in one place.
const (
	ShortTripMaxKm  = 300
	MediumTripMaxKm = 1000
)

type TransportOption struct {
	Mode      string `json:"mode"`
	PriceLow  int    `json:"price_low"`
	PriceHigh int    `json:"price_high"`
}

// Tiered options per distance bucket. Prices are INR.
var (
	shortTripOptions = []TransportOption{
		{Mode: "Bus", PriceLow: 500, PriceHigh: 1200},
		{Mode: "Train", PriceLow: 600, PriceHigh: 1500},
	}
	mediumTripOptions = []TransportOption{
		{Mode: "Train", PriceLow: 1200, PriceHigh: 2500},
		{Mode: "Flight", PriceLow: 3500, PriceHigh: 6000},
	}
	longTripOptions = []TransportOption{
		{Mode: "Train", PriceLow: 2000, PriceHigh: 4000},
		{Mode: "Flight", PriceLow: 4500, PriceHigh: 8000},
	}
)

// TransportOptions maps a distance in km to the ordered transport modes and
// price ranges for that tier. Total over non-negative distances.
func TransportOptions(distanceKm int) []TransportOption {
	switch {
	case distanceKm < ShortTripMaxKm:
		return shortTripOptions
	case distanceKm < MediumTripMaxKm:
		return mediumTripOptions
	default:
		return longTripOptions
	}
}

// FormatTransportOptions renders the options as the bullet list embedded in
// the itinerary prompt.
func FormatTransportOptions(options []TransportOption) string {
	var b strings.Builder
	for _, opt := range options {
		fmt.Fprintf(&b, "- %s: Rs %d - Rs %d\n", opt.Mode, opt.PriceLow, opt.PriceHigh)
	}
	return b.String()
}
