package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportOptionsTiers(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm int
		wantModes  []string
		wantLows   []int
		wantHighs  []int
	}{
		{"zero distance", 0, []string{"Bus", "Train"}, []int{500, 600}, []int{1200, 1500}},
		{"short trip", 150, []string{"Bus", "Train"}, []int{500, 600}, []int{1200, 1500}},
		{"last km of short tier", 299, []string{"Bus", "Train"}, []int{500, 600}, []int{1200, 1500}},
		{"medium tier lower bound", 300, []string{"Train", "Flight"}, []int{1200, 3500}, []int{2500, 6000}},
		{"last km of medium tier", 999, []string{"Train", "Flight"}, []int{1200, 3500}, []int{2500, 6000}},
		{"long tier lower bound", 1000, []string{"Train", "Flight"}, []int{2000, 4500}, []int{4000, 8000}},
		{"cross country", 2400, []string{"Train", "Flight"}, []int{2000, 4500}, []int{4000, 8000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := TransportOptions(tt.distanceKm)
			assert.Len(t, options, len(tt.wantModes))
			for i, opt := range options {
				assert.Equal(t, tt.wantModes[i], opt.Mode)
				assert.Equal(t, tt.wantLows[i], opt.PriceLow)
				assert.Equal(t, tt.wantHighs[i], opt.PriceHigh)
			}
		})
	}
}

func TestFormatTransportOptions(t *testing.T) {
	got := FormatTransportOptions(TransportOptions(100))
	assert.Equal(t, "- Bus: Rs 500 - Rs 1200\n- Train: Rs 600 - Rs 1500\n", got)
}
