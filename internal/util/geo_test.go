package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fromLat  float64
		fromLng  float64
		toLat    float64
		toLng    float64
		min, max int
	}{
		{name: "same point", fromLat: 59.91, fromLng: 10.75, toLat: 59.91, toLng: 10.75, min: 0, max: 0},
		{name: "Oslo to Bergen", fromLat: 59.9139, fromLng: 10.7522, toLat: 60.3913, toLng: 5.3221, min: 300, max: 310},
		{name: "Oslo to Trondheim", fromLat: 59.9139, fromLng: 10.7522, toLat: 63.4305, toLng: 10.3951, min: 385, max: 395},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DistanceKm(tt.fromLat, tt.fromLng, tt.toLat, tt.toLng)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}
