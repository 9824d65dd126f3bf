package util

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// DistanceKm is the great-circle distance between two WGS84 positions, rounded to whole kilometres.
func DistanceKm(fromLat, fromLng, toLat, toLng float64) int {
	meters := geo.DistanceHaversine(orb.Point{fromLng, fromLat}, orb.Point{toLng, toLat})

	return int(math.Round(meters / 1000))
}
