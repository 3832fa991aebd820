// Package geo holds the pure distance/time helpers used by the matcher.
package geo

import (
	"time"

	"github.com/jftuga/geodist"

	"github.com/stpnv0/RidePooler/internal/domain"
)

// DistanceKM returns the great-circle distance between two coordinates in
// kilometers. Vincenty is used for accuracy; it fails to converge for
// near-antipodal points, in which case Haversine is close enough.
func DistanceKM(a, b domain.Coordinate) float64 {
	pa := geodist.Coord{Lat: a.Lat, Lon: a.Lon}
	pb := geodist.Coord{Lat: b.Lat, Lon: b.Lon}

	_, km, err := geodist.VincentyDistance(pa, pb)
	if err != nil {
		_, km = geodist.HaversineDistance(pa, pb)
	}

	return km
}

// WindowsOverlap reports whether [aStart, aEnd] and [bStart, bEnd] share at
// least min of common time.
func WindowsOverlap(aStart, aEnd, bStart, bEnd time.Time, min time.Duration) bool {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	return end.Sub(start) >= min
}
