package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stpnv0/RidePooler/internal/domain"
)

func TestDistanceKM_SamePoint(t *testing.T) {
	p := domain.Coordinate{Lat: 40.0, Lon: -73.0}
	assert.InDelta(t, 0, DistanceKM(p, p), 0.001)
}

func TestDistanceKM_KnownPair(t *testing.T) {
	// Moscow -> Saint Petersburg, roughly 635 km.
	moscow := domain.Coordinate{Lat: 55.7558, Lon: 37.6173}
	spb := domain.Coordinate{Lat: 59.9311, Lon: 30.3609}

	km := DistanceKM(moscow, spb)
	assert.InDelta(t, 635, km, 10)
}

func TestDistanceKM_ShortHop(t *testing.T) {
	a := domain.Coordinate{Lat: 40.0, Lon: -73.0}
	b := domain.Coordinate{Lat: 40.01, Lon: -73.0}

	km := DistanceKM(a, b)
	assert.Greater(t, km, 0.9)
	assert.Less(t, km, 1.4)
}

func TestWindowsOverlap(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		aStart, aEnd   time.Time
		bStart, bEnd   time.Time
		min            time.Duration
		expectsOverlap bool
	}{
		{
			name:   "full containment",
			aStart: base, aEnd: base.Add(10 * time.Minute),
			bStart: base.Add(time.Minute), bEnd: base.Add(5 * time.Minute),
			min:            time.Minute,
			expectsOverlap: true,
		},
		{
			name:   "partial overlap above minimum",
			aStart: base, aEnd: base.Add(10 * time.Minute),
			bStart: base.Add(8 * time.Minute), bEnd: base.Add(20 * time.Minute),
			min:            time.Minute,
			expectsOverlap: true,
		},
		{
			name:   "partial overlap below minimum",
			aStart: base, aEnd: base.Add(10 * time.Minute),
			bStart: base.Add(9*time.Minute + 30*time.Second), bEnd: base.Add(20 * time.Minute),
			min:            time.Minute,
			expectsOverlap: false,
		},
		{
			name:   "disjoint",
			aStart: base, aEnd: base.Add(10 * time.Minute),
			bStart: base.Add(11 * time.Minute), bEnd: base.Add(20 * time.Minute),
			min:            time.Minute,
			expectsOverlap: false,
		},
		{
			name:   "touching with zero minimum",
			aStart: base, aEnd: base.Add(10 * time.Minute),
			bStart: base.Add(10 * time.Minute), bEnd: base.Add(20 * time.Minute),
			min:            0,
			expectsOverlap: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindowsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, tt.min)
			assert.Equal(t, tt.expectsOverlap, got)
		})
	}
}
