package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
	}{
		{"same point", -7.95, 112.61, -7.95, 112.61, 0},
		{"latitude only", 1, 0, 1.1, 0, 0.1},
		{"longitude only", 0, 5, 0, 4.9, 0.1},
		{"diagonal 3-4-5", 0, 0, 0.3, 0.4, 0.5},
	}
	for _, c := range cases {
		got := Distance(c.lat1, c.lon1, c.lat2, c.lon2)
		assert.InDelta(t, c.want, got, 1e-9, c.name)
	}
}

func TestWithinRadius_BoundaryInclusive(t *testing.T) {
	// Exactly on the boundary is accepted.
	assert.True(t, WithinRadius(0, 0, 0.1, 0, 0.1))
	assert.True(t, WithinRadius(0, 0, 0, 0.1, 0.1))

	// Just past the boundary is rejected.
	assert.False(t, WithinRadius(0, 0, 0.1000001, 0, 0.1))
	assert.False(t, WithinRadius(0, 0, 0, 0.1000001, 0.1))
}
