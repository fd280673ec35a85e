package gaeqd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardCheckedAntipodal(t *testing.T) {
	tests := []struct {
		centerLon, centerLat float64
		lon, lat             float64
	}{
		{0, 0, 180, 0},
		{0, 0, -180, 0},
		{10, 20, -170, -20},
		{33.3, -66.6, -146.7, 66.6},
		{0, 90, 0, -90},
		{-74, 40.7, 106, -40.7},
	}
	for _, tt := range tests {
		x, y, err := ProjectChecked(tt.centerLon, tt.centerLat, tt.lon, tt.lat)
		require.ErrorIs(t, err, ErrAntipodal, "%+v", tt)
		assert.True(t, math.IsNaN(x))
		assert.True(t, math.IsNaN(y))
	}
}

func TestForwardCheckedNotFinite(t *testing.T) {
	_, _, err := ProjectChecked(0, 0, math.NaN(), 0)
	assert.ErrorIs(t, err, ErrNotFinite)

	_, _, err = ProjectChecked(math.Inf(-1), 0, 10, 10)
	assert.ErrorIs(t, err, ErrNotFinite)

	_, _, err = New(0, math.NaN()).ForwardChecked(10, 10)
	assert.ErrorIs(t, err, ErrNotFinite)
	assert.Contains(t, err.Error(), "NaN")
}

func TestForwardCheckedMatchesForward(t *testing.T) {
	p := New(-74, 40.7)
	for _, pt := range [][2]float64{{2.35, 48.85}, {-74, 40.7}, {105.9, -40.7}} {
		x, y, err := p.ForwardChecked(pt[0], pt[1])
		require.NoError(t, err, "target %v", pt)
		wantX, wantY := p.Forward(pt[0], pt[1])
		assert.Equal(t, wantX, x)
		assert.Equal(t, wantY, y)
	}
}

func TestForwardCheckedErrorNamesCoordinates(t *testing.T) {
	_, _, err := ProjectChecked(0, 0, 180, 0)
	require.Error(t, err)
	assert.EqualError(t, err, "gaeqd: target is antipodal to center: center (0, 0), target (180, 0)")
}
