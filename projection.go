// Package gaeqd implements the spherical azimuthal equidistant projection.
//
// Points are given as longitude and latitude in decimal degrees. Projected
// coordinates are in radians of great-circle angular distance from the
// center; multiply by a sphere radius to get a physical distance.
package gaeqd

import "math"

// centerTolerance is the central angle, in radians, below which a target is
// treated as the center itself and projects to the origin.
const centerTolerance = 1e-12

// antipodeTolerance is how close to pi the central angle may get before a
// target is treated as the antipode. The law of cosines cannot resolve angles
// much closer than 1.5e-8 to pi, so this is looser than centerTolerance.
const antipodeTolerance = 1e-7

// Projection is an azimuthal equidistant projection about a fixed center.
// It is immutable and may be shared between goroutines.
type Projection struct {
	lon0, lat0       float64
	sinLat0, cosLat0 float64
}

// New returns the projection centered on (centerLon, centerLat).
func New(centerLon, centerLat float64) *Projection {
	s, c := sincosd(centerLat)
	return &Projection{
		lon0:    centerLon,
		lat0:    centerLat,
		sinLat0: s,
		cosLat0: c,
	}
}

// Center returns the longitude and latitude of the projection center.
func (p *Projection) Center() (lon, lat float64) {
	return p.lon0, p.lat0
}

// terms returns the central angle to (lon, lat) together with the trig
// terms Forward needs.
func (p *Projection) terms(lon, lat float64) (c, sinLat, cosLat, sinDLon, cosDLon float64) {
	sinLat, cosLat = sincosd(lat)
	sinDLon, cosDLon = sincosd(lon - p.lon0)
	// The conversions force each product to be rounded on its own so the
	// result does not depend on whether the compiler fuses multiply-adds.
	cosC := float64(p.sinLat0*sinLat) + float64(p.cosLat0*cosLat*cosDLon)
	// rounding can push cosC just past +/-1 near the center or antipode
	c = math.Acos(clamp(cosC, -1, 1))
	return
}

// CentralAngle returns the great-circle angular distance in radians, in
// [0, pi], from the center to (lon, lat).
func (p *Projection) CentralAngle(lon, lat float64) float64 {
	c, _, _, _, _ := p.terms(lon, lat)
	return c
}

// Forward projects (lon, lat) to planar coordinates.
//
// The center projects to exactly (0, 0). The antipode of the center has no
// unique direction and projects to (NaN, NaN); ForwardChecked reports it as
// ErrAntipodal. NaN or infinite input gives NaN output.
func (p *Projection) Forward(lon, lat float64) (x, y float64) {
	c, sinLat, cosLat, sinDLon, cosDLon := p.terms(lon, lat)
	if c < centerTolerance {
		return 0, 0
	}
	if math.Pi-c < antipodeTolerance {
		return math.NaN(), math.NaN()
	}
	k := c / math.Sin(c)
	x = k * cosLat * sinDLon
	y = k * (float64(p.cosLat0*sinLat) - float64(p.sinLat0*cosLat*cosDLon))
	return x, y
}

// Project projects (lon, lat) about the center (centerLon, centerLat). It is
// equivalent to New(centerLon, centerLat).Forward(lon, lat).
func Project(centerLon, centerLat, lon, lat float64) (x, y float64) {
	return New(centerLon, centerLat).Forward(lon, lat)
}

// CentralAngle returns the great-circle angular distance in radians between
// (lon1, lat1) and (lon2, lat2) by the spherical law of cosines.
func CentralAngle(lon1, lat1, lon2, lat2 float64) float64 {
	return New(lon1, lat1).CentralAngle(lon2, lat2)
}
