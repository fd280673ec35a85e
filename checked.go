package gaeqd

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrAntipodal is returned for a target diametrically opposite the
	// center, where the projection has no unique direction.
	ErrAntipodal = errors.New("gaeqd: target is antipodal to center")
	// ErrNotFinite is returned when an input coordinate is NaN or infinite.
	ErrNotFinite = errors.New("gaeqd: coordinate is not finite")
)

// ForwardChecked is like Forward but reports degenerate input as an error
// instead of returning a non-finite result.
func (p *Projection) ForwardChecked(lon, lat float64) (x, y float64, err error) {
	if !finite(p.lon0, p.lat0, lon, lat) {
		return math.NaN(), math.NaN(), fmt.Errorf("%w: center (%v, %v), target (%v, %v)",
			ErrNotFinite, p.lon0, p.lat0, lon, lat)
	}
	if math.Pi-p.CentralAngle(lon, lat) < antipodeTolerance {
		return math.NaN(), math.NaN(), fmt.Errorf("%w: center (%v, %v), target (%v, %v)",
			ErrAntipodal, p.lon0, p.lat0, lon, lat)
	}
	x, y = p.Forward(lon, lat)
	return x, y, nil
}

// ProjectChecked is the checked form of Project.
func ProjectChecked(centerLon, centerLat, lon, lat float64) (x, y float64, err error) {
	return New(centerLon, centerLat).ForwardChecked(lon, lat)
}
