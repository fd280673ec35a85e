package gaeqd

import "github.com/paulmach/orb"

// Orb returns the projection as an orb.Projection. The input point is read
// as orb.Point{lon, lat} and the result is orb.Point{x, y}.
func (p *Projection) Orb() orb.Projection {
	return func(pt orb.Point) orb.Point {
		x, y := p.Forward(pt.Lon(), pt.Lat())
		return orb.Point{x, y}
	}
}
