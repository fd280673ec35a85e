package gaeqd

import "math"

// Haversine returns the great-circle angular distance in radians between
// (lon1, lat1) and (lon2, lat2) using the haversine formula. It is better
// conditioned than CentralAngle for nearby points.
func Haversine(lon1, lat1, lon2, lat2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)
	_, cosLat1 := sincosd(lat1)
	_, cosLat2 := sincosd(lat2)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*cosLat1*cosLat2
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Bearing returns the initial great-circle bearing from (lon1, lat1) to
// (lon2, lat2) in degrees, clockwise from north, in (-180, 180].
//
// Directions from the center are preserved by the projection, so for a
// projected point (x, y) the bearing from the center equals atan2(x, y).
func Bearing(lon1, lat1, lon2, lat2 float64) float64 {
	sinLat1, cosLat1 := sincosd(lat1)
	sinLat2, cosLat2 := sincosd(lat2)
	sinDLon, cosDLon := sincosd(lon2 - lon1)
	return atan2d(sinDLon*cosLat2, cosLat1*sinLat2-sinLat1*cosLat2*cosDLon)
}

// CrossTrack returns the angular distance in radians from (lon, lat) to the
// great circle through (lon1, lat1) and (lon2, lat2). The result is
// unsigned and does not depend on which side of the path the point lies.
func CrossTrack(lon, lat, lon1, lat1, lon2, lat2 float64) float64 {
	d := Haversine(lon1, lat1, lon, lat)
	s, _ := sincosd(Bearing(lon1, lat1, lon, lat) - Bearing(lon1, lat1, lon2, lat2))
	return math.Abs(math.Asin(clamp(math.Sin(d)*s, -1, 1)))
}
