package gaeqd

import "math"

func radians(deg float64) float64 {
	return math.Pi * deg / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func clamp(x, lo, hi float64) float64 {
	// math.Min and math.Max both return NaN for a NaN argument, so NaN
	// passes through unchanged.
	return math.Max(lo, math.Min(hi, x))
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func atan2d(y, x float64) float64 {
	// compute atan2(y, x) with the result in degrees
	var q float64
	if math.Abs(y) > math.Abs(x) {
		q = 2
		x, y = y, x
	} else {
		q = 0
	}
	if x < 0 {
		q += 1
		x = -x
	}
	ang := degrees(math.Atan2(y, x))
	switch q {
	case 1:
		if y >= 0 {
			ang = 180 - ang
		} else {
			ang = -180 - ang
		}
	case 2:
		ang = 90 - ang
	case 3:
		ang = -90 + ang
	}
	return ang
}

func sincosd(x float64) (float64, float64) {
	// Compute sine and cosine of x in degrees. The argument is reduced
	// exactly by quadrant, so multiples of 90 give exact results and
	// x and x+360 give the same result.
	r := math.NaN()
	if !math.IsInf(x, 0) {
		r = math.Mod(x, 360)
	}
	q := 0
	if !math.IsNaN(r) {
		q = int(math.Round(r / 90))
	}
	r -= float64(90 * q)
	r = radians(r)
	s := math.Sin(r)
	c := math.Cos(r)
	q = q % 4
	if q < 0 {
		q += 4
	}
	switch q {
	case 1:
		s, c = c, -s
	case 2:
		s, c = -s, -c
	case 3:
		s, c = -c, s
	}
	if x == 0 {
		return x, c
	}
	return s, c
}
