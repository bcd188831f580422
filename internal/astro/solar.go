package astro

import "math"

// ApparentSolarLongitude returns the sun's apparent ecliptic longitude in
// degrees, normalized into [0,360).
//
// The model: centuries since J2000, mean anomaly M and mean longitude L0
// as polynomials in T, equation of center C as a three-term sine series in
// M, then the apparent correction -0.00569 - 0.00478*sin(Ω) with Ω the
// longitude of the ascending lunar node.
func ApparentSolarLongitude(jd JulianDay) float64 {
	t := (float64(jd) - 2451545.0) / 36525.0

	m := 357.52911 + 35999.05029*t - 0.0001537*t*t
	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t

	mr := math.Mod(m, 360) * math.Pi / 180
	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(mr) +
		(0.019993-0.000101*t)*math.Sin(2*mr) +
		0.000289*math.Sin(3*mr)

	trueLong := l0 + c
	omega := 125.04 - 1934.136*t
	lambda := trueLong - 0.00569 - 0.00478*math.Sin(omega*math.Pi/180)

	return math.Mod(math.Mod(lambda, 360)+360, 360)
}
