package astro

import "math"

// Term is one of the twelve 30°-spaced solar-term definitions used as
// astrological month boundaries. AnchorMonth is only a numeric search seed
// for the solver, not a civil-calendar assignment.
type Term struct {
	Degree      float64
	Name        string
	AnchorMonth int
}

// Terms lists the twelve jeol terms starting at Lichun (입춘, 315°).
// The table is read-only and fixed at build time.
var Terms = [12]Term{
	{315, "입춘", 2},
	{345, "경칩", 3},
	{15, "청명", 4},
	{45, "입하", 5},
	{75, "망종", 6},
	{105, "소서", 7},
	{135, "입추", 8},
	{165, "백로", 9},
	{195, "한로", 10},
	{225, "입동", 11},
	{255, "대설", 12},
	{285, "소한", 1},
}

// TermIndex maps a solar longitude to the index in Terms of the term most
// recently passed: floor of the 30°-bin offset from 315°.
func TermIndex(longitude float64) int {
	offset := math.Mod(longitude-315.0+360, 360)
	return int(math.Floor(offset / 30.0))
}

// FindTermCrossing locates the instant nearest the 15th of anchorMonth in
// the given year at which the apparent solar longitude equals targetDeg
// (mod 360).
//
// The solver brackets ±40 days around the seed and bisects 80 times on the
// signed angular distance f(jd) = ((λ(jd)-target+540) mod 360) - 180,
// which lives in (-180,180]. When no sign change is present between the
// low end and the midpoint the low end advances instead, narrowing
// one-sidedly toward the last candidate; this keeps the solver total.
func FindTermCrossing(year int, targetDeg float64, anchorMonth int) JulianDay {
	seed := float64(ToJulianDay(year, anchorMonth, 15, 0, 0, 0))
	lo, hi := seed-40, seed+40

	f := func(jd float64) float64 {
		return math.Mod(ApparentSolarLongitude(JulianDay(jd))-targetDeg+540, 360) - 180
	}

	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2
		if f(lo)*f(mid) <= 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return JulianDay((lo + hi) / 2)
}
