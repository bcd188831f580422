// Package astro implements the continuous-time layer of manse: Julian day
// arithmetic, an apparent solar ecliptic longitude model, and a bisection
// solver for solar-term crossings.
//
// ARCHITECTURE:
//
// Everything here is a pure function over explicit inputs. There is no
// shared mutable state, no I/O, and no wall-clock access; identical inputs
// return bit-identical float64 results, which the golden tests rely on.
//
// Accuracy contract:
// ApparentSolarLongitude is a low-order Meeus approximation (mean anomaly
// and mean longitude polynomials, a three-term equation of center, and a
// small nutation/aberration correction). It is accurate to well under an
// arcminute, which is far more than enough to resolve which 30°-wide
// solar-term bin an instant falls in. It is NOT a general ephemeris and
// must not be compared against one at full precision.
//
// Term solving:
// FindTermCrossing runs 80 bisection steps over a ±40-day bracket, giving
// sub-second time resolution. When the bracket shows no sign change the
// solver narrows one-sidedly instead of failing; this silent fallback is
// preserved from the reference behavior because it guarantees termination
// near exact term boundaries.
package astro
