package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToJulianDayKnownEpochs(t *testing.T) {
	// J2000.0 epoch: 2000-01-01 12:00 TT.
	assert.Equal(t, JulianDay(2451545.0), ToJulianDay(2000, 1, 1, 12, 0, 0))

	// Meeus example 7.a uses 1987; midnight gives a .5 fraction.
	assert.Equal(t, JulianDay(2446796.5), ToJulianDay(1987, 1, 1, 0, 0, 0))
}

func TestToJulianDayFractionalHour(t *testing.T) {
	// 5.5 hours and 5h30m are the same instant.
	assert.Equal(t,
		ToJulianDay(1990, 5, 15, 5.5, 0, 0),
		ToJulianDay(1990, 5, 15, 5, 30, 0))
}

func TestToJulianDayNegativeHour(t *testing.T) {
	// Passing -tz as the hour normalizes to a local-midnight UTC instant:
	// midnight in UTC+9 is 9 hours before midnight UTC of the same date.
	jd := ToJulianDay(1990, 5, 15, -9, 0, 0)
	assert.Equal(t, ToJulianDay(1990, 5, 14, 15, 0, 0), jd)
}

func TestCivilRoundTrip(t *testing.T) {
	y, m, d, hh, mm, ss := JulianDay(2451545.0).Civil()
	assert.Equal(t, [6]int{2000, 1, 1, 12, 0, 0}, [6]int{y, m, d, hh, mm, ss})

	// Gregorian leap day well before 1900.
	y, m, d, hh, mm, ss = ToJulianDay(1600, 2, 29, 0, 0, 0).Civil()
	assert.Equal(t, [6]int{1600, 2, 29, 0, 0, 0}, [6]int{y, m, d, hh, mm, ss})
}

func TestCivilSecondClamp(t *testing.T) {
	// 1990-05-15 05:30 UTC is not exactly representable; the inverse lands
	// a hair under the half minute and the 60-second rollover clamps to 59.
	y, m, d, hh, mm, ss := ToJulianDay(1990, 5, 15, 5, 30, 0).Civil()
	assert.Equal(t, [3]int{1990, 5, 15}, [3]int{y, m, d})
	assert.Equal(t, 5, hh)
	assert.Equal(t, 29, mm)
	assert.Equal(t, 59, ss)
}

func TestJulianDayDeterminism(t *testing.T) {
	a := ToJulianDay(1990, 5, 15, 5, 30, 0)
	b := ToJulianDay(1990, 5, 15, 5, 30, 0)
	assert.Equal(t, a, b)
}
