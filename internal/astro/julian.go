package astro

import "math"

// JulianDay is a continuous day count; the fractional part encodes time of
// day. Produced and consumed by value, never mutated.
type JulianDay float64

// ToJulianDay converts a proleptic Gregorian civil date-time to a Julian
// day. The hour argument is a float64 and may be negative or fractional;
// the day-pillar derivation passes -tzHours here to normalize a date to
// its local-midnight instant in UTC.
func ToJulianDay(year, month, day int, hour, minute, second float64) JulianDay {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)
	frac := (hour + minute/60 + second/3600) / 24
	return JulianDay(math.Floor(365.25*(float64(y)+4716)) + math.Floor(30.6001*float64(m+1)) + float64(day) + b - 1524.5 + frac)
}

// Civil converts the Julian day back to a Gregorian civil date-time.
// Seconds are rounded; a rounded value of 60 is clamped to 59 so the
// minute never rolls over.
func (jd JulianDay) Civil() (year, month, day, hour, minute, second int) {
	adj := float64(jd) + 0.5
	z := math.Floor(adj)
	f := adj - z

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	dayF := b - d - math.Floor(30.6001*e) + f
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}

	day = int(math.Floor(dayF))
	frac := dayF - math.Floor(dayF)
	hour = int(math.Floor(frac * 24))
	frac = frac*24 - float64(hour)
	minute = int(math.Floor(frac * 60))
	frac = frac*60 - float64(minute)
	second = int(math.Round(frac * 60))
	if second == 60 {
		second = 59
	}
	return year, month, day, hour, minute, second
}
