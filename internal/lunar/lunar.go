package lunar

import "time"

// Date is a lunisolar calendar date. Leap marks a day inside the year's
// leap month.
type Date struct {
	Year  int
	Month int // 1..12, the ordinal month (a leap month repeats its ordinal)
	Day   int // 1..30
	Leap  bool
}

// epoch is the first supported civil date, lunar 1900-01-01.
var epoch = time.Date(1900, 1, 31, 0, 0, 0, 0, time.UTC)

var lastSupported = time.Date(2100, 12, 31, 0, 0, 0, 0, time.UTC)

// Convert maps a Gregorian civil date to its lunisolar equivalent. The
// second return is false for dates outside 1900-01-31..2100-12-31 or for
// impossible civil dates (e.g. February 30); no error is ever produced.
func Convert(year, month, day int) (Date, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		// time.Date normalized an impossible civil date.
		return Date{}, false
	}
	if t.Before(epoch) || t.After(lastSupported) {
		return Date{}, false
	}

	offset := int(t.Sub(epoch) / (24 * time.Hour))

	lunarYear := 1900
	for lunarYear < 2101 {
		yd := yearDays(lunarYear)
		if offset < yd {
			break
		}
		offset -= yd
		lunarYear++
	}

	leap := leapMonth(lunarYear)
	lunarMonth := 1
	inLeap := false
	for lunarMonth <= 12 {
		var md int
		if inLeap {
			md = leapDays(lunarYear)
		} else {
			md = monthDays(lunarYear, lunarMonth)
		}
		if offset < md {
			return Date{Year: lunarYear, Month: lunarMonth, Day: offset + 1, Leap: inLeap}, true
		}
		offset -= md

		// The leap month slots in right after its ordinal month.
		switch {
		case inLeap:
			inLeap = false
			lunarMonth++
		case leap != 0 && lunarMonth == leap:
			inLeap = true
		default:
			lunarMonth++
		}
	}
	return Date{}, false
}
