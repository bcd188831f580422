package pillars

import (
	"math"

	"github.com/m00nlygreat/manse/internal/astro"
	"github.com/m00nlygreat/manse/internal/ganzhi"
)

// jiaziYear anchors the year count: 1984 was a 甲子 (index 0) year.
const jiaziYear = 1984

// dayEpochShift aligns floor(JD+0.5) day numbers with the historically
// agreed sexagenary day count.
const dayEpochShift = 50

// hourBinEpsilon keeps an exact two-hour boundary in the earlier bin.
// Preserved as-is; changing it can silently shift hour pillars for births
// on a boundary.
const hourBinEpsilon = 1e-7

// monthStemStart maps a year stem to the stem of that year's first
// astrological month (the month holding Lichun). 甲/己 years start at 丙,
// 乙/庚 at 戊, 丙/辛 at 庚, 丁/壬 at 壬, 戊/癸 at 甲.
var monthStemStart = [10]int{2, 4, 6, 8, 0, 2, 4, 6, 8, 0}

// hourStemStart maps a day stem to the stem of that day's Zi hour.
// 甲/己 days start at 甲, 乙/庚 at 丙, 丙/辛 at 戊, 丁/壬 at 庚, 戊/癸 at 壬.
var hourStemStart = [10]int{0, 2, 4, 6, 8, 0, 2, 4, 6, 8}

// Input holds the sanitized birth parameters for a pillar calculation.
// Range validation happens at the boundary (report package); the
// calculation assumes civil-range date and time fields.
type Input struct {
	Year, Month, Day int
	Hour, Minute     int
	TZHours          float64
	Longitude        float64
	UseTrueLocal     bool
}

// FourPillars is the immutable result of one calculation, tagged with the
// UTC Julian day it was derived from.
type FourPillars struct {
	Year  ganzhi.Index
	Month ganzhi.Index
	Day   ganzhi.Index
	Hour  ganzhi.Index
	JD    astro.JulianDay
}

// Calculate derives all four pillars for a birth instant.
func Calculate(in Input) FourPillars {
	jd := astro.ToJulianDay(in.Year, in.Month, in.Day, float64(in.Hour)-in.TZHours, float64(in.Minute), 0)

	year := YearPillar(jd, in.Year)
	month := MonthPillar(astro.ApparentSolarLongitude(jd), year)
	day := DayPillar(in.Year, in.Month, in.Day, in.TZHours)
	hour := HourPillar(day, in.Hour, in.Minute, in.UseTrueLocal, in.Longitude, in.TZHours)

	return FourPillars{Year: year, Month: month, Day: day, Hour: hour, JD: jd}
}

// YearPillar returns the year pillar for a UTC instant. The effective year
// is the civil year when the instant is at or after that year's Lichun
// crossing, otherwise the year before.
func YearPillar(jd astro.JulianDay, civilYear int) ganzhi.Index {
	lichun := astro.FindTermCrossing(civilYear, 315, 2)
	year := civilYear
	if jd < lichun {
		year--
	}
	return ganzhi.New(year - jiaziYear)
}

// MonthPillar returns the month pillar for a solar longitude under a given
// year pillar. The branch follows the 30° term bin directly; the stem
// walks from the year-keyed start.
func MonthPillar(solarLongitude float64, year ganzhi.Index) ganzhi.Index {
	offset := math.Mod(solarLongitude-315.0+360, 360)
	bin := int(math.Floor(offset / 30.0))

	branch := ganzhi.Branch((2 + bin) % 12)
	stem := ganzhi.Stem((monthStemStart[year.Stem()] + bin) % 10)

	idx, _ := ganzhi.Combine(stem, branch)
	return idx
}

// DayPillar returns the day pillar for a civil date in the given timezone.
// The Julian day is rebuilt at local midnight so the result is independent
// of the birth's time of day.
func DayPillar(year, month, day int, tzHours float64) ganzhi.Index {
	jd := astro.ToJulianDay(year, month, day, -tzHours, 0, 0)
	return ganzhi.New(int(math.Floor(float64(jd)+0.5)) + dayEpochShift)
}

// HourPillar returns the hour pillar for a wall-clock time under a given
// day pillar. When useTrueLocal is set, the wall clock is shifted by the
// true-local-time correction longitude*4 - tzHours*60 minutes.
func HourPillar(day ganzhi.Index, hour, minute int, useTrueLocal bool, longitude, tzHours float64) ganzhi.Index {
	minutes := float64(hour*60 + minute)
	if useTrueLocal {
		minutes += longitude*4.0 - tzHours*60.0
	}
	minutes = math.Mod(math.Mod(minutes, 1440)+1440, 1440)

	// Rebase so 23:00 opens bin 0 (Zi).
	offset := math.Mod(minutes-23*60+1440, 1440)
	offset = math.Mod(offset-hourBinEpsilon+1440, 1440)
	bin := int(math.Floor(offset / 120))

	branch := ganzhi.Branch(bin)
	stem := ganzhi.Stem((hourStemStart[day.Stem()] + bin) % 10)

	idx, _ := ganzhi.Combine(stem, branch)
	return idx
}
