package cycles

import (
	"math"
	"time"

	"github.com/m00nlygreat/manse/internal/astro"
	"github.com/m00nlygreat/manse/internal/ganzhi"
)

// TropicalYearDays scales luck-cycle decades: one cycle year is one pass
// of the sun through the same ecliptic longitude.
const TropicalYearDays = 365.242196

// daysPerAgeYear is the traditional conversion from term distance to
// starting age: 3 days of separation count as 1 year.
const daysPerAgeYear = 3.0

// birthEpsilon (days) keeps a birth exactly on a term crossing from
// selecting that crossing as its own reference.
const birthEpsilon = 1e-9

// Direction is the cycle walk direction: +1 forward, -1 backward.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// DirectionFor derives the walk direction from the year-pillar stem and
// the subject's gender: forward for yang-stem males and yin-stem females,
// backward otherwise.
func DirectionFor(yearStem ganzhi.Stem, female bool) Direction {
	if yearStem.Yang() != female {
		return Forward
	}
	return Backward
}

// Entry is one decade of the schedule. Entries are never modified after
// generation.
type Entry struct {
	N         int     // 1-based sequence number
	AgeStart  float64 // exact years, not rounded
	AgeEnd    float64
	DateStart time.Time
	DateEnd   time.Time // next boundary minus one second
	Pillar    ganzhi.Index
}

// Schedule is the full luck-cycle result: reference-term metadata plus the
// ordered decade entries.
type Schedule struct {
	Direction     Direction
	Term          astro.Term     // the crossing the distance was measured to
	TermJD        astro.JulianDay
	Current       astro.Term     // the term bin the birth falls in
	Days          float64        // |birth - crossing| in days, never negative
	StartAgeYears float64        // Days / 3, exact
	Start         time.Time      // birth local time + StartAgeYears tropical years
	Entries       []Entry
}

// Generate produces the luck-cycle schedule for a birth.
//
// birthJD is the UTC Julian day of the birth; birthLocal the local
// wall-clock timestamp the decade boundaries anchor to; monthPillar the
// base pillar stepped by dir each decade. A count of zero or less yields
// an empty entry list with metadata still populated. A dir other than
// Forward or Backward is a hard error.
func Generate(birthJD astro.JulianDay, birthYear int, birthLocal time.Time, monthPillar ganzhi.Index, dir Direction, count int) (Schedule, error) {
	if dir != Forward && dir != Backward {
		return Schedule{}, &DirectionError{Got: int(dir)}
	}

	longitude := astro.ApparentSolarLongitude(birthJD)
	bin := astro.TermIndex(longitude)
	current := astro.Terms[bin]
	next := astro.Terms[(bin+1)%12]
	prev := astro.Terms[bin]

	nextJD := closestCrossing(next, birthYear, birthJD, Forward)
	prevJD := closestCrossing(prev, birthYear, birthJD, Backward)

	var term astro.Term
	var target astro.JulianDay
	var days float64
	if dir == Forward {
		term, target = next, nextJD
		days = math.Max(0, float64(target-birthJD))
	} else {
		term, target = prev, prevJD
		days = math.Max(0, float64(birthJD-target))
	}

	startAge := days / daysPerAgeYear
	start := birthLocal.Add(tropicalYears(startAge))

	sched := Schedule{
		Direction:     dir,
		Term:          term,
		TermJD:        target,
		Current:       current,
		Days:          days,
		StartAgeYears: startAge,
		Start:         start,
		Entries:       []Entry{},
	}

	// Boundaries accumulate one decade at a time: a single Duration for
	// the whole span would overflow int64 nanoseconds past ~292 years.
	decade := tropicalYears(10)
	boundary := start
	for n := 1; n <= count; n++ {
		next := boundary.Add(decade)
		sched.Entries = append(sched.Entries, Entry{
			N:         n,
			AgeStart:  startAge + float64(n-1)*10,
			AgeEnd:    startAge + float64(n)*10,
			DateStart: boundary,
			DateEnd:   next.Add(-time.Second),
			Pillar:    monthPillar.Step(int(dir) * n),
		})
		boundary = next
	}
	return sched, nil
}

// closestCrossing solves the term's crossing for the birth year and its
// neighbors, then picks the candidate strictly after (forward) or strictly
// before (backward) the birth that lies closest to it. With no strictly
// ordered candidate the extremum of all three is returned.
func closestCrossing(term astro.Term, birthYear int, birthJD astro.JulianDay, side Direction) astro.JulianDay {
	var candidates [3]astro.JulianDay
	for i, y := range [3]int{birthYear - 1, birthYear, birthYear + 1} {
		candidates[i] = astro.FindTermCrossing(y, term.Degree, term.AnchorMonth)
	}

	var picked []astro.JulianDay
	for _, jd := range candidates {
		if side == Forward && jd > birthJD+birthEpsilon {
			picked = append(picked, jd)
		}
		if side == Backward && jd < birthJD-birthEpsilon {
			picked = append(picked, jd)
		}
	}
	if picked == nil {
		picked = candidates[:]
	}

	best := picked[0]
	for _, jd := range picked[1:] {
		if (side == Forward && jd < best) || (side == Backward && jd > best) {
			best = jd
		}
	}
	return best
}

// tropicalYears converts a span of tropical years to a wall-clock
// duration.
func tropicalYears(years float64) time.Duration {
	return time.Duration(years * TropicalYearDays * 24 * float64(time.Hour))
}
