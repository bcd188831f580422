package report

import (
	"fmt"
	"math"
	"time"

	"github.com/m00nlygreat/manse/internal/cycles"
	"github.com/m00nlygreat/manse/internal/lunar"
	"github.com/m00nlygreat/manse/internal/pillars"
)

// Defaults for optional request fields, matching the Seoul reference
// location.
const (
	DefaultTZHours   = 9.0
	DefaultLongitude = 126.98
	DefaultCycles    = 10
)

// Request carries the parsed birth parameters for one reading.
type Request struct {
	Year, Month, Day int
	Hour, Minute     int
	TZHours          float64
	Longitude        float64
	UseTrueLocal     bool
	Cycles           int
	Female           bool
}

// Pillars holds the four canonical two-glyph codes.
type Pillars struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
	Hour  string `json:"hour"`
}

// CycleSummary is the compact per-decade view used for display.
type CycleSummary struct {
	N         int     `json:"n"`
	StartAge  float64 `json:"start_age"` // rounded to an integer when within 1e-9
	StartDate string  `json:"start_date"`
	Ganzhi    string  `json:"ganzhi"`
	GanzhiKor string  `json:"ganzhi_kor"`
}

// CycleEntry is the verbose per-decade view.
type CycleEntry struct {
	N         int     `json:"n"`
	AgeStart  float64 `json:"age_start"`
	AgeEnd    float64 `json:"age_end"`
	DateStart string  `json:"date_start"`
	DateEnd   string  `json:"date_end"`
	Pillar    string  `json:"pillar"`
}

// ScheduleDetail is the verbose luck-cycle section of a reading.
type ScheduleDetail struct {
	Direction     string       `json:"direction"`
	CurrentTerm   string       `json:"current_term"`
	ToTerm        string       `json:"to_term"`
	ToTermDegree  float64      `json:"to_term_deg"`
	ToTermUTC     string       `json:"to_term_utc"`
	Days          float64      `json:"days"`
	StartAgeYears float64      `json:"start_age_years"`
	DateStart     string       `json:"date_start"`
	Entries       []CycleEntry `json:"cycles"`
}

// Reading is the complete output for one birth query.
type Reading struct {
	Gregorian string         `json:"gregorian"`
	Lunar     string         `json:"lunar,omitempty"`
	LeapMonth *bool          `json:"leap_month,omitempty"`
	Pillars   Pillars        `json:"pillars"`
	Korean    string         `json:"korean"`
	Hanja     string         `json:"hanja"`
	Sex       string         `json:"sex"`
	Cycles    []CycleSummary `json:"cycles"`
	Schedule  ScheduleDetail `json:"luck_cycles"`
}

// Build validates the request and assembles the full reading.
func Build(req Request) (Reading, error) {
	if err := validate(req); err != nil {
		return Reading{}, err
	}

	p := pillars.Calculate(pillars.Input{
		Year: req.Year, Month: req.Month, Day: req.Day,
		Hour: req.Hour, Minute: req.Minute,
		TZHours: req.TZHours, Longitude: req.Longitude,
		UseTrueLocal: req.UseTrueLocal,
	})

	dir := cycles.DirectionFor(p.Year.Stem(), req.Female)
	birthLocal := time.Date(req.Year, time.Month(req.Month), req.Day, req.Hour, req.Minute, 0, 0, time.UTC)
	sched, err := cycles.Generate(p.JD, req.Year, birthLocal, p.Month, dir, req.Cycles)
	if err != nil {
		return Reading{}, fmt.Errorf("generating luck cycles: %w", err)
	}

	r := Reading{
		Gregorian: fmt.Sprintf("%04d-%02d-%02d %02d:%02d:00", req.Year, req.Month, req.Day, req.Hour, req.Minute),
		Pillars: Pillars{
			Year:  p.Year.String(),
			Month: p.Month.String(),
			Day:   p.Day.String(),
			Hour:  p.Hour.String(),
		},
		Korean: fmt.Sprintf("%s년 %s월 %s일 %s시",
			p.Year.Korean(), p.Month.Korean(), p.Day.Korean(), p.Hour.Korean()),
		Hanja: fmt.Sprintf("%s년 %s월 %s일 %s시",
			p.Year.String(), p.Month.String(), p.Day.String(), p.Hour.String()),
		Sex:      sexName(req.Female),
		Cycles:   []CycleSummary{},
		Schedule: scheduleDetail(sched),
	}

	if ld, ok := lunar.Convert(req.Year, req.Month, req.Day); ok {
		r.Lunar = fmt.Sprintf("%04d-%02d-%02d", ld.Year, ld.Month, ld.Day)
		leap := ld.Leap
		r.LeapMonth = &leap
	}

	for _, e := range sched.Entries {
		r.Cycles = append(r.Cycles, CycleSummary{
			N:         e.N,
			StartAge:  NormalizeAge(e.AgeStart),
			StartDate: e.DateStart.Format("2006-01-02 15:04"),
			Ganzhi:    e.Pillar.String(),
			GanzhiKor: e.Pillar.Korean(),
		})
	}
	return r, nil
}

func scheduleDetail(s cycles.Schedule) ScheduleDetail {
	ty, tm, td, th, tmin, tsec := s.TermJD.Civil()
	d := ScheduleDetail{
		Direction:     s.Direction.String(),
		CurrentTerm:   s.Current.Name,
		ToTerm:        s.Term.Name,
		ToTermDegree:  s.Term.Degree,
		ToTermUTC:     fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ", ty, tm, td, th, tmin, tsec),
		Days:          s.Days,
		StartAgeYears: s.StartAgeYears,
		DateStart:     s.Start.Format("2006-01-02 15:04:05"),
		Entries:       []CycleEntry{},
	}
	for _, e := range s.Entries {
		d.Entries = append(d.Entries, CycleEntry{
			N:         e.N,
			AgeStart:  e.AgeStart,
			AgeEnd:    e.AgeEnd,
			DateStart: e.DateStart.Format("2006-01-02 15:04:05"),
			DateEnd:   e.DateEnd.Format("2006-01-02 15:04:05"),
			Pillar:    e.Pillar.String(),
		})
	}
	return d
}

// NormalizeAge snaps an age to the nearest integer when it is within 1e-9
// of one; display-only rounding, the schedule keeps exact values.
func NormalizeAge(age float64) float64 {
	nearest := math.Round(age)
	if math.Abs(age-nearest) < 1e-9 {
		return nearest
	}
	return age
}

func sexName(female bool) string {
	if female {
		return "female"
	}
	return "male"
}
