package harness

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/m00nlygreat/manse/internal/report"
)

// Snapshot captures the complete reading for a scenario execution.
// Float fields are rendered as fixed six-decimal strings so the
// serialized form is byte-stable across platforms.
type Snapshot struct {
	ScenarioName string          `json:"scenario_name"`
	Gregorian    string          `json:"gregorian"`
	Lunar        string          `json:"lunar,omitempty"`
	LeapMonth    *bool           `json:"leap_month,omitempty"`
	Pillars      report.Pillars  `json:"pillars"`
	Korean       string          `json:"korean"`
	Sex          string          `json:"sex"`
	Direction    string          `json:"direction"`
	CurrentTerm  string          `json:"current_term"`
	ToTerm       string          `json:"to_term"`
	ToTermUTC    string          `json:"to_term_utc"`
	Days         string          `json:"days"`
	StartAge     string          `json:"start_age_years"`
	Start        string          `json:"start"`
	Cycles       []CycleSnapshot `json:"cycles"`
}

// CycleSnapshot is one decade entry in a Snapshot.
type CycleSnapshot struct {
	N         int    `json:"n"`
	AgeStart  string `json:"age_start"`
	AgeEnd    string `json:"age_end"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
	Pillar    string `json:"pillar"`
}

// NewSnapshot builds a snapshot from a reading.
func NewSnapshot(scenarioName string, r report.Reading) Snapshot {
	snap := Snapshot{
		ScenarioName: scenarioName,
		Gregorian:    r.Gregorian,
		Lunar:        r.Lunar,
		LeapMonth:    r.LeapMonth,
		Pillars:      r.Pillars,
		Korean:       r.Korean,
		Sex:          r.Sex,
		Direction:    r.Schedule.Direction,
		CurrentTerm:  r.Schedule.CurrentTerm,
		ToTerm:       r.Schedule.ToTerm,
		ToTermUTC:    r.Schedule.ToTermUTC,
		Days:         formatFixed(r.Schedule.Days),
		StartAge:     formatFixed(r.Schedule.StartAgeYears),
		Start:        r.Schedule.DateStart,
		Cycles:       []CycleSnapshot{},
	}
	for _, e := range r.Schedule.Entries {
		snap.Cycles = append(snap.Cycles, CycleSnapshot{
			N:         e.N,
			AgeStart:  formatFixed(e.AgeStart),
			AgeEnd:    formatFixed(e.AgeEnd),
			DateStart: e.DateStart,
			DateEnd:   e.DateEnd,
			Pillar:    e.Pillar,
		})
	}
	return snap
}

// formatFixed renders a float with six decimals. Fixed precision keeps
// golden files stable against shortest-representation drift.
func formatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// RunWithGolden executes a scenario and compares the full reading
// against a golden file. The golden file is stored in
// testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Declared scenario expectations are checked first; a mismatch fails the
// test before the golden comparison runs.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		t.Errorf("%s: %s", scenario.Name, msg)
	}

	snap := NewSnapshot(scenario.Name, result.Reading)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
