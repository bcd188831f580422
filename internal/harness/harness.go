package harness

import (
	"fmt"

	"github.com/m00nlygreat/manse/internal/report"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success.
	// True if every declared expectation matches.
	Pass bool `json:"pass"`

	// Reading is the full computed reading, kept for golden comparison
	// and for inspecting failures.
	Reading report.Reading `json:"reading"`

	// Errors contains expectation mismatch messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds an expectation mismatch and marks the result as failed.
func (r *Result) AddError(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}

// Run executes a scenario and checks its declared expectations.
//
// Readings are pure functions of the birth input, so no isolation or
// clock injection is needed; the same scenario always produces the same
// result.
//
// Execution flow:
//  1. Convert the scenario's birth input to a reading request
//  2. Build the full reading
//  3. Check each declared expectation against the reading
//  4. Return result with pass/fail and mismatch messages
//
// Run returns an error only when the scenario itself is unusable
// (malformed date or time, invalid request). Expectation mismatches are
// reported through the Result, not the error.
func Run(scenario *Scenario) (*Result, error) {
	req, err := scenario.Request()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	reading, err := report.Build(req)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := NewResult()
	result.Reading = reading
	checkExpect(scenario, reading, result)
	return result, nil
}

func checkExpect(scenario *Scenario, reading report.Reading, result *Result) {
	e := scenario.Expect

	if e.Pillars != nil {
		checkPillar(result, "year", e.Pillars.Year, reading.Pillars.Year)
		checkPillar(result, "month", e.Pillars.Month, reading.Pillars.Month)
		checkPillar(result, "day", e.Pillars.Day, reading.Pillars.Day)
		checkPillar(result, "hour", e.Pillars.Hour, reading.Pillars.Hour)
	}

	if e.Lunar != nil && *e.Lunar != reading.Lunar {
		result.AddError("lunar: want %q, got %q", *e.Lunar, reading.Lunar)
	}

	if e.LeapMonth != nil {
		switch {
		case reading.LeapMonth == nil:
			result.AddError("leap_month: want %v, but date is outside the lunar table range", *e.LeapMonth)
		case *reading.LeapMonth != *e.LeapMonth:
			result.AddError("leap_month: want %v, got %v", *e.LeapMonth, *reading.LeapMonth)
		}
	}

	if e.Direction != "" && e.Direction != reading.Schedule.Direction {
		result.AddError("direction: want %s, got %s", e.Direction, reading.Schedule.Direction)
	}

	if e.Korean != "" && e.Korean != reading.Korean {
		result.AddError("korean: want %q, got %q", e.Korean, reading.Korean)
	}
}

func checkPillar(result *Result, name, want, got string) {
	if want != "" && want != got {
		result.AddError("pillars.%s: want %s, got %s", name, want, got)
	}
}
