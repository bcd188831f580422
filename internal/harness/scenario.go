package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/m00nlygreat/manse/internal/report"
)

// Scenario defines a conformance test scenario.
// Scenarios describe one birth input and the expected parts of the
// resulting reading.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden
	// snapshot file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Birth is the civil birth input.
	Birth Birth `yaml:"birth"`

	// Expect declares the reading fields to validate. Only declared
	// fields are checked; everything else is covered by the golden
	// snapshot.
	Expect Expect `yaml:"expect"`
}

// Birth is the civil birth input for a scenario.
type Birth struct {
	// Date is the Gregorian birth date, "YYYY-MM-DD".
	Date string `yaml:"date"`

	// Time is the wall-clock birth time, "HH:MM". Empty defaults to
	// noon, same as the CLI.
	Time string `yaml:"time,omitempty"`

	// TZ is the standard-time offset in hours east of Greenwich.
	// Nil defaults to +9 (Korea Standard Time).
	TZ *float64 `yaml:"tz,omitempty"`

	// Longitude is the birth longitude in degrees east.
	// Nil defaults to 126.98 (Seoul).
	Longitude *float64 `yaml:"longitude,omitempty"`

	// LMT enables the local-mean-time correction for the hour pillar.
	LMT bool `yaml:"lmt,omitempty"`

	// Cycles is the number of decade luck cycles to generate.
	// Nil defaults to 10.
	Cycles *int `yaml:"cycles,omitempty"`

	// Sex is "male" or "female".
	Sex string `yaml:"sex"`
}

// Expect declares expected reading fields. All fields are optional.
type Expect struct {
	// Pillars are the four expected two-glyph codes.
	Pillars *ExpectPillars `yaml:"pillars,omitempty"`

	// Lunar is the expected lunisolar date, "YYYY-MM-DD" in lunar
	// ordinals. An explicit empty string asserts the date falls outside
	// the supported table range.
	Lunar *string `yaml:"lunar,omitempty"`

	// LeapMonth asserts whether the lunar month is the leap month.
	LeapMonth *bool `yaml:"leap_month,omitempty"`

	// Direction is the expected luck-cycle walk direction,
	// "forward" or "backward".
	Direction string `yaml:"direction,omitempty"`

	// Korean is the expected Korean reading sentence.
	Korean string `yaml:"korean,omitempty"`
}

// ExpectPillars are the expected pillar codes. Empty fields are skipped.
type ExpectPillars struct {
	Year  string `yaml:"year,omitempty"`
	Month string `yaml:"month,omitempty"`
	Day   string `yaml:"day,omitempty"`
	Hour  string `yaml:"hour,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "expects:" vs "expect:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarioDir loads every *.yaml scenario under dir, sorted by file
// name for deterministic test ordering.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// Request converts the scenario's birth input into a reading request,
// applying the same defaults as the CLI.
func (s *Scenario) Request() (report.Request, error) {
	year, month, day, err := report.ParseDate(s.Birth.Date)
	if err != nil {
		return report.Request{}, err
	}
	hour, minute, err := report.ParseTime(s.Birth.Time)
	if err != nil {
		return report.Request{}, err
	}

	req := report.Request{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute,
		TZHours:      report.DefaultTZHours,
		Longitude:    report.DefaultLongitude,
		UseTrueLocal: s.Birth.LMT,
		Cycles:       report.DefaultCycles,
		Female:       s.Birth.Sex == "female",
	}
	if s.Birth.TZ != nil {
		req.TZHours = *s.Birth.TZ
	}
	if s.Birth.Longitude != nil {
		req.Longitude = *s.Birth.Longitude
	}
	if s.Birth.Cycles != nil {
		req.Cycles = *s.Birth.Cycles
	}
	return req, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Birth.Date == "" {
		return fmt.Errorf("birth.date is required")
	}

	switch s.Birth.Sex {
	case "male", "female":
	case "":
		return fmt.Errorf("birth.sex is required")
	default:
		return fmt.Errorf("birth.sex must be \"male\" or \"female\", got %q", s.Birth.Sex)
	}

	if s.Birth.Cycles != nil && *s.Birth.Cycles < 0 {
		return fmt.Errorf("birth.cycles must be non-negative")
	}

	switch s.Expect.Direction {
	case "", "forward", "backward":
	default:
		return fmt.Errorf("expect.direction must be \"forward\" or \"backward\", got %q", s.Expect.Direction)
	}

	return nil
}
