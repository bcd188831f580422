package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPassingScenario(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/seoul_male_1990.yaml")
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)

	// The full reading is carried for golden comparison.
	assert.Equal(t, "庚午", result.Reading.Pillars.Year)
	assert.Equal(t, "forward", result.Reading.Schedule.Direction)
	assert.Len(t, result.Reading.Cycles, 10)
}

func TestRunPillarMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "wrong_pillar",
		Description: "deliberately wrong year pillar",
		Birth:       Birth{Date: "1990-05-15", Time: "14:30", Sex: "male"},
		Expect: Expect{
			Pillars: &ExpectPillars{Year: "甲子"},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "pillars.year")
	assert.Contains(t, result.Errors[0], "庚午")
}

func TestRunDirectionMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "wrong_direction",
		Description: "yang stem male walks forward, not backward",
		Birth:       Birth{Date: "1990-05-15", Time: "14:30", Sex: "male"},
		Expect:      Expect{Direction: "backward"},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "direction")
}

func TestRunLunarOutsideTableRange(t *testing.T) {
	leap := false
	scenario := &Scenario{
		Name:        "pre_table",
		Description: "birth before the lunisolar table range",
		Birth:       Birth{Date: "1890-03-01", Sex: "male"},
		Expect:      Expect{LeapMonth: &leap},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "outside the lunar table range")

	// Pillars still compute; only the lunar date is absent.
	assert.NotEmpty(t, result.Reading.Pillars.Year)
	assert.Empty(t, result.Reading.Lunar)
}

func TestRunMalformedDate(t *testing.T) {
	scenario := &Scenario{
		Name:        "bad_date",
		Description: "unparseable date is a hard error, not a failed result",
		Birth:       Birth{Date: "May 15 1990", Sex: "male"},
	}

	_, err := Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad_date")
}

func TestRunDeterministic(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/seoul_female_1990.yaml")
	require.NoError(t, err)

	first, err := Run(scenario)
	require.NoError(t, err)
	second, err := Run(scenario)
	require.NoError(t, err)
	assert.Equal(t, first.Reading, second.Reading)
}

func TestScenarioGoldens(t *testing.T) {
	scenarios, err := LoadScenarioDir("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, scenario := range scenarios {
		t.Run(scenario.Name, func(t *testing.T) {
			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}
