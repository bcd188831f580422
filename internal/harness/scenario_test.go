package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m00nlygreat/manse/internal/report"
)

func TestLoadScenario(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/seoul_male_1990.yaml")
	require.NoError(t, err)

	assert.Equal(t, "seoul_male_1990", scenario.Name)
	assert.NotEmpty(t, scenario.Description)
	assert.Equal(t, "1990-05-15", scenario.Birth.Date)
	assert.Equal(t, "14:30", scenario.Birth.Time)
	assert.Equal(t, "male", scenario.Birth.Sex)
	require.NotNil(t, scenario.Expect.Pillars)
	assert.Equal(t, "庚午", scenario.Expect.Pillars.Year)
	require.NotNil(t, scenario.Expect.LeapMonth)
	assert.False(t, *scenario.Expect.LeapMonth)
	assert.Equal(t, "forward", scenario.Expect.Direction)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/does_not_exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenarioUnknownField(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: "unknown field should be rejected"
birth:
  date: "1990-05-15"
  sex: male
expects:
  direction: forward
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenarioValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "missing name",
			yaml: `
description: "no name"
birth:
  date: "1990-05-15"
  sex: male
`,
			wantErr: "name is required",
		},
		{
			name: "missing description",
			yaml: `
name: no_description
birth:
  date: "1990-05-15"
  sex: male
`,
			wantErr: "description is required",
		},
		{
			name: "missing birth date",
			yaml: `
name: no_date
description: "no birth date"
birth:
  sex: male
`,
			wantErr: "birth.date is required",
		},
		{
			name: "missing sex",
			yaml: `
name: no_sex
description: "no sex"
birth:
  date: "1990-05-15"
`,
			wantErr: "birth.sex is required",
		},
		{
			name: "bad sex",
			yaml: `
name: bad_sex
description: "unrecognized sex"
birth:
  date: "1990-05-15"
  sex: other
`,
			wantErr: `birth.sex must be "male" or "female"`,
		},
		{
			name: "negative cycles",
			yaml: `
name: negative_cycles
description: "cycles below zero"
birth:
  date: "1990-05-15"
  sex: male
  cycles: -1
`,
			wantErr: "birth.cycles must be non-negative",
		},
		{
			name: "bad direction",
			yaml: `
name: bad_direction
description: "unrecognized direction"
birth:
  date: "1990-05-15"
  sex: male
expect:
  direction: sideways
`,
			wantErr: `expect.direction must be "forward" or "backward"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenarioDir(t *testing.T) {
	scenarios, err := LoadScenarioDir("testdata/scenarios")
	require.NoError(t, err)
	require.Len(t, scenarios, 3)

	// Sorted by file name for deterministic ordering.
	assert.Equal(t, "busan_lmt_2024", scenarios[0].Name)
	assert.Equal(t, "seoul_female_1990", scenarios[1].Name)
	assert.Equal(t, "seoul_male_1990", scenarios[2].Name)
}

func TestScenarioRequestDefaults(t *testing.T) {
	scenario := &Scenario{
		Name:        "defaults",
		Description: "minimal birth input",
		Birth:       Birth{Date: "1990-05-15", Sex: "male"},
	}

	req, err := scenario.Request()
	require.NoError(t, err)
	assert.Equal(t, 1990, req.Year)
	assert.Equal(t, 12, req.Hour, "empty time defaults to noon")
	assert.Equal(t, 0, req.Minute)
	assert.Equal(t, report.DefaultTZHours, req.TZHours)
	assert.Equal(t, report.DefaultLongitude, req.Longitude)
	assert.Equal(t, report.DefaultCycles, req.Cycles)
	assert.False(t, req.Female)
	assert.False(t, req.UseTrueLocal)
}

func TestScenarioRequestOverrides(t *testing.T) {
	tz, lon, cyc := 8.0, 116.4, 4
	scenario := &Scenario{
		Name:        "overrides",
		Description: "all birth fields set",
		Birth: Birth{
			Date: "2000-01-01", Time: "06:45",
			TZ: &tz, Longitude: &lon, Cycles: &cyc,
			LMT: true, Sex: "female",
		},
	}

	req, err := scenario.Request()
	require.NoError(t, err)
	assert.Equal(t, 6, req.Hour)
	assert.Equal(t, 45, req.Minute)
	assert.Equal(t, 8.0, req.TZHours)
	assert.Equal(t, 116.4, req.Longitude)
	assert.Equal(t, 4, req.Cycles)
	assert.True(t, req.UseTrueLocal)
	assert.True(t, req.Female)
}

func TestScenarioRequestBadDate(t *testing.T) {
	scenario := &Scenario{
		Name:        "bad_date",
		Description: "malformed date",
		Birth:       Birth{Date: "15/05/1990", Sex: "male"},
	}
	_, err := scenario.Request()
	require.Error(t, err)
	assert.True(t, report.IsInputError(err))
}

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
