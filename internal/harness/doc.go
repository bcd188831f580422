// Package harness provides conformance testing for manse readings.
//
// The harness loads birth scenarios from YAML files, runs the full
// reading pipeline, and validates the output against declared
// expectations and golden snapshots.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	birth:
//	  date: "1990-05-15"
//	  time: "14:30"
//	  tz: 9
//	  longitude: 126.98
//	  lmt: false
//	  cycles: 10
//	  sex: male
//	expect:
//	  pillars:
//	    year: 庚午
//	    month: 辛巳
//	    day: 庚辰
//	    hour: 癸未
//	  lunar: "1990-04-21"
//	  leap_month: false
//	  direction: forward
//
// Every field under expect is optional; only declared fields are
// validated. Omitting lunar asserts nothing about the lunar date, while
// an explicit empty string asserts the date falls outside the supported
// table range.
//
// # Deterministic Testing
//
// Readings are pure functions of the birth input, so scenario runs are
// reproducible without any clock or state injection. Golden snapshots
// capture the full reading (pillars, lunar date, direction, and the
// complete luck-cycle schedule) with fixed-precision number formatting
// so that files compare byte-for-byte across runs.
//
// # Usage
//
// Load a scenario:
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/seoul_male_1990.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Execute and check expectations:
//
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
//
// Golden snapshots are regenerated with:
//
//	go test ./internal/harness -update
package harness
