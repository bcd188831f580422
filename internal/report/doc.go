// Package report assembles a complete reading at the application boundary:
// four pillars, the lunisolar equivalent, Korean/hanja renderings, and the
// luck-cycle schedule.
//
// This is the sanitization layer. It validates the civil input domain
// (month/day/hour/minute ranges, finite timezone/longitude, non-negative
// cycle count) before any core package runs, so the pure calculation
// packages may assume in-range numeric fields. Downstream consumers treat
// the Reading as opaque data: pillar codes are canonical two-glyph
// strings, cycle timestamps are preformatted, and a missing lunar date is
// an explicit absence, not an error.
package report
