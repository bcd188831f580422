// Package cycles generates the decade luck-cycle (dae-un) schedule from a
// birth instant and its month pillar.
//
// Direction comes from the traditional XOR rule: yang-stem males and
// yin-stem females run forward (toward the next solar term), the others
// backward (toward the previous one). The distance to the chosen term
// converts to a starting age at exactly 3 days per year, then count
// ten-tropical-year entries step the month pillar's sexagenary index by
// the direction.
//
// Term crossings near a calendar-year boundary are bracketed by solving
// the crossing for birth-year-1, birth-year and birth-year+1 and choosing
// the candidate strictly after (forward) or strictly before (backward)
// the birth, with a 1e-9-day epsilon so a birth exactly on a crossing
// never selects itself. When no strictly-ordered candidate exists the
// extremum of all three is used.
//
// Generate is pure: same inputs, same schedule, to full float precision.
package cycles
