// Package pillars derives the four sexagenary pillars (year, month, day,
// hour) that characterize a birth instant.
//
// There is no state machine here - Calculate is a pure derivation - but
// the sub-steps are ordered and carry edge-case policy:
//
//   - Year: the astrological year begins at the Lichun crossing (315°),
//     not January 1st. A birth exactly at the crossing instant already
//     belongs to the new year (inclusive comparison).
//   - Month: keyed to the 30° solar-longitude bin, independent of the
//     civil month. The month stem start is a fixed five-entry mapping from
//     the year stem (the traditional five-phase cycle).
//   - Day: anchored to true local midnight by rebuilding the Julian day
//     with -tzHours as the hour, so the day pillar flips only at local
//     midnight regardless of the birth's hour and minute.
//   - Hour: twelve two-hour bins rebased so 23:00 starts the Zi bin. A
//     1e-7 epsilon is subtracted before flooring so an exact bin boundary
//     stays in the earlier bin instead of flipping on float error. The
//     hour stem start is the analogous five-entry mapping from the day
//     stem.
//
// The stem-start tables are constants, not computed values; the closed
// traditional rule stays auditable.
package pillars
