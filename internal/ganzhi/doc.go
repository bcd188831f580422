// Package ganzhi provides the sexagenary (ganzhi) cycle foundation for manse.
//
// This package contains the cycle types and glyph tables only. All other
// internal packages import ganzhi; ganzhi imports nothing internal. This
// keeps the 60-cycle the foundational layer with no circular dependencies.
//
// Key structural invariant:
//   - An Index in [0,59] derives its stem as index mod 10 and its branch as
//     index mod 12. Stems repeat with period 10 and branches with period 12,
//     but the (stem, branch) pair repeats only every 60. Every integer in
//     [0,59] yields a unique valid pair; only half of the 120 conceivable
//     pairs exist (stem and branch parity must agree).
//
// Decoding caller-supplied two-glyph codes is the one fallible operation
// here. Input is NFC-normalized before rune inspection because Hangul and
// CJK glyphs can arrive in decomposed form from other systems.
package ganzhi
