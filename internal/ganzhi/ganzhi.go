package ganzhi

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Stem is one of the ten heavenly stems, indexed 0..9.
type Stem int

// Branch is one of the twelve earthly branches, indexed 0..11.
type Branch int

// Index is a position in the 60-step sexagenary cycle, always in [0,59].
// Construct via New so out-of-range integers wrap correctly.
type Index int

var stemGlyphs = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var branchGlyphs = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// New wraps an arbitrary integer into the cycle. Negative inputs wrap
// toward the end of the cycle (floored modulo), so New(i) == New(i+60)
// for all i.
func New(i int) Index {
	return Index(((i % 60) + 60) % 60)
}

// Combine returns the cycle index for a (stem, branch) pair. The second
// return is false when no such pair exists in the cycle, which happens
// exactly when the stem and branch parities differ.
func Combine(s Stem, b Branch) (Index, bool) {
	if s < 0 || s > 9 || b < 0 || b > 11 {
		return 0, false
	}
	for i := 0; i < 60; i++ {
		if i%10 == int(s) && i%12 == int(b) {
			return Index(i), true
		}
	}
	return 0, false
}

// Stem returns the heavenly stem of the index.
func (i Index) Stem() Stem {
	return Stem(i % 10)
}

// Branch returns the earthly branch of the index.
func (i Index) Branch() Branch {
	return Branch(i % 12)
}

// Step advances the index by n cycle positions. Negative n steps backward.
func (i Index) Step(n int) Index {
	return New(int(i) + n)
}

// String renders the canonical two-glyph hanja code, e.g. "甲子".
func (i Index) String() string {
	return stemGlyphs[i%10] + branchGlyphs[i%12]
}

// Glyph returns the hanja glyph for the stem.
func (s Stem) Glyph() string {
	return stemGlyphs[s]
}

// Yang reports whether the stem is yang. Even-indexed stems are yang,
// odd-indexed are yin.
func (s Stem) Yang() bool {
	return s%2 == 0
}

// Glyph returns the hanja glyph for the branch.
func (b Branch) Glyph() string {
	return branchGlyphs[b]
}

// DecodeError reports a malformed two-glyph sexagenary code. This is a
// hard error: it indicates a programming or data-corruption fault in the
// caller, not a normal input-range condition.
type DecodeError struct {
	Input  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid sexagenary code %q: %s", e.Input, e.Reason)
}

// Parse decodes a two-glyph hanja code into its cycle index. The input is
// NFC-normalized first. Parse(i.String()) == i for every Index.
func Parse(s string) (Index, error) {
	runes := []rune(norm.NFC.String(s))
	if len(runes) != 2 {
		return 0, &DecodeError{Input: s, Reason: fmt.Sprintf("want exactly 2 glyphs, got %d", len(runes))}
	}

	stem := Stem(-1)
	for i, g := range stemGlyphs {
		if g == string(runes[0]) {
			stem = Stem(i)
			break
		}
	}
	if stem < 0 {
		return 0, &DecodeError{Input: s, Reason: fmt.Sprintf("unrecognized stem glyph %q", string(runes[0]))}
	}

	branch := Branch(-1)
	for i, g := range branchGlyphs {
		if g == string(runes[1]) {
			branch = Branch(i)
			break
		}
	}
	if branch < 0 {
		return 0, &DecodeError{Input: s, Reason: fmt.Sprintf("unrecognized branch glyph %q", string(runes[1]))}
	}

	idx, ok := Combine(stem, branch)
	if !ok {
		return 0, &DecodeError{Input: s, Reason: "stem and branch parities do not pair in the 60-cycle"}
	}
	return idx, nil
}
