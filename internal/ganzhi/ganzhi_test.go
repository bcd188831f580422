package ganzhi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWraps(t *testing.T) {
	assert.Equal(t, Index(0), New(0))
	assert.Equal(t, Index(59), New(59))
	assert.Equal(t, Index(0), New(60))
	assert.Equal(t, Index(26), New(26+600))

	// Negative inputs wrap toward the end of the cycle (floored modulo).
	assert.Equal(t, Index(59), New(-1))
	assert.Equal(t, Index(26), New(-34))
}

func TestSixtyCycleClosure(t *testing.T) {
	for i := -120; i < 120; i++ {
		assert.Equal(t, New(i), New(i+60), "index %d", i)
	}
	for i := 0; i < 60; i++ {
		assert.Equal(t, New(i).Stem(), New(i+10).Step(-10).Stem())
		assert.Equal(t, Stem(i%10), New(i).Stem())
		assert.Equal(t, Branch(i%12), New(i).Branch())
	}
}

func TestPairUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 60; i++ {
		code := New(i).String()
		assert.False(t, seen[code], "duplicate code %s at %d", code, i)
		seen[code] = true
	}
	assert.Len(t, seen, 60)
}

func TestKnownCodes(t *testing.T) {
	assert.Equal(t, "甲子", New(0).String())
	assert.Equal(t, "乙丑", New(1).String())
	assert.Equal(t, "癸亥", New(59).String())
	// 1990 is 庚午: (1990-1984) mod 60 = 6.
	assert.Equal(t, "庚午", New(1990-1984).String())
}

func TestParseRoundTrip(t *testing.T) {
	for i := 0; i < 60; i++ {
		idx, err := Parse(New(i).String())
		require.NoError(t, err)
		assert.Equal(t, New(i), idx)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{"", "甲", "甲子乙", "X子", "甲X", "ab"}
	for _, tc := range cases {
		_, err := Parse(tc)
		require.Error(t, err, "input %q", tc)
		var de *DecodeError
		assert.ErrorAs(t, err, &de)
	}
}

func TestParseRejectsMismatchedParity(t *testing.T) {
	// 甲 (stem 0, yang) can never pair with 丑 (branch 1, yin).
	_, err := Parse("甲丑")
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Contains(t, de.Reason, "parities")
}

func TestCombine(t *testing.T) {
	idx, ok := Combine(Stem(0), Branch(0))
	require.True(t, ok)
	assert.Equal(t, Index(0), idx)

	idx, ok = Combine(Stem(9), Branch(11))
	require.True(t, ok)
	assert.Equal(t, Index(59), idx)

	_, ok = Combine(Stem(0), Branch(1))
	assert.False(t, ok)

	_, ok = Combine(Stem(10), Branch(0))
	assert.False(t, ok)
}

func TestStemYang(t *testing.T) {
	assert.True(t, Stem(0).Yang())  // 甲
	assert.False(t, Stem(1).Yang()) // 乙
	assert.True(t, Stem(6).Yang())  // 庚
	assert.False(t, Stem(9).Yang()) // 癸
}
