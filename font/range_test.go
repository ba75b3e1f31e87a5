package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ascending(codes []rune) bool {
	for i := 1; i < len(codes); i++ {
		if codes[i] <= codes[i-1] {
			return false
		}
	}
	return true
}

func TestParseRangesDefault(t *testing.T) {
	codes, err := ParseRanges("")
	require.NoError(t, err)

	assert.Len(t, codes, 96)
	assert.Equal(t, rune(32), codes[0])
	assert.Equal(t, rune(127), codes[len(codes)-1])
	assert.True(t, ascending(codes))
}

func TestParseRangesLetters(t *testing.T) {
	codes, err := ParseRanges("65-90,97-122")
	require.NoError(t, err)

	assert.Len(t, codes, 52)
	assert.Equal(t, 'A', codes[0])
	assert.Equal(t, 'z', codes[len(codes)-1])
	assert.True(t, ascending(codes))
}

func TestParseRangesOverlap(t *testing.T) {
	codes, err := ParseRanges("65-90,80-100")
	require.NoError(t, err)

	assert.Len(t, codes, 36)
	assert.True(t, ascending(codes))

	// Asking twice changes nothing.
	again, err := ParseRanges("65-90,80-100,65-90")
	require.NoError(t, err)
	assert.Equal(t, codes, again)
}

func TestParseRangesSingles(t *testing.T) {
	codes, err := ParseRanges("65")
	require.NoError(t, err)
	assert.Equal(t, []rune{'A'}, codes)

	codes, err = ParseRanges("32-127,224,227-229")
	require.NoError(t, err)
	assert.Len(t, codes, 100)
	assert.Contains(t, codes, rune(224))
	assert.Contains(t, codes, rune(228))
}

func TestParseRangesWhitespace(t *testing.T) {
	codes, err := ParseRanges(" 65 , 70 - 72 ")
	require.NoError(t, err)
	assert.Equal(t, []rune{65, 70, 71, 72}, codes)
}

func TestParseRangesErrors(t *testing.T) {
	for _, s := range []string{
		"abc",
		"65,abc",
		"10-5",
		"-3",
		"5--3",
		"65,,70",
		"1114112",
		"65-1114200",
	} {
		_, err := ParseRanges(s)
		assert.ErrorIs(t, err, ErrInvalidCodePoint, "%q", s)
	}
}
