package font

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// DefaultRanges is the code point selection used when none is given.
const DefaultRanges = "32-127"

// ParseRanges expands a comma separated list of decimal code points and
// inclusive ranges, e.g. "32-127,224,227-229", into a sorted set with
// duplicates removed. An empty string selects DefaultRanges. Malformed
// parts, negative values, reversed ranges and values beyond U+10FFFF are
// all rejected; a bad request fails as a whole.
func ParseRanges(s string) ([]rune, error) {
	if s == "" {
		s = DefaultRanges
	}

	seen := make(map[int]struct{})
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("%w: invalid range %q", ErrInvalidCodePoint, part)
			}
			end, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("%w: invalid range %q", ErrInvalidCodePoint, part)
			}
			if start > end {
				return nil, fmt.Errorf("%w: range %q is reversed", ErrInvalidCodePoint, part)
			}
			if start < 0 || end < 0 {
				return nil, fmt.Errorf("%w: range %q is negative", ErrInvalidCodePoint, part)
			}
			if end > unicode.MaxRune {
				return nil, fmt.Errorf("%w: range %q exceeds U+10FFFF", ErrInvalidCodePoint, part)
			}
			for c := start; c <= end; c++ {
				seen[c] = struct{}{}
			}
		} else {
			code, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidCodePoint, part)
			}
			if code < 0 {
				return nil, fmt.Errorf("%w: %d is negative", ErrInvalidCodePoint, code)
			}
			if code > unicode.MaxRune {
				return nil, fmt.Errorf("%w: %d exceeds U+10FFFF", ErrInvalidCodePoint, code)
			}
			seen[code] = struct{}{}
		}
	}

	codes := make([]rune, 0, len(seen))
	for c := range seen {
		codes = append(codes, rune(c))
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	return codes, nil
}
