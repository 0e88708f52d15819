package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseInteger converts operator text into an int64.
// Unparseable input is a parse error; values beyond int64 are out of range.
func ParseInteger(text string) (int64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &OpError{
			Op:   "domain.parse_integer",
			Kind: KindParse,
			Err:  fmt.Errorf("empty input: %w", ErrParse),
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &OpError{
				Op:   "domain.parse_integer",
				Kind: KindOutOfRange,
				Err:  fmt.Errorf("%q does not fit in 64 bits: %w", s, ErrOutOfRange),
			}
		}
		return 0, &OpError{
			Op:   "domain.parse_integer",
			Kind: KindParse,
			Err:  fmt.Errorf("%q is not an integer: %w", s, ErrParse),
		}
	}
	return n, nil
}

// ParseBound converts operator text into a non-negative bound.
func ParseBound(text string) (int64, error) {
	n, err := ParseInteger(text)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, InvalidArgument("domain.parse_bound", "bound must be non-negative, got %d", n)
	}
	return n, nil
}
