package knothash

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLengths parses a comma separated list of run lengths. Surrounding
// whitespace is ignored and blank input yields no lengths.
func ParseLengths(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []int{}, nil
	}

	fields := strings.Split(text, ",")
	lengths := make([]int, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)

		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf(
				"knothash.ParseLengths: field %d %q is not a number: %w",
				i, field, ErrInvalidArgument,
			)
		}
		if n < 0 {
			return nil, fmt.Errorf(
				"knothash.ParseLengths: field %d is negative (%d): %w",
				i, n, ErrInvalidArgument,
			)
		}

		lengths = append(lengths, n)
	}

	return lengths, nil
}
