// Package knothash implements the knot hash: a cyclic list-reversal mixer and
// the 64-round digest built on top of it.
package knothash

import (
	"errors"
	"fmt"
)

const (
	// ListSize is the list length used by the standard digest.
	ListSize = 256
	// Rounds is the number of mixing passes performed by the digest.
	Rounds = 64

	blockSize = 16
	maxSize   = 256
)

// ErrInvalidArgument is returned when a caller breaks the input contract:
// run lengths outside [0, size], a non-positive list size, negative rounds or
// malformed textual lengths.
var ErrInvalidArgument = errors.New("invalid argument")

var salt = []int{17, 31, 73, 47, 23}

// Mix returns the identity list [0, size) after reversing the cyclic segment of
// every run length for the given number of rounds. Cursor position and skip
// carry over between rounds.
func Mix(lengths []int, size, rounds int) ([]int, error) {
	if size < 1 {
		return nil, fmt.Errorf("knothash.Mix: list size %d: %w", size, ErrInvalidArgument)
	}
	if rounds < 0 {
		return nil, fmt.Errorf("knothash.Mix: rounds %d: %w", rounds, ErrInvalidArgument)
	}
	for i, n := range lengths {
		if n < 0 || n > size {
			return nil, fmt.Errorf(
				"knothash.Mix: length %d at index %d outside [0, %d]: %w",
				n, i, size, ErrInvalidArgument,
			)
		}
	}

	list := make([]int, size)
	for i := range list {
		list[i] = i
	}

	pos, skip := 0, 0
	for range rounds {
		for _, n := range lengths {
			for i := 0; i < n/2; i++ {
				a, b := (pos+i)%size, (pos+n-i-1)%size
				list[a], list[b] = list[b], list[a]
			}
			pos = (pos + n + skip) % size
			skip++
		}
	}

	return list, nil
}

// Checksum mixes lengths for a single round and multiplies the first two
// elements of the result.
func Checksum(lengths []int, size int) (int, error) {
	if size < 2 {
		return 0, fmt.Errorf("knothash.Checksum: list size %d: %w", size, ErrInvalidArgument)
	}

	list, err := Mix(lengths, size, 1)
	if err != nil {
		return 0, fmt.Errorf("knothash.Checksum: %w", err)
	}

	return list[0] * list[1], nil
}
