package knothash

import (
	"encoding/hex"
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// Sum returns the dense hash of data: size/16 bytes, each the XOR of one
// 16-element block of the list mixed for 64 rounds over data plus the salt.
func Sum(data []byte, size int) ([]byte, error) {
	if size < blockSize || size%blockSize != 0 || size > maxSize {
		return nil, fmt.Errorf(
			"knothash.Sum: list size %d must be a multiple of %d in [%d, %d]: %w",
			size, blockSize, blockSize, maxSize, ErrInvalidArgument,
		)
	}

	lengths := make([]int, 0, len(data)+len(salt))
	for _, b := range data {
		lengths = append(lengths, int(b))
	}
	lengths = append(lengths, salt...)

	list, err := Mix(lengths, size, Rounds)
	if err != nil {
		return nil, fmt.Errorf("knothash.Sum: %w", err)
	}

	dense := make([]byte, 0, size/blockSize)
	for block := range slices.Chunk(list, blockSize) {
		folded := 0
		for _, v := range block {
			folded ^= v
		}

		b, err := safecast.Conv[uint8](folded)
		if err != nil {
			return nil, fmt.Errorf("knothash.Sum: fold block: %w", err)
		}
		dense = append(dense, b)
	}

	return dense, nil
}

// Digest renders Sum of text as lowercase hex, two digits per block.
func Digest(text string, size int) (string, error) {
	dense, err := Sum([]byte(text), size)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(dense), nil
}
