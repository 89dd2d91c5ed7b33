package knothash

import (
	"hash"

	"github.com/Blackdeer1524/KnotHash/src/pkg/utils"
)

// Size is the length in bytes of a standard knot hash.
const Size = ListSize / blockSize

type digest struct {
	buf []byte
}

var _ hash.Hash = &digest{}

// New returns a hash.Hash computing the standard 256-element knot hash.
// The whole input is buffered since the mixer replays it for every round.
func New() hash.Hash {
	return &digest{}
}

func (d *digest) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	// every byte value is a valid length for a 256-element list
	return append(b, utils.Must(Sum(d.buf, ListSize))...)
}

func (d *digest) Reset() {
	d.buf = d.buf[:0]
}

func (d *digest) Size() int {
	return Size
}

func (d *digest) BlockSize() int {
	return blockSize
}
