// Package puzzle wires the knot hash into the two puzzles that consume it.
package puzzle

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Blackdeer1524/KnotHash/src/disk"
	"github.com/Blackdeer1524/KnotHash/src/knothash"
)

type Answer struct {
	A string
	B string
}

// ListChecksum treats input as comma separated lengths for a single round over
// a list of size elements (part A) and as raw bytes for the full digest (part B).
func ListChecksum(input string, size int) (Answer, error) {
	lengths, err := knothash.ParseLengths(input)
	if err != nil {
		return Answer{}, fmt.Errorf("puzzle.ListChecksum: %w", err)
	}

	product, err := knothash.Checksum(lengths, size)
	if err != nil {
		return Answer{}, fmt.Errorf("puzzle.ListChecksum: %w", err)
	}

	digest, err := knothash.Digest(input, knothash.ListSize)
	if err != nil {
		return Answer{}, fmt.Errorf("puzzle.ListChecksum: %w", err)
	}

	return Answer{A: strconv.Itoa(product), B: digest}, nil
}

// DiskDefrag counts used squares (part A) and regions (part B) of the disk
// derived from key.
func DiskDefrag(ctx context.Context, key string, rows, workers int) (Answer, *disk.Grid, error) {
	grid, err := disk.Build(ctx, key, rows, workers)
	if err != nil {
		return Answer{}, nil, fmt.Errorf("puzzle.DiskDefrag: %w", err)
	}

	return Answer{
		A: strconv.Itoa(grid.Used()),
		B: strconv.Itoa(grid.Regions()),
	}, grid, nil
}
