// Package disk builds the square usage grid of a disk whose rows are the knot
// hashes of "<key>-<row>".
package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"sync"

	"github.com/panjf2000/ants"

	"github.com/Blackdeer1524/KnotHash/src/knothash"
)

// Width is the number of squares in a row: one bit per digest bit.
const Width = knothash.Size * 8

var ErrInvalidGrid = errors.New("invalid grid parameters")

// Painter colors a used square. *color.Color.SprintFunc fits.
type Painter func(a ...any) string

type Grid struct {
	rows [][]byte
}

// Build hashes every row key on a pool of workers goroutines.
func Build(ctx context.Context, key string, rows, workers int) (*Grid, error) {
	if rows < 1 || workers < 1 {
		return nil, fmt.Errorf(
			"disk.Build: rows=%d workers=%d: %w", rows, workers, ErrInvalidGrid,
		)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("disk.Build ants.NewPool: %w", err)
	}
	defer pool.Release()

	g := &Grid{rows: make([][]byte, rows)}
	errs := make([]error, rows)

	var wg sync.WaitGroup
	for i := range rows {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, fmt.Errorf("disk.Build: %w", err)
		}

		wg.Add(1)
		task := func() {
			defer wg.Done()
			g.rows[i], errs[i] = knothash.Sum([]byte(rowKey(key, i)), knothash.ListSize)
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("disk.Build pool.Submit: %w", err)
		}
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("disk.Build: %w", err)
	}

	return g, nil
}

func rowKey(key string, row int) string {
	return key + "-" + strconv.Itoa(row)
}

func (g *Grid) Rows() int {
	return len(g.rows)
}

// IsUsed reports whether the square at (row, col) is set. Bits are read most
// significant first.
func (g *Grid) IsUsed(row, col int) bool {
	return g.rows[row][col/8]&(0x80>>(col%8)) != 0
}

func (g *Grid) Used() int {
	total := 0
	for _, row := range g.rows {
		for _, b := range row {
			total += bits.OnesCount8(b)
		}
	}

	return total
}

type square struct {
	row, col int
}

// Regions counts groups of used squares connected horizontally or vertically.
func (g *Grid) Regions() int {
	seen := make([][]bool, len(g.rows))
	for i := range seen {
		seen[i] = make([]bool, Width)
	}

	regions := 0
	var stack []square
	for r := range g.rows {
		for c := range Width {
			if seen[r][c] || !g.IsUsed(r, c) {
				continue
			}

			regions++
			stack = append(stack[:0], square{r, c})
			seen[r][c] = true
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				for _, next := range g.neighbours(cur) {
					if !seen[next.row][next.col] && g.IsUsed(next.row, next.col) {
						seen[next.row][next.col] = true
						stack = append(stack, next)
					}
				}
			}
		}
	}

	return regions
}

func (g *Grid) neighbours(s square) []square {
	out := make([]square, 0, 4)
	if s.row > 0 {
		out = append(out, square{s.row - 1, s.col})
	}
	if s.row < len(g.rows)-1 {
		out = append(out, square{s.row + 1, s.col})
	}
	if s.col > 0 {
		out = append(out, square{s.row, s.col - 1})
	}
	if s.col < Width-1 {
		out = append(out, square{s.row, s.col + 1})
	}

	return out
}

// Render writes the top-left n x n corner, '#' for used squares and '.' for
// free ones. A nil paint leaves used squares uncolored.
func (g *Grid) Render(w io.Writer, n int, paint Painter) error {
	rows, cols := min(n, len(g.rows)), min(n, Width)

	for r := range rows {
		line := make([]byte, 0, cols+1)
		for c := range cols {
			if !g.IsUsed(r, c) {
				line = append(line, '.')
				continue
			}
			if paint == nil {
				line = append(line, '#')
			} else {
				line = append(line, paint("#")...)
			}
		}
		line = append(line, '\n')

		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("disk.Grid.Render: %w", err)
		}
	}

	return nil
}
