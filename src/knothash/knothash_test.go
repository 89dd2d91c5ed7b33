package knothash

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(n int) []int {
	list := make([]int, n)
	for i := range list {
		list[i] = i
	}
	return list
}

func TestMix_ZeroRoundsIsIdentity(t *testing.T) {
	list, err := Mix([]int{3, 4, 1, 5, 0, 2}, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, identity(7), list)
}

func TestMix_SingleRound(t *testing.T) {
	list, err := Mix([]int{3, 4, 1, 5}, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 2, 1, 0}, list)
}

func TestMix_EmptyLengths(t *testing.T) {
	list, err := Mix(nil, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, identity(5), list)
}

func TestMix_FullLengthWrapsAround(t *testing.T) {
	// pos 3 after the first step, so the second reversal spans the seam
	list, err := Mix([]int{3, 5}, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 3, 0, 1}, list)
}

func TestMix_IsPermutation(t *testing.T) {
	lengths := []int{0, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 256}
	for _, rounds := range []int{1, 2, 17, 64} {
		list, err := Mix(lengths, 256, rounds)
		require.NoError(t, err)

		sorted := slices.Clone(list)
		slices.Sort(sorted)
		assert.Equal(t, identity(256), sorted, "rounds=%d", rounds)
	}
}

func TestMix_DoesNotTouchInput(t *testing.T) {
	lengths := []int{3, 4, 1, 5}
	_, err := Mix(lengths, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 1, 5}, lengths)
}

func TestMix_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
		size    int
		rounds  int
	}{
		{"zero size", nil, 0, 1},
		{"negative size", nil, -3, 1},
		{"negative rounds", []int{1}, 5, -1},
		{"length above size", []int{3, 6}, 5, 1},
		{"negative length", []int{-1}, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Mix(tt.lengths, tt.size, tt.rounds)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestChecksum(t *testing.T) {
	tests := []struct {
		lengths []int
		want    int
	}{
		{[]int{}, 0},
		{[]int{3}, 2},
		{[]int{3, 4}, 12},
		{[]int{3, 4, 1}, 12},
		{[]int{3, 4, 1, 5}, 12},
	}

	for _, tt := range tests {
		got, err := Checksum(tt.lengths, 5)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "lengths=%v", tt.lengths)
	}
}

func TestChecksum_TooSmall(t *testing.T) {
	_, err := Checksum(nil, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
