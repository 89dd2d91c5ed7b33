package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()

	root := newRootCmdWithFs(fs)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestHash_Literals(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "hash", "", "AoC 2017", "1,2,3", "1,2,4")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"a2582a3a0e66e6e86e3812dcb672a272",
		"33efeb34ea91902bb2f59c9920caa6cd",
		"3efbe78a8d82f29979031a4aa0b16a9d",
		"63960835bcdc130f0b66d7ff4f6a5a8e",
	}, strings.Fields(out))
}

func TestHash_File(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "input/key.txt", []byte("AoC 2017\n"), 0o644))

	out, err := run(t, fs, "hash", "--file", "key.txt")
	require.NoError(t, err)
	assert.Equal(t, "33efeb34ea91902bb2f59c9920caa6cd\n", out)
}

func TestHash_NothingToHash(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "hash")
	require.Error(t, err)
}

func TestHash_BadSize(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "hash", "--size", "100", "x")
	require.Error(t, err)
}

func TestMix(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "mix", "--size", "5", "3,4,1,5")
	require.NoError(t, err)
	assert.Equal(t, "3,4,2,1,0\n", out)

	out, err = run(t, afero.NewMemMapFs(), "mix", "--size", "5", "--product", "3,4,1,5")
	require.NoError(t, err)
	assert.Equal(t, "12\n", out)

	out, err = run(t, afero.NewMemMapFs(), "mix", "--size", "5", "--rounds", "0", "3,4,1,5")
	require.NoError(t, err)
	assert.Equal(t, "0,1,2,3,4\n", out)
}

func TestMix_OversizedLength(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "mix", "--size", "5", "3,6")
	require.Error(t, err)
}

func TestChecksum(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "lengths.txt", []byte("3,4,1,5\n"), 0o644))

	out, err := run(t, fs, "checksum", "--size", "5", "lengths.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "a: 12\n")
	assert.Contains(t, out, "b: ")
}

func TestChecksum_Literal(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "checksum", "--text", "1,2,3")
	require.NoError(t, err)
	assert.Contains(t, out, "b: 3efbe78a8d82f29979031a4aa0b16a9d\n")
}

func TestChecksum_InputRequired(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "checksum")
	require.Error(t, err)

	_, err = run(t, afero.NewMemMapFs(), "checksum", "missing.txt")
	require.Error(t, err)
}

func TestDisk(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "disk", "--key", "flqrgnkx", "--show", "8", "--color", "off")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "##.#.#..\n.#.#.#.#\n"), out)
	assert.True(t, strings.HasSuffix(out, "a: 8108\nb: 1242\n"), out)
}

func TestDisk_BothInputs(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "disk", "--key", "k", "file.txt")
	require.Error(t, err)
}
