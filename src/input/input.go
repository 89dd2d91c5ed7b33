package input

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Resolve returns name itself when it exists, otherwise name inside dir when
// name is a bare file name.
func Resolve(fsys afero.Fs, dir, name string) (string, error) {
	exists, err := afero.Exists(fsys, name)
	if err != nil {
		return "", fmt.Errorf("input.Resolve: %w", err)
	}
	if exists || dir == "" || strings.ContainsRune(name, filepath.Separator) {
		return name, nil
	}

	return filepath.Join(dir, name), nil
}

// Read loads a puzzle input and drops its trailing line terminator.
func Read(fsys afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("input.Read: no input at %q: %w", path, err)
	} else if err != nil {
		return "", fmt.Errorf("input.Read: %w", err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")

	return text, nil
}
