package main

import (
	"errors"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/KnotHash/src/app"
	"github.com/Blackdeer1524/KnotHash/src/input"
)

// cli carries state shared by every subcommand of one invocation.
type cli struct {
	entry *app.Entrypoint
	fs    afero.Fs
	color string
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithFs(afero.NewOsFs())
}

func newRootCmdWithFs(fs afero.Fs) *cobra.Command {
	c := &cli{
		entry: &app.Entrypoint{},
		fs:    fs,
	}

	root := &cobra.Command{
		Use:          "knothash",
		Short:        "Knot hash engine and the puzzles built on it",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.entry.Init(cmd.Context())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return c.entry.Close()
		},
	}

	root.PersistentFlags().StringVar(&c.entry.ConfigPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&c.color, "color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(newHashCmd(c))
	root.AddCommand(newMixCmd(c))
	root.AddCommand(newChecksumCmd(c))
	root.AddCommand(newDiskCmd(c))

	return root
}

// readInput loads a puzzle input, falling back to the configured input
// directory for bare file names.
func (c *cli) readInput(name string) (string, error) {
	path, err := input.Resolve(c.fs, c.entry.Env.InputDir, name)
	if err != nil {
		return "", err
	}

	text, err := input.Read(c.fs, path)
	if err != nil {
		return "", err
	}

	c.entry.Log().Debugw("input loaded", "path", path, "bytes", len(text))

	return text, nil
}

// pickInput returns the literal flag value when set, else the content of the
// single positional file argument.
func (c *cli) pickInput(literal string, args []string) (string, error) {
	switch {
	case literal != "" && len(args) > 0:
		return "", errors.New("pass either a file or a literal input, not both")
	case literal != "":
		return literal, nil
	case len(args) == 1:
		return c.readInput(args[0])
	default:
		return "", errors.New("an input file or a literal input is required")
	}
}
