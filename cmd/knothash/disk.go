package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Blackdeer1524/KnotHash/src/disk"
	"github.com/Blackdeer1524/KnotHash/src/puzzle"
)

func newDiskCmd(c *cli) *cobra.Command {
	var (
		key  string
		rows int
		show int
	)

	cmd := &cobra.Command{
		Use:   "disk [file]",
		Short: "Solve the disk defragmentation puzzle",
		Long: `Disk builds a grid from the knot hashes of "<key>-<row>" and prints the
number of used squares (a) and of connected regions (b).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.pickInput(key, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("rows") {
				rows = c.entry.Env.GridRows
			}

			answer, grid, err := puzzle.DiskDefrag(cmd.Context(), in, rows, c.entry.Env.Workers)
			if err != nil {
				return err
			}

			c.entry.Log().Debugw("disk built", "key", in, "rows", grid.Rows())

			out := cmd.OutOrStdout()
			if show > 0 {
				if err := grid.Render(out, show, c.painter(cmd)); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "a: %s\n", answer.A)
			fmt.Fprintf(out, "b: %s\n", answer.B)

			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "literal key instead of a file")
	cmd.Flags().IntVar(&rows, "rows", 128, "number of grid rows (defaults to the configured grid rows)")
	cmd.Flags().IntVar(&show, "show", 0, "render the top-left NxN corner of the grid")

	return cmd
}

// painter returns nil when the output should stay plain.
func (c *cli) painter(cmd *cobra.Command) disk.Painter {
	useColor := false
	switch c.color {
	case "on":
		useColor = true
	case "auto":
		f, ok := cmd.OutOrStdout().(*os.File)
		useColor = ok && term.IsTerminal(int(f.Fd()))
	}
	if !useColor {
		return nil
	}

	paint := color.New(color.FgGreen, color.Bold)
	paint.EnableColor()

	return paint.SprintFunc()
}
