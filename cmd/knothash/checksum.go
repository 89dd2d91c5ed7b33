package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/KnotHash/src/puzzle"
)

func newChecksumCmd(c *cli) *cobra.Command {
	var (
		text string
		size int
	)

	cmd := &cobra.Command{
		Use:   "checksum [file]",
		Short: "Solve the list checksum puzzle",
		Long: `Checksum reads comma separated lengths and prints the product of the
first two elements after one round (a) and the knot hash of the raw input (b).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.pickInput(text, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("size") {
				size = c.entry.Env.ListSize
			}

			answer, err := puzzle.ListChecksum(in, size)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "a: %s\n", answer.A)
			fmt.Fprintf(out, "b: %s\n", answer.B)

			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "literal input instead of a file")
	cmd.Flags().IntVar(&size, "size", 256, "list size for part a")

	return cmd
}
