package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/KnotHash/src/knothash"
)

func newMixCmd(c *cli) *cobra.Command {
	var (
		size    int
		rounds  int
		product bool
	)

	cmd := &cobra.Command{
		Use:   "mix <lengths>",
		Short: "Run the raw mixer over comma separated lengths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lengths, err := knothash.ParseLengths(args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("size") {
				size = c.entry.Env.ListSize
			}

			list, err := knothash.Mix(lengths, size, rounds)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if product {
				if len(list) < 2 {
					return fmt.Errorf("product needs a list of at least 2 elements, got %d", len(list))
				}
				fmt.Fprintln(out, list[0]*list[1])
				return nil
			}

			fields := make([]string, len(list))
			for i, v := range list {
				fields[i] = strconv.Itoa(v)
			}
			fmt.Fprintln(out, strings.Join(fields, ","))

			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", knothash.ListSize, "list size (defaults to the configured list size)")
	cmd.Flags().IntVar(&rounds, "rounds", 1, "number of passes over the lengths")
	cmd.Flags().BoolVar(&product, "product", false, "print the product of the first two elements")

	return cmd
}
